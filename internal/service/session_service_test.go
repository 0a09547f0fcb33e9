package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/llm"
)

func TestSessionService_SetStatus_ForwardMove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)

	require.NoError(t, env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusPreparation))

	got, err := env.sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparation, got.Status)
	assert.Zero(t, env.gateway.CallCount(), "non-terminal moves must not call the model")
}

func TestSessionService_SetStatus_SkippingForwardIsLegal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)

	// Not Started straight to the report phase, skipping two stages.
	require.NoError(t, env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusReport))

	got, err := env.sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReport, got.Status)
}

func TestSessionService_SetStatus_BackwardMoveRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)
	require.NoError(t, env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusAwaitingReport))

	err := env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusPreparation)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := env.sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAwaitingReport, got.Status, "a rejected move must not change the stored status")
}

func TestSessionService_SetStatus_SameStatusIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)

	require.NoError(t, env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusNotStarted))
	assert.Zero(t, env.gateway.CallCount())
}

// Ending a non-kickoff session triggers exactly one summarization call plus
// one aggregation call, and no goal generation.
func TestSessionService_TerminalEntryTriggersPipeline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)

	_, err := env.chatSvc.Send(ctx, sess.ID, "We reviewed the assembly line.")
	require.NoError(t, err)
	env.gateway.Calls = nil
	env.gateway.Replies = []string{"Session summary.", "Project summary."}

	require.NoError(t, env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusEnded))

	assert.Equal(t, 2, env.gateway.CallCount(), "expected one summarization and one aggregation call")

	got, err := env.sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Session summary.", got.Summary)

	proj, err := env.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Project summary.", proj.AggregatedSummary)
	assert.Empty(t, proj.Goal, "only the kickoff session feeds goal generation")
}

// Re-ending an already-ended session is silently ignored and runs nothing.
func TestSessionService_TerminalEntryIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)

	require.NoError(t, env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusEnded))
	calls := env.gateway.CallCount()

	require.NoError(t, env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusEnded))
	require.NoError(t, env.sessionSvc.SetStatus(ctx, sess.ID, domain.StatusPreparation))
	assert.Equal(t, calls, env.gateway.CallCount(), "an ended session must trigger no further model calls")

	got, err := env.sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnded, got.Status)
}

// Ending the kickoff session with a pre-existing summary also generates the
// project goal, before summarization overwrites the summary.
func TestSessionService_KickoffEndGeneratesGoal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	kickoff := env.sessionByNumber(t, p.ID, 1)
	require.NoError(t, env.sessions.UpdateSummary(ctx, kickoff.ID, "We agreed to cut changeover time."))

	env.gateway.Replies = []string{"Goal: faster changeovers.", "Fresh summary.", "Aggregate."}
	require.NoError(t, env.sessionSvc.SetStatus(ctx, kickoff.ID, domain.StatusEnded))

	require.Equal(t, 3, env.gateway.CallCount())

	// The goal call is fed the prior summary, not conversation history.
	goalCall := env.gateway.Calls[0]
	require.Len(t, goalCall, 1)
	assert.Equal(t, llm.RoleUser, goalCall[0].Role)
	assert.Contains(t, goalCall[0].Content, "We agreed to cut changeover time.")

	proj, err := env.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Goal: faster changeovers.", proj.Goal)
}

// Ending the kickoff with no summary yet skips goal generation entirely.
func TestSessionService_KickoffEndWithBlankSummarySkipsGoal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	kickoff := env.sessionByNumber(t, p.ID, 1)

	env.gateway.Replies = []string{"Summary.", "Aggregate."}
	require.NoError(t, env.sessionSvc.SetStatus(ctx, kickoff.ID, domain.StatusEnded))

	assert.Equal(t, 2, env.gateway.CallCount())

	proj, err := env.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, proj.Goal)
}

func TestSessionService_SummarizeUsesConfiguredPromptAndFiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)

	require.NoError(t, env.promptCfg.Update(ctx, &domain.PromptConfig{
		SessionSummarizationPrompt: "Condense hard.",
	}))
	_, err := env.chatSvc.Send(ctx, sess.ID, "Discussed downtime.")
	require.NoError(t, err)

	f := &domain.File{SessionID: sess.ID, DisplayName: "minutes.pdf", StoragePath: "/docs/minutes.pdf"}
	require.NoError(t, env.files.Create(ctx, f))
	env.extractor.Texts["/docs/minutes.pdf"] = "Minutes text"
	env.gateway.Calls = nil

	require.NoError(t, env.sessionSvc.Summarize(ctx, sess.ID))

	call := env.gateway.Calls[0]
	require.Len(t, call, 2, "document context plus the one-shot prompt")
	assert.Equal(t, llm.RoleSystem, call[0].Role)
	assert.Contains(t, call[0].Content, "Minutes text")
	assert.Equal(t, llm.RoleUser, call[1].Role)
	assert.True(t, strings.HasPrefix(call[1].Content, "Condense hard.\n\n"))
	assert.Contains(t, call[1].Content, "user: Discussed downtime.")
}

func TestSessionService_SummarizeFallsBackToDefaultPrompt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)

	require.NoError(t, env.sessionSvc.Summarize(ctx, sess.ID))

	call := env.gateway.Calls[0]
	require.Len(t, call, 1)
	assert.True(t, strings.HasPrefix(call[0].Content, domain.DefaultSessionSummarizationPrompt))
}

func TestSessionService_GatewayFailureLeavesSummaryUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 2)
	env.gateway.Err = errors.New("model down")

	err := env.sessionSvc.Summarize(ctx, sess.ID)
	require.Error(t, err)

	got, err := env.sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Summary)
}

func TestSessionService_AggregateWithNoSummariesWritesSentinel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	require.NoError(t, env.sessionSvc.AggregateProject(ctx, p.ID))

	assert.Zero(t, env.gateway.CallCount(), "the sentinel is written without a model call")

	proj, err := env.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, InsufficientDataSummary, proj.AggregatedSummary)
}

// Blank summaries are excluded and the survivors renumbered contiguously.
func TestSessionService_AggregateSkipsBlankSummariesAndRenumbers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	require.NoError(t, env.sessions.UpdateSummary(ctx, env.sessionByNumber(t, p.ID, 2).ID, "Alpha"))
	require.NoError(t, env.sessions.UpdateSummary(ctx, env.sessionByNumber(t, p.ID, 3).ID, "   "))
	require.NoError(t, env.sessions.UpdateSummary(ctx, env.sessionByNumber(t, p.ID, 5).ID, "Beta"))

	require.NoError(t, env.sessionSvc.AggregateProject(ctx, p.ID))

	call := env.gateway.LastCall()
	require.Len(t, call, 1)
	assert.Contains(t, call[0].Content, "Session 1:\nAlpha\n\n")
	assert.Contains(t, call[0].Content, "Session 2:\nBeta\n\n")
	assert.NotContains(t, call[0].Content, "Session 3:")
	assert.NotContains(t, call[0].Content, "Session 5:")
}

func TestSessionService_SetStatus_UnknownSessionRejected(t *testing.T) {
	env := newTestEnv(t)

	err := env.sessionSvc.SetStatus(context.Background(), 4242, domain.StatusPreparation)
	require.Error(t, err)
}
