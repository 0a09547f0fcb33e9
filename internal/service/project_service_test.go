package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/repository"
	"github.com/talbenari/coachflow/internal/testutil"
)

func TestProjectService_CreateProvisionsWorkflow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "Line 3 setup")

	sessions, err := env.sessions.ListForProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 22)

	assert.Equal(t, "Project Kickoff", sessions[0].SessionName)
	assert.Equal(t, "Preparation 1", sessions[1].SessionName)
	assert.Equal(t, "Post-Session Report 1", sessions[2].SessionName)
	assert.Equal(t, "Preparation 10", sessions[19].SessionName)
	assert.Equal(t, "Post-Session Report 10", sessions[20].SessionName)
	assert.Equal(t, "Project Closure", sessions[21].SessionName)

	for i, s := range sessions {
		assert.Equal(t, i+1, s.SessionNumber)
		assert.Equal(t, domain.StatusNotStarted, s.Status)
	}
}

func TestProjectService_CreateRejectsEmptyName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := testutil.NewTestUser("owner")
	require.NoError(t, env.users.Create(ctx, owner))

	err := env.projectSvc.Create(ctx, testutil.NewTestProject(owner.ID, "   "))
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	projects, err := env.projects.ListForUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectService_CreateRejectsMissingOwner(t *testing.T) {
	env := newTestEnv(t)

	err := env.projectSvc.Create(context.Background(), &domain.Project{Name: "No owner"})
	assert.ErrorIs(t, err, domain.ErrMissingOwner)
}

// A failure partway through session provisioning must leave no project row
// behind. A nonexistent owner trips the foreign key on the project insert
// inside the transaction.
func TestProjectService_CreateIsAtomic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.projectSvc.Create(ctx, testutil.NewTestProject(9999, "Orphan"))
	require.Error(t, err)

	projects, err := env.projects.ListForUser(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "Short lived")
	require.NoError(t, env.projectSvc.Delete(ctx, p.ID))

	sessions, err := env.sessions.ListForProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestProjectService_MarkDone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "Wrapping up")
	require.Equal(t, domain.ProjectActive, p.Status)

	require.NoError(t, env.projectSvc.MarkDone(ctx, p.ID))

	got, err := env.projectSvc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectDone, got.Status)
}

func TestProjectService_MarkDoneUnknownProject(t *testing.T) {
	env := newTestEnv(t)

	err := env.projectSvc.MarkDone(context.Background(), 4242)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
