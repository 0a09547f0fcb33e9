package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/talbenari/coachflow/internal/assembler"
	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/repository"
	"github.com/talbenari/coachflow/internal/testutil"
)

// testEnv wires every service against one in-memory database, a scripted
// gateway, and in-memory extraction and storage.
type testEnv struct {
	db        *sql.DB
	users     repository.UserRepo
	tokens    repository.TokenRepo
	projects  repository.ProjectRepo
	sessions  repository.SessionRepo
	messages  repository.MessageRepo
	files     repository.FileRepo
	promptCfg repository.PromptConfigRepo

	gateway   *testutil.FakeGateway
	extractor *testutil.FakeExtractor
	store     *testutil.MemStore

	projectSvc ProjectService
	sessionSvc SessionService
	chatSvc    ChatService
	fileSvc    FileService
	promptSvc  PromptService
	userSvc    UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		db:        database,
		users:     repository.NewSQLiteUserRepo(database),
		tokens:    repository.NewSQLiteTokenRepo(database),
		projects:  repository.NewSQLiteProjectRepo(database),
		sessions:  repository.NewSQLiteSessionRepo(database),
		messages:  repository.NewSQLiteMessageRepo(database),
		files:     repository.NewSQLiteFileRepo(database),
		promptCfg: repository.NewSQLitePromptConfigRepo(database),
		gateway:   testutil.NewFakeGateway("canned reply"),
		extractor: &testutil.FakeExtractor{Texts: map[string]string{}},
		store:     testutil.NewMemStore(),
	}
	asm := assembler.New(env.extractor)

	env.projectSvc = NewProjectService(env.projects, testutil.NewTestUoW(database), logger)
	env.sessionSvc = NewSessionService(env.sessions, env.projects, env.messages, env.files, env.promptCfg, env.gateway, asm, logger)
	env.chatSvc = NewChatService(env.sessions, env.messages, env.files, env.promptCfg, env.gateway, asm, logger)
	env.fileSvc = NewFileService(env.files, env.store, logger)
	env.promptSvc = NewPromptService(env.promptCfg, logger)
	env.userSvc = NewUserService(env.users, env.tokens, logger)

	return env
}

// newProject creates an owner and a project with its full session workflow.
func (env *testEnv) newProject(t *testing.T, name string) *domain.Project {
	t.Helper()
	ctx := context.Background()

	owner := testutil.NewTestUser("owner")
	require.NoError(t, env.users.Create(ctx, owner))

	p := testutil.NewTestProject(owner.ID, name)
	require.NoError(t, env.projectSvc.Create(ctx, p))
	return p
}

// sessionByNumber looks up one of a project's template sessions.
func (env *testEnv) sessionByNumber(t *testing.T, projectID int64, number int) *domain.Session {
	t.Helper()
	sessions, err := env.sessions.ListForProject(context.Background(), projectID)
	require.NoError(t, err)
	for _, s := range sessions {
		if s.SessionNumber == number {
			return s
		}
	}
	t.Fatalf("project %d has no session number %d", projectID, number)
	return nil
}
