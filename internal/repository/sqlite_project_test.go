package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/testutil"
)

// projectTestSetup creates the owning user that project tests need.
func projectTestSetup(t *testing.T) (*SQLiteProjectRepo, int64) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	user := testutil.NewTestUser("owner")
	require.NoError(t, userRepo.Create(ctx, user))

	return NewSQLiteProjectRepo(db), user.ID
}

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	repo, userID := projectTestSetup(t)
	ctx := context.Background()

	p := testutil.NewTestProject(userID, "Line 3 setup", testutil.WithGoal("Reduce setup time"))
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID, "create must assign the row id")

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Line 3 setup", fetched.Name)
	assert.Equal(t, "Reduce setup time", fetched.Goal)
	assert.Equal(t, domain.ProjectActive, fetched.Status)
	assert.Empty(t, fetched.AggregatedSummary)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := projectTestSetup(t)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_ListForUser(t *testing.T) {
	repo, userID := projectTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject(userID, "First")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject(userID, "Second")))

	projects, err := repo.ListForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "First", projects[0].Name)
	assert.Equal(t, "Second", projects[1].Name)

	none, err := repo.ListForUser(ctx, userID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectRepo_UpdateGoalAndSummary(t *testing.T) {
	repo, userID := projectTestSetup(t)
	ctx := context.Background()

	p := testutil.NewTestProject(userID, "P")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.UpdateGoal(ctx, p.ID, "New goal"))
	require.NoError(t, repo.UpdateAggregatedSummary(ctx, p.ID, "Overall summary"))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "New goal", fetched.Goal)
	assert.Equal(t, "Overall summary", fetched.AggregatedSummary)
}

func TestProjectRepo_Delete_CascadesSessions(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	user := testutil.NewTestUser("owner")
	require.NoError(t, userRepo.Create(ctx, user))

	projRepo := NewSQLiteProjectRepo(db)
	sessRepo := NewSQLiteSessionRepo(db)

	p := testutil.NewTestProject(user.ID, "Doomed")
	require.NoError(t, projRepo.Create(ctx, p))
	require.NoError(t, sessRepo.Create(ctx, testutil.NewTestSession(p.ID, 1)))

	require.NoError(t, projRepo.Delete(ctx, p.ID))

	sessions, err := sessRepo.ListForProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions, "sessions must be removed with their project")
}
