package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/repository"
)

func TestFileService_UploadStoresBlobAndRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 1)

	f := &domain.File{SessionID: sess.ID, DisplayName: "notes.pdf"}
	require.NoError(t, env.fileSvc.Upload(ctx, f, []byte("pdf bytes")))

	assert.NotZero(t, f.ID)
	assert.NotEmpty(t, f.StoragePath)
	assert.True(t, env.store.Exists(f.StoragePath))

	listed, err := env.fileSvc.ListSession(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "notes.pdf", listed[0].DisplayName)
}

// A duplicate display name in the same pool is rejected before any side
// effect: no blob stored, no row inserted.
func TestFileService_UploadRejectsDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 1)

	first := &domain.File{SessionID: sess.ID, DisplayName: "notes.pdf"}
	require.NoError(t, env.fileSvc.Upload(ctx, first, []byte("a")))
	blobs := env.store.BlobCount()

	dup := &domain.File{SessionID: sess.ID, DisplayName: "notes.pdf"}
	err := env.fileSvc.Upload(ctx, dup, []byte("b"))
	assert.ErrorIs(t, err, domain.ErrDuplicateFileName)

	assert.Equal(t, blobs, env.store.BlobCount(), "no blob may be stored for a rejected upload")
	listed, err := env.fileSvc.ListSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

// The same name is fine in a different pool.
func TestFileService_SameNameAcrossPools(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.newProject(t, "P")
	sess := env.sessionByNumber(t, p.ID, 1)

	require.NoError(t, env.fileSvc.Upload(ctx, &domain.File{SessionID: sess.ID, DisplayName: "notes.pdf"}, []byte("a")))
	require.NoError(t, env.fileSvc.Upload(ctx, &domain.File{ProjectID: p.ID, DisplayName: "notes.pdf"}, []byte("b")))
	require.NoError(t, env.fileSvc.Upload(ctx, &domain.File{DisplayName: "notes.pdf"}, []byte("c")))

	global, err := env.fileSvc.ListGlobal(ctx)
	require.NoError(t, err)
	assert.Len(t, global, 1)
}

func TestFileService_UploadRejectsEmptyName(t *testing.T) {
	env := newTestEnv(t)

	err := env.fileSvc.Upload(context.Background(), &domain.File{DisplayName: "  "}, []byte("a"))
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Zero(t, env.store.BlobCount())
}

func TestFileService_DeleteRemovesBlobAndRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f := &domain.File{DisplayName: "gone.pdf"}
	require.NoError(t, env.fileSvc.Upload(ctx, f, []byte("x")))

	require.NoError(t, env.fileSvc.Delete(ctx, f.ID))

	assert.False(t, env.store.Exists(f.StoragePath))
	_, err := env.files.GetByID(ctx, f.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFileService_DeleteUnknownID(t *testing.T) {
	env := newTestEnv(t)

	err := env.fileSvc.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
