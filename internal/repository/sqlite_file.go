package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/talbenari/coachflow/internal/db"
	"github.com/talbenari/coachflow/internal/domain"
)

// SQLiteFileRepo implements FileRepo using a SQLite database.
type SQLiteFileRepo struct {
	db db.DBTX
}

// NewSQLiteFileRepo creates a new SQLiteFileRepo.
func NewSQLiteFileRepo(conn db.DBTX) *SQLiteFileRepo {
	return &SQLiteFileRepo{db: conn}
}

const fileColumns = `id, session_id, project_id, storage_path, display_name, created_at`

func (r *SQLiteFileRepo) Create(ctx context.Context, f *domain.File) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = nowUTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO files (session_id, project_id, storage_path, display_name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		f.SessionID, f.ProjectID, f.StoragePath, f.DisplayName, formatTime(f.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting file: %w", err)
	}
	f.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading file id: %w", err)
	}
	return nil
}

func (r *SQLiteFileRepo) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+fileColumns+` FROM files WHERE id = ?`, id)
	var f domain.File
	var createdAt string
	err := row.Scan(&f.ID, &f.SessionID, &f.ProjectID, &f.StoragePath, &f.DisplayName, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("file: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning file: %w", err)
	}
	f.CreatedAt = parseTime(createdAt)
	return &f, nil
}

func (r *SQLiteFileRepo) ListForSession(ctx context.Context, sessionID int64) ([]*domain.File, error) {
	return r.list(ctx, `SELECT `+fileColumns+` FROM files WHERE session_id = ? ORDER BY id`, sessionID)
}

func (r *SQLiteFileRepo) ListForProject(ctx context.Context, projectID int64) ([]*domain.File, error) {
	return r.list(ctx, `SELECT `+fileColumns+` FROM files WHERE project_id = ? ORDER BY id`, projectID)
}

// ListGlobal returns the admin-managed pool shared across all projects.
func (r *SQLiteFileRepo) ListGlobal(ctx context.Context) ([]*domain.File, error) {
	return r.list(ctx, `SELECT `+fileColumns+` FROM files WHERE session_id = 0 AND project_id = 0 ORDER BY id`)
}

// ExistsInScope reports whether a file with the same display name already
// exists in f's owning scope.
func (r *SQLiteFileRepo) ExistsInScope(ctx context.Context, f *domain.File) (bool, error) {
	var query string
	var args []any
	switch f.Scope() {
	case domain.ScopeSession:
		query = `SELECT COUNT(1) FROM files WHERE session_id = ? AND display_name = ?`
		args = []any{f.SessionID, f.DisplayName}
	case domain.ScopeProject:
		query = `SELECT COUNT(1) FROM files WHERE project_id = ? AND session_id = 0 AND display_name = ?`
		args = []any{f.ProjectID, f.DisplayName}
	default:
		query = `SELECT COUNT(1) FROM files WHERE session_id = 0 AND project_id = 0 AND display_name = ?`
		args = []any{f.DisplayName}
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("checking file name: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteFileRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

func (r *SQLiteFileRepo) list(ctx context.Context, query string, args ...any) ([]*domain.File, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	defer rows.Close()

	var files []*domain.File
	for rows.Next() {
		var f domain.File
		var createdAt string
		if err := rows.Scan(&f.ID, &f.SessionID, &f.ProjectID, &f.StoragePath, &f.DisplayName, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning file: %w", err)
		}
		f.CreatedAt = parseTime(createdAt)
		files = append(files, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating files: %w", err)
	}
	return files, nil
}
