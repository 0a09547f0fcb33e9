package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/talbenari/coachflow/internal/db"
	"github.com/talbenari/coachflow/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, project_id, session_number, session_name, status, summary, created_at, updated_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	now := nowUTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	if s.Status == "" {
		s.Status = domain.StatusNotStarted
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (project_id, session_number, session_name, status, summary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ProjectID, s.SessionNumber, s.SessionName, string(s.Status), s.Summary,
		formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	s.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading session id: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

func (r *SQLiteSessionRepo) ListForProject(ctx context.Context, projectID int64) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE project_id = ? ORDER BY session_number`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSessionFromRows(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(nowUTC()), id)
	if err != nil {
		return fmt.Errorf("updating session status: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) UpdateSummary(ctx context.Context, id int64, summary string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET summary = ?, updated_at = ? WHERE id = ?`,
		summary, formatTime(nowUTC()), id)
	if err != nil {
		return fmt.Errorf("updating session summary: %w", err)
	}
	return nil
}

func scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var status, createdAt, updatedAt string
	err := row.Scan(&s.ID, &s.ProjectID, &s.SessionNumber, &s.SessionName, &status, &s.Summary, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	s.Status = domain.SessionStatus(status)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

func scanSessionFromRows(rows *sql.Rows) (*domain.Session, error) {
	var s domain.Session
	var status, createdAt, updatedAt string
	if err := rows.Scan(&s.ID, &s.ProjectID, &s.SessionNumber, &s.SessionName, &status, &s.Summary, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	s.Status = domain.SessionStatus(status)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}
