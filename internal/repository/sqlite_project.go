package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/talbenari/coachflow/internal/db"
	"github.com/talbenari/coachflow/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, user_id, name, goal, status, aggregated_summary, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	now := nowUTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (user_id, name, goal, status, aggregated_summary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.Name, p.Goal, string(p.Status), p.AggregatedSummary,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading project id: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (r *SQLiteProjectRepo) ListForUser(ctx context.Context, userID int64) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) UpdateGoal(ctx context.Context, id int64, goal string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects SET goal = ?, updated_at = ? WHERE id = ?`,
		goal, formatTime(nowUTC()), id)
	if err != nil {
		return fmt.Errorf("updating project goal: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) UpdateAggregatedSummary(ctx context.Context, id int64, summary string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects SET aggregated_summary = ?, updated_at = ? WHERE id = ?`,
		summary, formatTime(nowUTC()), id)
	if err != nil {
		return fmt.Errorf("updating aggregated summary: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(nowUTC()), id)
	if err != nil {
		return fmt.Errorf("updating project status: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var status, createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Goal, &status, &p.AggregatedSummary, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Status = domain.ProjectStatus(status)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

func scanProjectFromRows(rows *sql.Rows) (*domain.Project, error) {
	var p domain.Project
	var status, createdAt, updatedAt string
	if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Goal, &status, &p.AggregatedSummary, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Status = domain.ProjectStatus(status)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}
