package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/talbenari/coachflow/internal/db"
	"github.com/talbenari/coachflow/internal/domain"
)

// SQLitePromptConfigRepo implements PromptConfigRepo using a SQLite database.
// The table holds exactly one row, created empty on first read.
type SQLitePromptConfigRepo struct {
	db db.DBTX
}

// NewSQLitePromptConfigRepo creates a new SQLitePromptConfigRepo.
func NewSQLitePromptConfigRepo(conn db.DBTX) *SQLitePromptConfigRepo {
	return &SQLitePromptConfigRepo{db: conn}
}

func (r *SQLitePromptConfigRepo) Get(ctx context.Context) (*domain.PromptConfig, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT assistant_prompt, file_upload_prompt, project_summarization_prompt,
		goals_prompt, session_summarization_prompt, updated_at
		FROM prompt_config WHERE id = 1`)

	var c domain.PromptConfig
	err := row.Scan(&c.AssistantPrompt, &c.FileUploadPrompt, &c.ProjectSummarizationPrompt,
		&c.GoalsPrompt, &c.SessionSummarizationPrompt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO prompt_config (id, updated_at) VALUES (1, ?)`,
			formatTime(nowUTC())); err != nil {
			return nil, fmt.Errorf("initializing prompt config: %w", err)
		}
		return &domain.PromptConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning prompt config: %w", err)
	}
	return &c, nil
}

func (r *SQLitePromptConfigRepo) Update(ctx context.Context, c *domain.PromptConfig) error {
	c.UpdatedAt = formatTime(nowUTC())
	res, err := r.db.ExecContext(ctx,
		`UPDATE prompt_config SET assistant_prompt = ?, file_upload_prompt = ?,
		project_summarization_prompt = ?, goals_prompt = ?, session_summarization_prompt = ?,
		updated_at = ? WHERE id = 1`,
		c.AssistantPrompt, c.FileUploadPrompt, c.ProjectSummarizationPrompt,
		c.GoalsPrompt, c.SessionSummarizationPrompt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating prompt config: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// First write before any read: create the row directly.
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO prompt_config (id, assistant_prompt, file_upload_prompt,
			project_summarization_prompt, goals_prompt, session_summarization_prompt, updated_at)
			VALUES (1, ?, ?, ?, ?, ?, ?)`,
			c.AssistantPrompt, c.FileUploadPrompt, c.ProjectSummarizationPrompt,
			c.GoalsPrompt, c.SessionSummarizationPrompt, c.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting prompt config: %w", err)
		}
	}
	return nil
}
