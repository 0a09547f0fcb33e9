package repository

import (
	"context"
	"fmt"

	"github.com/talbenari/coachflow/internal/db"
	"github.com/talbenari/coachflow/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo using a SQLite database.
type SQLiteMessageRepo struct {
	db db.DBTX
}

// NewSQLiteMessageRepo creates a new SQLiteMessageRepo.
func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

func (r *SQLiteMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = nowUTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, sender, content, created_at) VALUES (?, ?, ?, ?)`,
		m.SessionID, string(m.Sender), m.Content, formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading message id: %w", err)
	}
	return nil
}

// ListForSession returns a session's messages in insertion order, which is
// the conversation order used verbatim as model context.
func (r *SQLiteMessageRepo) ListForSession(ctx context.Context, sessionID int64) ([]*domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, sender, content, created_at FROM messages
		WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var msgs []*domain.Message
	for rows.Next() {
		var m domain.Message
		var sender, createdAt string
		if err := rows.Scan(&m.ID, &m.SessionID, &sender, &m.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.Sender = domain.Sender(sender)
		m.CreatedAt = parseTime(createdAt)
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return msgs, nil
}
