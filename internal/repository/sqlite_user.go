package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/talbenari/coachflow/internal/db"
	"github.com/talbenari/coachflow/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

const userColumns = `id, name, email, password_hash, role, organization, created_at`

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = nowUTC()
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role, organization, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, string(u.Role), u.Organization, formatTime(u.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return fmt.Errorf("creating user: %w", ErrDuplicateEmail)
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	u.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading user id: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUserFromRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var role, createdAt string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Organization, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.Role = domain.UserRole(role)
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

func scanUserFromRows(rows *sql.Rows) (*domain.User, error) {
	var u domain.User
	var role, createdAt string
	if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Organization, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.Role = domain.UserRole(role)
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

// SQLiteTokenRepo implements TokenRepo using a SQLite database.
type SQLiteTokenRepo struct {
	db db.DBTX
}

// NewSQLiteTokenRepo creates a new SQLiteTokenRepo.
func NewSQLiteTokenRepo(conn db.DBTX) *SQLiteTokenRepo {
	return &SQLiteTokenRepo{db: conn}
}

func (r *SQLiteTokenRepo) Store(ctx context.Context, userID int64, token string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tokens (user_id, token, created_at) VALUES (?, ?, ?)`,
		userID, token, formatTime(nowUTC()),
	)
	if err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	return nil
}

func (r *SQLiteTokenRepo) Resolve(ctx context.Context, token string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT u.id, u.name, u.email, u.password_hash, u.role, u.organization, u.created_at
		FROM tokens t JOIN users u ON u.id = t.user_id
		WHERE t.token = ?`, token)
	u, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *SQLiteTokenRepo) Remove(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}
