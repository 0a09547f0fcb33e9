package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/talbenari/coachflow/internal/domain"
)

var testEmailCounter atomic.Int64

// User options
type UserOption func(*domain.User)

func WithRole(r domain.UserRole) UserOption {
	return func(u *domain.User) {
		u.Role = r
	}
}

func WithOrganization(org string) UserOption {
	return func(u *domain.User) {
		u.Organization = org
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	u := &domain.User{
		Name:         name,
		Email:        fmt.Sprintf("%s%d@example.com", name, testEmailCounter.Add(1)),
		PasswordHash: "test-hash",
		Role:         domain.RoleUser,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Project options
type ProjectOption func(*domain.Project)

func WithGoal(goal string) ProjectOption {
	return func(p *domain.Project) {
		p.Goal = goal
	}
}

func NewTestProject(userID int64, name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		UserID: userID,
		Name:   name,
		Status: domain.ProjectActive,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Session options
type SessionOption func(*domain.Session)

func WithStatus(s domain.SessionStatus) SessionOption {
	return func(sess *domain.Session) {
		sess.Status = s
	}
}

func WithSummary(summary string) SessionOption {
	return func(sess *domain.Session) {
		sess.Summary = summary
	}
}

func NewTestSession(projectID int64, number int, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ProjectID:     projectID,
		SessionNumber: number,
		SessionName:   fmt.Sprintf("Session %d", number),
		Status:        domain.StatusNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestMessage(sessionID int64, sender domain.Sender, content string) *domain.Message {
	return &domain.Message{
		SessionID: sessionID,
		Sender:    sender,
		Content:   content,
	}
}

// File options
type FileOption func(*domain.File)

func WithSessionOwner(sessionID int64) FileOption {
	return func(f *domain.File) {
		f.SessionID = sessionID
	}
}

func WithProjectOwner(projectID int64) FileOption {
	return func(f *domain.File) {
		f.ProjectID = projectID
	}
}

// NewTestFile builds a file record; without owner options it belongs to the
// global pool.
func NewTestFile(name string, opts ...FileOption) *domain.File {
	f := &domain.File{
		StoragePath: "/tmp/uploads/" + name,
		DisplayName: name,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
