package domain

import "time"

// File is an uploaded reference document. Exactly one of SessionID and
// ProjectID is set for scoped files; both are zero for the admin-managed
// global pool. DisplayName is unique within its owning scope.
type File struct {
	ID          int64
	SessionID   int64
	ProjectID   int64
	StoragePath string
	DisplayName string
	CreatedAt   time.Time
}

// Scope derives which pool the file belongs to from its owner fields.
func (f *File) Scope() FileScope {
	switch {
	case f.SessionID != 0:
		return ScopeSession
	case f.ProjectID != 0:
		return ScopeProject
	default:
		return ScopeGlobal
	}
}
