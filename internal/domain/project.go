package domain

import (
	"strings"
	"time"
)

type Project struct {
	ID                int64
	UserID            int64
	Name              string
	Goal              string
	Status            ProjectStatus
	AggregatedSummary string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the fields a caller must supply before creation.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.UserID == 0 {
		return ErrMissingOwner
	}
	return nil
}
