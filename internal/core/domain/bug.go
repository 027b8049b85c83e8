package domain

import (
	"errors"
	"time"
)

// Severity classifies how serious a bug report is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var ErrBugNotFound = errors.New("bug not found")
var ErrInvalidSeverity = errors.New("invalid severity")

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Bug is a single reported defect. DeveloperID is empty until the bug is
// assigned.
type Bug struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ReportedBy  string    `json:"reported_by,omitempty"`
	Severity    Severity  `json:"severity"`
	DeveloperID string    `json:"developer_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
