package handler

import "time"

type createBugRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	ReportedBy  string `json:"reported_by"`
	Severity    string `json:"severity"    validate:"omitempty,oneof=low medium high critical"`
}

// updateBugRequest is a partial update; absent fields are left untouched.
type updateBugRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Severity    *string `json:"severity" validate:"omitempty,oneof=low medium high critical"`
}

type assignBugRequest struct {
	DeveloperID string `json:"developer_id" validate:"required"`
}

// bugResponse is the transport view of a bug, kept separate from the domain
// type so the JSON contract does not track internal changes.
type bugResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ReportedBy  string    `json:"reported_by,omitempty"`
	Severity    string    `json:"severity"`
	DeveloperID string    `json:"developer_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listBugsResponse struct {
	Data  []bugResponse `json:"data"`
	Total int           `json:"total"`
}

type createDeveloperRequest struct {
	Name string `json:"name" validate:"required"`
}

type developerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
