package domain

import "time"

// Audit actions recorded for security-relevant operations.
const (
	AuditLoginSucceeded   = "login_succeeded"
	AuditLoginFailed      = "login_failed"
	AuditLoginThrottled   = "login_throttled"
	AuditUserRegistered   = "user_registered"
	AuditBugCreated       = "bug_created"
	AuditBugUpdated       = "bug_updated"
	AuditBugDeleted       = "bug_deleted"
	AuditBugAssigned      = "bug_assigned"
	AuditProjectCreated   = "project_created"
	AuditDeveloperCreated = "developer_created"
)

// AuditEvent is an append-only record of who did what. Actor is the username
// from the request's claims, or the attempted username for login events.
type AuditEvent struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
