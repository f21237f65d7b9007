package domain

import (
	"encoding/json"
	"time"
)

// AuditLog is read-only from the dashboard's point of view; the backend owns
// writing it.
type AuditLog struct {
	AuditID    uint            `json:"auditId"`
	UserID     uint            `json:"userId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   *uint           `json:"entityId"`
	Details    json.RawMessage `json:"details"`
	CreatedAt  time.Time       `json:"createdAt"`
	UserName   string          `json:"userName,omitempty"`
}

type AuditPage struct {
	Logs       []AuditLog `json:"logs"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
}

// AuditFilter narrows the audit listing; zero values are omitted from the
// upstream query.
type AuditFilter struct {
	Action     string
	EntityType string
	UserID     uint
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

type AuditStat struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}
