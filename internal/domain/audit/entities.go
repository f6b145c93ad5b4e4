package audit

import "time"

type EntityType string

const (
	EntityProvider    EntityType = "provider"
	EntityApplicant   EntityType = "applicant"
	EntityApplication EntityType = "application"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionView   Action = "view"
)

// AuditLog rows are append-only: never updated, never deleted, listed by
// timestamp descending.
type AuditLog struct {
	ID         string     `gorm:"primaryKey;size:32;column:id" json:"id"`
	EntityType EntityType `gorm:"size:16;not null;index:idx_audit_logs_entity" json:"entityType"`
	EntityID   string     `gorm:"size:32;not null;index:idx_audit_logs_entity" json:"entityId"`
	Action     Action     `gorm:"size:16;not null" json:"action"`
	Details    string     `gorm:"type:text;not null" json:"details"`
	UserID     string     `gorm:"size:64;not null;default:'admin'" json:"userId"`
	Timestamp  time.Time  `gorm:"column:timestamp;not null;index" json:"timestamp"`
}

func (AuditLog) TableName() string { return "audit_logs" }

// Entry is the insert shape. Id and timestamp are assigned by the store;
// an empty UserID falls back to "admin".
type Entry struct {
	EntityType EntityType
	EntityID   string
	Action     Action
	Details    string
	UserID     string
}
