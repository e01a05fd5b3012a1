package model

import "time"

// Job is a single application record. Every query against it is scoped by
// UserID; a job belonging to another user is treated as nonexistent.
type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Company     string    `gorm:"size:128;not null" json:"company"`
	Position    string    `gorm:"size:128;not null" json:"position"`
	Status      string    `gorm:"size:64;not null;default:applied" json:"status"`
	AppliedDate *string   `gorm:"size:32" json:"applied_date"`
	JobURL      string    `gorm:"size:512" json:"job_url"`
	Salary      string    `gorm:"size:64" json:"salary"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
