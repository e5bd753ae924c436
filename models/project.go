package models

import "time"

// Project represents a user-owned unit of work entries can be linked to
type Project struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	UserID      string    `json:"userId" db:"user_id" gorm:"type:text;not null;index:idx_projects_user_id"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	RepoURL     *string   `json:"repoUrl,omitempty" db:"repo_url" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
}
