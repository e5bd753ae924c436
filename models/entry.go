package models

import "time"

// Entry represents a single journal record capturing a learning event
type Entry struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	UserID     string    `json:"userId" db:"user_id" gorm:"type:text;not null;index:idx_entries_user_id"`
	Date       time.Time `json:"date" db:"date" gorm:"type:timestamp;not null"`
	Content    string    `json:"content" db:"content" gorm:"type:text;not null"`
	Bug        *string   `json:"bug,omitempty" db:"bug" gorm:"type:text"`
	Solution   *string   `json:"solution,omitempty" db:"solution" gorm:"type:text"`
	TimeSpent  int       `json:"timeSpent" db:"time_spent" gorm:"type:integer;not null;default:0"`
	Confidence int       `json:"confidence" db:"confidence" gorm:"type:integer;not null;default:3"`
	Notes      *string   `json:"notes,omitempty" db:"notes" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
}
