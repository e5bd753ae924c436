package models

// EntryProject links an entry to a project
type EntryProject struct {
	ID        uint `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	EntryID   uint `json:"entry_id" db:"entry_id" gorm:"not null;index:idx_entry_projects_entry_id;uniqueIndex:idx_entry_projects_unique"`
	ProjectID uint `json:"project_id" db:"project_id" gorm:"not null;uniqueIndex:idx_entry_projects_unique"`
}
