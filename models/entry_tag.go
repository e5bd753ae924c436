package models

// EntryTag links an entry to a tag
type EntryTag struct {
	ID      uint `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	EntryID uint `json:"entry_id" db:"entry_id" gorm:"not null;index:idx_entry_tags_entry_id;uniqueIndex:idx_entry_tags_unique"`
	TagID   uint `json:"tag_id" db:"tag_id" gorm:"not null;uniqueIndex:idx_entry_tags_unique"`
}
