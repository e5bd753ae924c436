package models

// Tag is a shared global label applicable to many entries. Names are unique
// across the whole system and matched case-sensitively.
type Tag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_tags_name"`
}
