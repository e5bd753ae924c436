package database

import (
	"github.com/devlog-app/backend/models"
	"gorm.io/gorm"
)

type EntryTagRepo struct {
	db *gorm.DB
}

func NewEntryTagRepo(db *gorm.DB) *EntryTagRepo {
	return &EntryTagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *EntryTagRepo) GetDB() *gorm.DB {
	return r.db
}

// ReplaceForEntry deletes all tag links for the entry and inserts one row per
// given tag id. Pass a transaction handle to make the replacement atomic with
// the surrounding entry write, or nil to use the repo's own connection.
func (r *EntryTagRepo) ReplaceForEntry(tx *gorm.DB, entryID uint, tagIDs []uint) error {
	if tx == nil {
		tx = r.db
	}

	if err := tx.Where("entry_id = ?", entryID).Delete(&models.EntryTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]models.EntryTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, models.EntryTag{EntryID: entryID, TagID: tagID})
	}
	return tx.Create(&rows).Error
}

// TagNamesForEntry returns the names of all tags linked to the entry
func (r *EntryTagRepo) TagNamesForEntry(entryID uint) ([]string, error) {
	names := []string{}
	err := r.db.Model(&models.Tag{}).
		Joins("JOIN entry_tags ON entry_tags.tag_id = tags.id").
		Where("entry_tags.entry_id = ?", entryID).
		Pluck("tags.name", &names).Error
	return names, err
}

// DeleteForEntry removes all tag links for the entry
func (r *EntryTagRepo) DeleteForEntry(tx *gorm.DB, entryID uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Where("entry_id = ?", entryID).Delete(&models.EntryTag{}).Error
}

// CountForEntry returns the number of tag links for the entry
func (r *EntryTagRepo) CountForEntry(entryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EntryTag{}).Where("entry_id = ?", entryID).Count(&count).Error
	return count, err
}
