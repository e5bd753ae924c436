package database

import (
	"github.com/devlog-app/backend/models"
	"gorm.io/gorm"
)

type EntryProjectRepo struct {
	db *gorm.DB
}

func NewEntryProjectRepo(db *gorm.DB) *EntryProjectRepo {
	return &EntryProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *EntryProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// ReplaceForEntry deletes all project links for the entry and inserts one row
// per given project id. Pass a transaction handle to make the replacement
// atomic with the surrounding entry write, or nil to use the repo's own
// connection.
func (r *EntryProjectRepo) ReplaceForEntry(tx *gorm.DB, entryID uint, projectIDs []uint) error {
	if tx == nil {
		tx = r.db
	}

	if err := tx.Where("entry_id = ?", entryID).Delete(&models.EntryProject{}).Error; err != nil {
		return err
	}
	if len(projectIDs) == 0 {
		return nil
	}

	rows := make([]models.EntryProject, 0, len(projectIDs))
	for _, projectID := range projectIDs {
		rows = append(rows, models.EntryProject{EntryID: entryID, ProjectID: projectID})
	}
	return tx.Create(&rows).Error
}

// ProjectsForEntry returns the full project records linked to the entry
func (r *EntryProjectRepo) ProjectsForEntry(entryID uint) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.
		Joins("JOIN entry_projects ON entry_projects.project_id = projects.id").
		Where("entry_projects.entry_id = ?", entryID).
		Find(&projects).Error
	return projects, err
}

// DeleteForEntry removes all project links for the entry
func (r *EntryProjectRepo) DeleteForEntry(tx *gorm.DB, entryID uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Where("entry_id = ?", entryID).Delete(&models.EntryProject{}).Error
}

// CountForEntry returns the number of project links for the entry
func (r *EntryProjectRepo) CountForEntry(entryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EntryProject{}).Where("entry_id = ?", entryID).Count(&count).Error
	return count, err
}
