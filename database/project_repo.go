package database

import (
	"errors"
	"time"

	"github.com/devlog-app/backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAllByOwner returns all projects owned by ownerID, newest first
func (r *ProjectRepo) FindAllByOwner(ownerID string) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns the project with the given id, or nil if no project with
// that id is owned by ownerID
func (r *ProjectRepo) FindByID(id uint, ownerID string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project with ownerID attached server-side
func (r *ProjectRepo) Add(ownerID string, project *models.Project) error {
	project.ID = 0
	project.UserID = ownerID
	project.CreatedAt = time.Time{}
	return r.db.Create(project).Error
}
