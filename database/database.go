package database

import (
	"github.com/devlog-app/backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db               *gorm.DB
	entryRepo        *EntryRepo
	projectRepo      *ProjectRepo
	tagRepo          *TagRepo
	entryTagRepo     *EntryTagRepo
	entryProjectRepo *EntryProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	tagRepo := NewTagRepo(db)
	entryTagRepo := NewEntryTagRepo(db)
	entryProjectRepo := NewEntryProjectRepo(db)

	return Database{
		db:               db,
		entryRepo:        NewEntryRepo(db, tagRepo, entryTagRepo, entryProjectRepo),
		projectRepo:      NewProjectRepo(db),
		tagRepo:          tagRepo,
		entryTagRepo:     entryTagRepo,
		entryProjectRepo: entryProjectRepo,
	}
}

// Accessor methods for each repository

func (d Database) EntryRepo() *EntryRepo {
	return d.entryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) EntryTagRepo() *EntryTagRepo {
	return d.entryTagRepo
}

func (d Database) EntryProjectRepo() *EntryProjectRepo {
	return d.entryProjectRepo
}

// Migrate creates or updates the journal schema
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.Tag{},
		&models.Project{},
		&models.Entry{},
		&models.EntryTag{},
		&models.EntryProject{},
	)
}
