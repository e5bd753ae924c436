package database

import (
	"github.com/devlog-app/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepo is the registry for the shared global tag vocabulary. Tags are
// created lazily on first use and never deleted.
type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *TagRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all tags from the database
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Find(&tags).Error
	return tags, err
}

// Resolve returns one Tag per distinct name, creating rows for names not yet
// present. The insert uses ON CONFLICT DO NOTHING so two requests racing on
// the same new name cannot create duplicate rows. Duplicate names in the
// input are tolerated. Order of the result is not guaranteed.
//
// Pass a transaction handle to resolve within an enclosing transaction, or
// nil to use the repo's own connection.
func (r *TagRepo) Resolve(tx *gorm.DB, names []string) ([]models.Tag, error) {
	if tx == nil {
		tx = r.db
	}

	unique := dedupeNames(names)
	if len(unique) == 0 {
		return nil, nil
	}

	rows := make([]models.Tag, len(unique))
	for i, name := range unique {
		rows[i] = models.Tag{Name: name}
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return nil, err
	}

	// Re-select so rows skipped by the conflict clause carry their real IDs.
	var tags []models.Tag
	err = tx.Where("name IN ?", unique).Find(&tags).Error
	return tags, err
}

// dedupeNames removes duplicate names while preserving first-seen order
func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
