package database

import (
	"errors"
	"time"

	"github.com/devlog-app/backend/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// enrichConcurrency bounds the fan-out when composing enriched entries.
const enrichConcurrency = 8

// EnrichedEntry is an entry together with its resolved tag names and linked
// project records.
type EnrichedEntry struct {
	models.Entry
	Tags     []string         `json:"tags"`
	Projects []models.Project `json:"projects"`
}

// EntryRepo owns entry rows and composes enriched read views through the
// tag registry and the two join-table repositories.
type EntryRepo struct {
	db               *gorm.DB
	tagRepo          *TagRepo
	entryTagRepo     *EntryTagRepo
	entryProjectRepo *EntryProjectRepo
}

func NewEntryRepo(db *gorm.DB, tagRepo *TagRepo, entryTagRepo *EntryTagRepo, entryProjectRepo *EntryProjectRepo) *EntryRepo {
	return &EntryRepo{
		db:               db,
		tagRepo:          tagRepo,
		entryTagRepo:     entryTagRepo,
		entryProjectRepo: entryProjectRepo,
	}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *EntryRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAllByOwner returns all entries owned by ownerID, most recent first,
// each enriched with its tag names and project records. Enrichment fans out
// one goroutine per entry, bounded by enrichConcurrency.
func (r *EntryRepo) FindAllByOwner(ownerID string) ([]EnrichedEntry, error) {
	var entries []models.Entry
	err := r.db.Where("user_id = ?", ownerID).Order("date DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}

	enriched := make([]EnrichedEntry, len(entries))
	var group errgroup.Group
	group.SetLimit(enrichConcurrency)
	for i, entry := range entries {
		i, entry := i, entry
		group.Go(func() error {
			e, err := r.enrich(entry)
			if err != nil {
				return err
			}
			enriched[i] = *e
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// FindByID returns the enriched entry with the given id, or nil if no entry
// with that id is owned by ownerID. Absent and not-owned are deliberately
// indistinguishable.
func (r *EntryRepo) FindByID(id uint, ownerID string) (*EnrichedEntry, error) {
	var entry models.Entry
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.enrich(entry)
}

// Create inserts the entry with ownerID attached server-side and links the
// given tags and projects. The entry write and both association writes run in
// one transaction. Returns with the bare entry populated, not enriched.
func (r *EntryRepo) Create(ownerID string, entry *models.Entry, tagNames []string, projectIDs []uint) error {
	entry.ID = 0
	entry.UserID = ownerID
	entry.CreatedAt = time.Time{}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if len(tagNames) > 0 {
			tags, err := r.tagRepo.Resolve(tx, tagNames)
			if err != nil {
				return err
			}
			if err := r.entryTagRepo.ReplaceForEntry(tx, entry.ID, tagIDs(tags)); err != nil {
				return err
			}
		}
		if len(projectIDs) > 0 {
			if err := r.entryProjectRepo.ReplaceForEntry(tx, entry.ID, projectIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update applies the given column updates to the entry matching both id and
// ownerID. A nil tagNames or projectIDs pointer leaves that relation
// untouched; a non-nil pointer (including one to an empty slice) fully
// replaces it. Everything runs in one transaction. Returns nil when no owned
// entry matched.
func (r *EntryRepo) Update(id uint, ownerID string, updates map[string]any, tagNames *[]string, projectIDs *[]uint) (*models.Entry, error) {
	var updated *models.Entry

	err := r.db.Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Entry{}).Where("id = ? AND user_id = ?", id, ownerID)
		if len(updates) > 0 {
			res := owned.Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
		} else {
			var count int64
			if err := owned.Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return nil
			}
		}

		if tagNames != nil {
			tags, err := r.tagRepo.Resolve(tx, *tagNames)
			if err != nil {
				return err
			}
			if err := r.entryTagRepo.ReplaceForEntry(tx, id, tagIDs(tags)); err != nil {
				return err
			}
		}
		if projectIDs != nil {
			if err := r.entryProjectRepo.ReplaceForEntry(tx, id, *projectIDs); err != nil {
				return err
			}
		}

		var entry models.Entry
		if err := tx.First(&entry, id).Error; err != nil {
			return err
		}
		updated = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the entry's join rows in both relations, then the entry row
// itself filtered by id and ownerID. Children go first to satisfy referential
// constraints. Deleting a non-owned or absent id is a no-op.
func (r *EntryRepo) Delete(id uint, ownerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Entry{}).Where("id = ? AND user_id = ?", id, ownerID).Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		if err := r.entryTagRepo.DeleteForEntry(tx, id); err != nil {
			return err
		}
		if err := r.entryProjectRepo.DeleteForEntry(tx, id); err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Entry{}).Error
	})
}

func (r *EntryRepo) enrich(entry models.Entry) (*EnrichedEntry, error) {
	tagNames, err := r.entryTagRepo.TagNamesForEntry(entry.ID)
	if err != nil {
		return nil, err
	}
	projects, err := r.entryProjectRepo.ProjectsForEntry(entry.ID)
	if err != nil {
		return nil, err
	}
	return &EnrichedEntry{Entry: entry, Tags: tagNames, Projects: projects}, nil
}

func tagIDs(tags []models.Tag) []uint {
	ids := make([]uint, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}
