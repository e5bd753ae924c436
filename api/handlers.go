package api

import (
	"github.com/devlog-app/backend/database"
	"github.com/devlog-app/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, aiClient *services.AIClient) *routeHandlers {
	return &routeHandlers{
		entryHandler:   newEntryHandler(database.EntryRepo()),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		tagHandler:     newTagHandler(database.TagRepo()),
		aiHandler:      newAIHandler(database.EntryRepo(), aiClient),
	}
}
