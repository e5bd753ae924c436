package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public HTTP surface. Everything requires a bearer
// identity except the tag listing.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/tags", handlers.tagHandler.listTags())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Entry Handler endpoints
		r.Get("/api/entries", handlers.entryHandler.listEntries())
		r.Post("/api/entries", handlers.entryHandler.createEntry())
		r.Get("/api/entries/{entryID}", handlers.entryHandler.getEntry())
		r.Put("/api/entries/{entryID}", handlers.entryHandler.updateEntry())
		r.Delete("/api/entries/{entryID}", handlers.entryHandler.deleteEntry())

		// Project Handler endpoints
		r.Get("/api/projects", handlers.projectHandler.listProjects())
		r.Post("/api/projects", handlers.projectHandler.createProject())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())

		// AI collaborator endpoints
		r.Post("/api/ai/summary", handlers.aiHandler.generateSummary())
		r.Post("/api/ai/next-steps", handlers.aiHandler.suggestNextSteps())
	})
}
