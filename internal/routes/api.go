package routes

import (
	"github.com/mercata/catalog/internal/router"
)

// RegisterAPIRoutes registers the public catalog routes.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Products. The fixed-path routes are registered alongside /{id};
	// ServeMux prefers the more specific literal patterns.
	r.Get("/api/products", deps.ProductHandler.List)
	r.Get("/api/products/search", deps.ProductHandler.Search)
	r.Get("/api/products/{id}", deps.ProductHandler.Detail)
	r.Post("/api/products", deps.ProductHandler.Create)
	r.Delete("/api/products/{id}", deps.ProductHandler.Delete)
	r.Patch("/api/products/{id}", deps.ProductHandler.Patch)
	r.Post("/api/products/add-images", deps.ProductHandler.AddImages)
	r.Post("/api/products/remove-images", deps.ProductHandler.RemoveImages)
	r.Post("/api/products/update-thumbnail/{id}", deps.ProductHandler.UpdateThumbnail)

	// Comments.
	r.Get("/api/comments", deps.CommentHandler.List)
	r.Get("/api/comments/{id}", deps.CommentHandler.Detail)
	r.Post("/api/comments", deps.CommentHandler.Create)
	r.Patch("/api/comments", deps.CommentHandler.Upsert)
	r.Delete("/api/comments/{id}", deps.CommentHandler.Delete)
}
