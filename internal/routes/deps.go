package routes

import (
	"github.com/mercata/catalog/internal/handler/admin"
	"github.com/mercata/catalog/internal/handler/api"
)

// APIDeps contains dependencies for the public API routes.
type APIDeps struct {
	// Products (consolidated: list, search, detail, create, delete, patch,
	// image management, thumbnail)
	ProductHandler *api.ProductHandler

	// Comments (consolidated: list, detail, create, upsert, delete)
	CommentHandler *api.CommentHandler
}

// AdminDeps contains dependencies for the administrative routes.
type AdminDeps struct {
	ProductHandler *admin.ProductHandler
}
