package routes

import (
	"github.com/mercata/catalog/internal/router"
)

// RegisterAdminRoutes registers the administrative edit routes.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	r.Post("/admin/products/{id}/save", deps.ProductHandler.Save)
}
