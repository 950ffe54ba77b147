package admin

import (
	"log/slog"
	"net/http"

	"github.com/mercata/catalog/internal/domain"
	"github.com/mercata/catalog/internal/handler"
	"github.com/mercata/catalog/internal/service"
)

// ProductHandler serves the administrative edit surface.
type ProductHandler struct {
	editor *service.Editor
	logger *slog.Logger
}

// NewProductHandler creates a new admin product handler.
func NewProductHandler(editor *service.Editor, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		editor: editor,
		logger: logger,
	}
}

// saveResponse reports the outcome of one administrative edit.
type saveResponse struct {
	ProductID string               `json:"productId"`
	Applied   bool                 `json:"applied"`
	Steps     []domain.StepOutcome `json:"steps"`
}

// Save handles POST /admin/products/{id}/save. The edit runs as a sequence
// of independent statements; the response reports each step's outcome.
// A fully applied edit responds 200, anything else 207, except when the
// initial product fetch fails and nothing ran at all, which responds 404.
func (h *ProductHandler) Save(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	var req domain.EditRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	result := h.editor.EditProduct(r.Context(), productID, req)

	status := http.StatusOK
	switch {
	case result.Applied():
	case fetchFailed(result):
		status = http.StatusNotFound
	default:
		status = http.StatusMultiStatus
	}

	handler.RespondJSON(w, status, saveResponse{
		ProductID: result.ProductID,
		Applied:   result.Applied(),
		Steps:     result.Steps,
	})
}

// fetchFailed reports whether the edit aborted on the initial fetch.
func fetchFailed(result *domain.EditResult) bool {
	return len(result.Steps) == 1 &&
		result.Steps[0].Step == domain.StepFetchProduct &&
		!result.Steps[0].OK
}
