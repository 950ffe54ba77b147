package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mercata/catalog/internal/domain"
	"github.com/mercata/catalog/internal/handler"
)

// CommentHandler serves the public comment endpoints.
type CommentHandler struct {
	comments domain.CommentService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(comments domain.CommentService, validate *validator.Validate, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		comments: comments,
		validate: validate,
		logger:   logger,
	}
}

func (h *CommentHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsCode(err, domain.EINTERNAL) {
		h.logger.Error("request failed", "op", domain.ErrorOp(err), "path", r.URL.Path, "error", err)
	}
	handler.ErrorResponse(w, r, err)
}

// List handles GET /api/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListComments(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, comments)
}

// Detail handles GET /api/comments/{id}.
func (h *CommentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	comment, err := h.comments.GetComment(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, comment)
}

type createCommentRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Body      string `json:"body" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// Create handles POST /api/comments. Near-duplicate submissions are
// rejected with 422.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := handler.ValidateStruct(h.validate, "comment.create", &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	comment, err := h.comments.CreateComment(r.Context(), domain.CreateCommentParams{
		Name:      req.Name,
		Email:     req.Email,
		Body:      req.Body,
		ProductID: req.ProductID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, comment)
}

type upsertCommentRequest struct {
	ID        string  `json:"id" validate:"required"`
	Name      *string `json:"name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Body      *string `json:"body"`
	ProductID string  `json:"productId"`
}

// Upsert handles PATCH /api/comments: updates the comment when the ID
// matches a row, otherwise validates the full payload and creates one.
func (h *CommentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertCommentRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := handler.ValidateStruct(h.validate, "comment.upsert", &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	comment, created, err := h.comments.UpsertComment(r.Context(), domain.UpsertCommentParams{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Body:      req.Body,
		ProductID: req.ProductID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	handler.RespondJSON(w, status, comment)
}

// Delete handles DELETE /api/comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.comments.DeleteComment(r.Context(), r.PathValue("id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
