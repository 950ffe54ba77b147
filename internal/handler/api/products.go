package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/mercata/catalog/internal/domain"
	"github.com/mercata/catalog/internal/handler"
)

// ProductHandler serves the public product endpoints.
type ProductHandler struct {
	catalog  domain.CatalogService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog domain.CatalogService, validate *validator.Validate, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		catalog:  catalog,
		validate: validate,
		logger:   logger,
	}
}

func (h *ProductHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsCode(err, domain.EINTERNAL) {
		h.logger.Error("request failed", "op", domain.ErrorOp(err), "path", r.URL.Path, "error", err)
	}
	handler.ErrorResponse(w, r, err)
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, products)
}

// Search handles GET /api/products/search. Criteria come from the query
// string: title, description, priceFrom, priceTo.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	products, err := h.catalog.SearchProducts(r.Context(), filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, products)
}

func parseProductFilter(r *http.Request) (domain.ProductFilter, error) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Title:       q.Get("title"),
		Description: q.Get("description"),
	}

	var verr error
	if raw := q.Get("priceFrom"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			verr = domain.AddFieldError(verr, "priceFrom", "priceFrom must be a number")
		} else {
			filter.PriceFrom = &v
		}
	}
	if raw := q.Get("priceTo"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			verr = domain.AddFieldError(verr, "priceTo", "priceTo must be a number")
		} else {
			filter.PriceTo = &v
		}
	}
	if verr != nil {
		return domain.ProductFilter{}, verr
	}
	return filter, nil
}

// Detail handles GET /api/products/{id}.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, product)
}

type createImageRequest struct {
	URL  string `json:"url" validate:"required"`
	Main bool   `json:"main"`
}

type createProductRequest struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description"`
	Price       float64              `json:"price" validate:"gte=0"`
	Images      []createImageRequest `json:"images" validate:"dive"`
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := handler.ValidateStruct(h.validate, "product.create", &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	params := domain.CreateProductParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	for _, img := range req.Images {
		params.Images = append(params.Images, domain.CreateImageParams{URL: img.URL, Main: img.Main})
	}

	product, err := h.catalog.CreateProduct(r.Context(), params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, product)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type patchProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// Patch handles PATCH /api/products/{id}. Absent fields keep their stored
// values.
func (h *ProductHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req patchProductRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := handler.ValidateStruct(h.validate, "product.patch", &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	err := h.catalog.PatchProduct(r.Context(), r.PathValue("id"), domain.PatchProductParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addImagesRequest struct {
	ProductID string               `json:"productId" validate:"required"`
	Images    []createImageRequest `json:"images" validate:"required,min=1,dive"`
}

// AddImages handles POST /api/products/add-images.
func (h *ProductHandler) AddImages(w http.ResponseWriter, r *http.Request) {
	var req addImagesRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := handler.ValidateStruct(h.validate, "product.add_images", &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	images := make([]domain.CreateImageParams, len(req.Images))
	for i, img := range req.Images {
		images[i] = domain.CreateImageParams{URL: img.URL, Main: img.Main}
	}

	created, err := h.catalog.AddImages(r.Context(), req.ProductID, images)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, created)
}

type removeImagesRequest struct {
	Images []string `json:"images" validate:"required,min=1"`
}

// RemoveImages handles POST /api/products/remove-images.
func (h *ProductHandler) RemoveImages(w http.ResponseWriter, r *http.Request) {
	var req removeImagesRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := handler.ValidateStruct(h.validate, "product.remove_images", &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.catalog.RemoveImages(r.Context(), req.Images); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateThumbnailRequest struct {
	NewThumbnailID string `json:"newThumbnailId" validate:"required"`
}

// UpdateThumbnail handles POST /api/products/update-thumbnail/{id}.
func (h *ProductHandler) UpdateThumbnail(w http.ResponseWriter, r *http.Request) {
	var req updateThumbnailRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := handler.ValidateStruct(h.validate, "product.replace_thumbnail", &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.catalog.ReplaceThumbnail(r.Context(), r.PathValue("id"), req.NewThumbnailID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
