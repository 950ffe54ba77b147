package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/mercata/catalog/internal/domain"
)

// mockCatalogService implements domain.CatalogService for testing. Unset
// functions panic via the embedded nil interface, which catches handlers
// calling operations a test did not expect.
type mockCatalogService struct {
	domain.CatalogService

	listProductsFunc     func(ctx context.Context) ([]domain.Product, error)
	searchProductsFunc   func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	getProductFunc       func(ctx context.Context, id string) (*domain.Product, error)
	createProductFunc    func(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error)
	deleteProductFunc    func(ctx context.Context, id string) error
	removeImagesFunc     func(ctx context.Context, ids []string) error
	replaceThumbnailFunc func(ctx context.Context, productID, imageID string) error
}

func (m *mockCatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return m.listProductsFunc(ctx)
}

func (m *mockCatalogService) SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return m.searchProductsFunc(ctx, filter)
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return m.getProductFunc(ctx, id)
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error) {
	return m.createProductFunc(ctx, params)
}

func (m *mockCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return m.deleteProductFunc(ctx, id)
}

func (m *mockCatalogService) RemoveImages(ctx context.Context, ids []string) error {
	return m.removeImagesFunc(ctx, ids)
}

func (m *mockCatalogService) ReplaceThumbnail(ctx context.Context, productID, imageID string) error {
	return m.replaceThumbnailFunc(ctx, productID, imageID)
}

func newProductHandler(svc domain.CatalogService) *ProductHandler {
	return NewProductHandler(svc, validator.New(), nil)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code string, fields map[string]string) {
	t.Helper()
	var response struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return response.Error.Code, response.Error.Fields
}

func TestProductHandler_List(t *testing.T) {
	t.Run("returns aggregated products", func(t *testing.T) {
		svc := &mockCatalogService{
			listProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
				return []domain.Product{
					{
						ID:    "11111111-1111-1111-1111-111111111111",
						Title: "Mug",
						Price: 14.5,
						Comments: []domain.Comment{
							{ID: "aaaaaaaa-0000-0000-0000-000000000001", Body: "great"},
						},
						Thumbnail: "https://img/mug.jpg",
					},
				}, nil
			},
		}
		h := newProductHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := httptest.NewRecorder()
		h.List(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var products []domain.Product
		if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("products count = %d, want 1", len(products))
		}
		if products[0].Thumbnail != "https://img/mug.jpg" {
			t.Errorf("thumbnail = %q, want %q", products[0].Thumbnail, "https://img/mug.jpg")
		}
		if len(products[0].Comments) != 1 {
			t.Errorf("comments count = %d, want 1", len(products[0].Comments))
		}
	})

	t.Run("service failure returns 500 with generic message", func(t *testing.T) {
		svc := &mockCatalogService{
			listProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
				return nil, domain.Internal(nil, "product.list", "db at 10.0.0.1 down")
			},
		}
		h := newProductHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h.List(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		if body := rec.Body.String(); strings.Contains(body, "10.0.0.1") {
			t.Errorf("response leaked internal detail: %q", body)
		}
	})
}

func TestProductHandler_Search(t *testing.T) {
	t.Run("builds filter from query string", func(t *testing.T) {
		var gotFilter domain.ProductFilter
		svc := &mockCatalogService{
			searchProductsFunc: func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
				gotFilter = filter
				return []domain.Product{{ID: "11111111-1111-1111-1111-111111111111"}}, nil
			},
		}
		h := newProductHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products/search?title=mug&priceFrom=10&priceTo=20", nil)
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if gotFilter.Title != "mug" {
			t.Errorf("filter.Title = %q, want %q", gotFilter.Title, "mug")
		}
		if gotFilter.PriceFrom == nil || *gotFilter.PriceFrom != 10 {
			t.Errorf("filter.PriceFrom = %v, want 10", gotFilter.PriceFrom)
		}
		if gotFilter.PriceTo == nil || *gotFilter.PriceTo != 20 {
			t.Errorf("filter.PriceTo = %v, want 20", gotFilter.PriceTo)
		}
	})

	t.Run("no matches returns 404", func(t *testing.T) {
		svc := &mockCatalogService{
			searchProductsFunc: func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
				return nil, domain.Errorf(domain.ENOTFOUND, "product.search", "no products match the filter")
			},
		}
		h := newProductHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products/search?title=unobtainium", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("non-numeric price bound returns 400", func(t *testing.T) {
		h := newProductHandler(&mockCatalogService{})

		req := httptest.NewRequest(http.MethodGet, "/api/products/search?priceFrom=cheap", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		_, fields := decodeError(t, rec)
		if _, ok := fields["priceFrom"]; !ok {
			t.Errorf("fields = %v, want priceFrom entry", fields)
		}
	})
}

func TestProductHandler_Detail(t *testing.T) {
	t.Run("missing product returns 404", func(t *testing.T) {
		svc := &mockCatalogService{
			getProductFunc: func(ctx context.Context, id string) (*domain.Product, error) {
				return nil, domain.ErrProductNotFound
			},
		}
		h := newProductHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products/11111111-1111-1111-1111-111111111111", nil)
		req.SetPathValue("id", "11111111-1111-1111-1111-111111111111")
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h.Detail(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		svc := &mockCatalogService{
			getProductFunc: func(ctx context.Context, id string) (*domain.Product, error) {
				return nil, domain.NewValidationError("product.get", "id", "id is not a UUID")
			},
		}
		h := newProductHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
		req.SetPathValue("id", "42")
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h.Detail(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("valid payload creates and returns 201", func(t *testing.T) {
		var gotParams domain.CreateProductParams
		svc := &mockCatalogService{
			createProductFunc: func(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error) {
				gotParams = params
				return &domain.Product{ID: "11111111-1111-1111-1111-111111111111", Title: params.Title}, nil
			},
		}
		h := newProductHandler(svc)

		body := `{"title":"Mug","price":14.5,"images":[{"url":"https://img/a.jpg","main":true}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if gotParams.Title != "Mug" {
			t.Errorf("params.Title = %q, want %q", gotParams.Title, "Mug")
		}
		if len(gotParams.Images) != 1 || !gotParams.Images[0].Main {
			t.Errorf("params.Images = %v, want one main image", gotParams.Images)
		}
	})

	t.Run("missing title returns 400 with field detail", func(t *testing.T) {
		h := newProductHandler(&mockCatalogService{})

		body := `{"price":14.5}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		code, fields := decodeError(t, rec)
		if code != domain.EINVALID {
			t.Errorf("error.code = %q, want %q", code, domain.EINVALID)
		}
		if _, ok := fields["title"]; !ok {
			t.Errorf("fields = %v, want title entry", fields)
		}
	})

	t.Run("empty body returns 400", func(t *testing.T) {
		h := newProductHandler(&mockCatalogService{})

		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestProductHandler_RemoveImages(t *testing.T) {
	t.Run("empty list returns 400", func(t *testing.T) {
		h := newProductHandler(&mockCatalogService{})

		req := httptest.NewRequest(http.MethodPost, "/api/products/remove-images", strings.NewReader(`{"images":[]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.RemoveImages(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("nothing deleted returns 404", func(t *testing.T) {
		svc := &mockCatalogService{
			removeImagesFunc: func(ctx context.Context, ids []string) error {
				return domain.ErrImageNotFound
			},
		}
		h := newProductHandler(svc)

		body := `{"images":["bbbbbbbb-0000-0000-0000-000000000001"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/products/remove-images", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.RemoveImages(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestProductHandler_UpdateThumbnail(t *testing.T) {
	t.Run("flips and returns 204", func(t *testing.T) {
		var gotProduct, gotImage string
		svc := &mockCatalogService{
			replaceThumbnailFunc: func(ctx context.Context, productID, imageID string) error {
				gotProduct, gotImage = productID, imageID
				return nil
			},
		}
		h := newProductHandler(svc)

		body := `{"newThumbnailId":"bbbbbbbb-0000-0000-0000-000000000002"}`
		req := httptest.NewRequest(http.MethodPost, "/api/products/update-thumbnail/11111111-1111-1111-1111-111111111111", strings.NewReader(body))
		req.SetPathValue("id", "11111111-1111-1111-1111-111111111111")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.UpdateThumbnail(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusNoContent, rec.Body.String())
		}
		if gotProduct != "11111111-1111-1111-1111-111111111111" {
			t.Errorf("productID = %q", gotProduct)
		}
		if gotImage != "bbbbbbbb-0000-0000-0000-000000000002" {
			t.Errorf("imageID = %q", gotImage)
		}
	})

	t.Run("missing body field returns 400", func(t *testing.T) {
		h := newProductHandler(&mockCatalogService{})

		req := httptest.NewRequest(http.MethodPost, "/api/products/update-thumbnail/11111111-1111-1111-1111-111111111111", strings.NewReader(`{}`))
		req.SetPathValue("id", "11111111-1111-1111-1111-111111111111")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.UpdateThumbnail(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}
