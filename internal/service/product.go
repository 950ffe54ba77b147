package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mercata/catalog/internal/domain"
	"github.com/mercata/catalog/internal/repository"
)

// catalogService implements domain.CatalogService on the relational store.
type catalogService struct {
	repo repository.Querier
}

var _ domain.CatalogService = (*catalogService)(nil)

// NewCatalogService creates a store-backed catalog service.
func NewCatalogService(repo repository.Querier) domain.CatalogService {
	return &catalogService{repo: repo}
}

// ListProducts returns every product with comments, images and thumbnail
// attached. The three row sets are fetched independently and joined here.
func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	productRows, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, domain.Internal(err, "product.list", "failed to list products")
	}

	commentRows, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, domain.Internal(err, "product.list", "failed to list comments")
	}

	imageRows, err := s.repo.ListImages(ctx)
	if err != nil {
		return nil, domain.Internal(err, "product.list", "failed to list images")
	}

	return Aggregate(mapProductRows(productRows), commentRows, imageRows), nil
}

// SearchProducts returns aggregated products matching the filter, or
// ENOTFOUND when nothing matches.
func (s *catalogService) SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query, args := BuildProductSearchQuery(filter)

	productRows, err := s.repo.SearchProducts(ctx, query, args)
	if err != nil {
		return nil, domain.Internal(err, "product.search", "failed to search products")
	}
	if len(productRows) == 0 {
		return nil, domain.Errorf(domain.ENOTFOUND, "product.search", "no products match the filter")
	}

	commentRows, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, domain.Internal(err, "product.search", "failed to list comments")
	}

	imageRows, err := s.repo.ListImages(ctx)
	if err != nil {
		return nil, domain.Internal(err, "product.search", "failed to list images")
	}

	return Aggregate(mapProductRows(productRows), commentRows, imageRows), nil
}

// GetProduct returns one product with its own comments and images attached.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	productID, err := parseUUID("product.get", "id", id)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, "product.get", "failed to get product")
	}

	commentRows, err := s.repo.ListCommentsByProduct(ctx, productID)
	if err != nil {
		return nil, domain.Internal(err, "product.get", "failed to list product comments")
	}

	imageRows, err := s.repo.ListImagesByProduct(ctx, productID)
	if err != nil {
		return nil, domain.Internal(err, "product.get", "failed to list product images")
	}

	products := Aggregate([]domain.Product{mapProductRow(row)}, commentRows, imageRows)
	return &products[0], nil
}

// CreateProduct creates a product and its initial images, if any.
func (s *catalogService) CreateProduct(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error) {
	productID := newUUID()

	err := s.repo.CreateProduct(ctx, repository.CreateProductParams{
		ProductID:   productID,
		Title:       textValue(params.Title),
		Description: textValue(params.Description),
		Price:       floatToNumeric(params.Price),
	})
	if err != nil {
		return nil, domain.Internal(err, "product.create", "failed to create product")
	}

	product := domain.Product{
		ID:          uuidString(productID),
		Title:       params.Title,
		Description: params.Description,
		Price:       params.Price,
	}

	if len(params.Images) > 0 {
		images, err := s.createImages(ctx, productID, params.Images)
		if err != nil {
			return nil, domain.Internal(err, "product.create", "failed to create product images")
		}
		product.Images = images
		if main, ok := domain.MainImage(images); ok {
			product.Thumbnail = main.URL
		}
	}

	return &product, nil
}

// DeleteProduct removes a product together with its comments and images.
// The store does not cascade, so dependents go first; the product row's
// affected count decides existence.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	productID, err := parseUUID("product.delete", "id", id)
	if err != nil {
		return err
	}

	if _, err := s.repo.DeleteImagesByProduct(ctx, productID); err != nil {
		return domain.Internal(err, "product.delete", "failed to delete product images")
	}

	if _, err := s.repo.DeleteCommentsByProduct(ctx, productID); err != nil {
		return domain.Internal(err, "product.delete", "failed to delete product comments")
	}

	affected, err := s.repo.DeleteProduct(ctx, productID)
	if err != nil {
		return domain.Internal(err, "product.delete", "failed to delete product")
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// PatchProduct updates title/description/price. Absent payload fields keep
// the currently stored values; omission never nulls a field.
func (s *catalogService) PatchProduct(ctx context.Context, id string, params domain.PatchProductParams) error {
	productID, err := parseUUID("product.patch", "id", id)
	if err != nil {
		return err
	}

	row, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		return domain.Internal(err, "product.patch", "failed to get product")
	}
	current := mapProductRow(row)

	title := current.Title
	if params.Title != nil {
		title = *params.Title
	}
	description := current.Description
	if params.Description != nil {
		description = *params.Description
	}
	price := current.Price
	if params.Price != nil {
		price = *params.Price
	}

	_, err = s.repo.UpdateProductFields(ctx, repository.UpdateProductFieldsParams{
		Title:       textValue(title),
		Description: textValue(description),
		Price:       floatToNumeric(price),
		ProductID:   productID,
	})
	if err != nil {
		return domain.Internal(err, "product.patch", "failed to update product")
	}
	return nil
}

// AddImages attaches images to a product, all rows as given.
func (s *catalogService) AddImages(ctx context.Context, id string, images []domain.CreateImageParams) ([]domain.Image, error) {
	productID, err := parseUUID("product.add_images", "productId", id)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, domain.Invalid("product.add_images", "images list is empty")
	}

	created, err := s.createImages(ctx, productID, images)
	if err != nil {
		return nil, domain.Internal(err, "product.add_images", "failed to create images")
	}
	return created, nil
}

func (s *catalogService) createImages(ctx context.Context, productID pgtype.UUID, images []domain.CreateImageParams) ([]domain.Image, error) {
	created := make([]domain.Image, 0, len(images))
	for _, img := range images {
		imageID := newUUID()
		var main int16
		if img.Main {
			main = 1
		}

		err := s.repo.CreateImage(ctx, repository.CreateImageParams{
			ImageID:   imageID,
			ProductID: productID,
			URL:       img.URL,
			Main:      main,
		})
		if err != nil {
			return nil, err
		}

		created = append(created, domain.Image{
			ID:        uuidString(imageID),
			ProductID: uuidString(productID),
			URL:       img.URL,
			Main:      img.Main,
		})
	}
	return created, nil
}

// RemoveImages bulk-deletes the named image rows. Zero affected rows is
// reported as ENOTFOUND rather than success.
func (s *catalogService) RemoveImages(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domain.Invalid("product.remove_images", "images list is empty")
	}

	imageIDs := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		imageID, err := parseUUID("product.remove_images", "images", id)
		if err != nil {
			return err
		}
		imageIDs[i] = imageID
	}

	affected, err := s.repo.DeleteImages(ctx, imageIDs)
	if err != nil {
		return domain.Internal(err, "product.remove_images", "failed to delete images")
	}
	if affected == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

// ReplaceThumbnail moves the main flag from the product's current main
// image to imageID in one statement. It requires exactly one current main
// image and that imageID belongs to the product. Zero affected rows means
// the flip was a no-op and is surfaced as ENOTFOUND, not swallowed.
func (s *catalogService) ReplaceThumbnail(ctx context.Context, productID, imageID string) error {
	const op = "product.replace_thumbnail"

	pid, err := parseUUID(op, "id", productID)
	if err != nil {
		return err
	}
	newID, err := parseUUID(op, "newThumbnailId", imageID)
	if err != nil {
		return err
	}

	mains, err := s.repo.ListMainImages(ctx, pid)
	if err != nil {
		return domain.Internal(err, op, "failed to load current thumbnail")
	}
	if len(mains) != 1 {
		return domain.Invalid(op, "product does not have exactly one main image")
	}
	if mains[0].ImageID == newID {
		// Already the thumbnail; the two-row flip would clear it.
		return nil
	}

	if _, err := s.repo.GetProductImage(ctx, repository.GetProductImageParams{
		ProductID: pid,
		ImageID:   newID,
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invalid(op, "image does not belong to the product")
		}
		return domain.Internal(err, op, "failed to load new thumbnail image")
	}

	affected, err := s.repo.ReplaceThumbnail(ctx, repository.ReplaceThumbnailParams{
		CurrentID: mains[0].ImageID,
		NewID:     newID,
	})
	if err != nil {
		return domain.Internal(err, op, "failed to replace thumbnail")
	}
	if affected == 0 {
		return domain.NotFound(op, "thumbnail image", imageID)
	}
	return nil
}
