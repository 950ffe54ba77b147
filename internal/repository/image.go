package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const imageColumns = "image_id, product_id, url, main"

const listImages = "SELECT " + imageColumns + " FROM images"

// ListImages returns the full image row set, across all products.
func (q *Queries) ListImages(ctx context.Context) ([]ImageRow, error) {
	return q.queryImages(ctx, listImages)
}

const listImagesByProduct = "SELECT " + imageColumns + " FROM images WHERE product_id = $1"

func (q *Queries) ListImagesByProduct(ctx context.Context, productID pgtype.UUID) ([]ImageRow, error) {
	return q.queryImages(ctx, listImagesByProduct, productID)
}

const listMainImages = "SELECT " + imageColumns + " FROM images WHERE product_id = $1 AND main = 1"

// ListMainImages returns the images flagged as main for a product. The
// thumbnail invariant allows at most one row, but the statement does not
// assume it; callers validate the count.
func (q *Queries) ListMainImages(ctx context.Context, productID pgtype.UUID) ([]ImageRow, error) {
	return q.queryImages(ctx, listMainImages, productID)
}

func (q *Queries) queryImages(ctx context.Context, query string, args ...any) ([]ImageRow, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ImageRow
	for rows.Next() {
		var r ImageRow
		if err := rows.Scan(&r.ImageID, &r.ProductID, &r.URL, &r.Main); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getProductImage = "SELECT " + imageColumns + " FROM images WHERE product_id = $1 AND image_id = $2"

// GetProductImageParams identifies an image within a product.
type GetProductImageParams struct {
	ProductID pgtype.UUID
	ImageID   pgtype.UUID
}

// GetProductImage returns the image only when it belongs to the product.
func (q *Queries) GetProductImage(ctx context.Context, arg GetProductImageParams) (ImageRow, error) {
	var r ImageRow
	err := q.db.QueryRow(ctx, getProductImage, arg.ProductID, arg.ImageID).
		Scan(&r.ImageID, &r.ProductID, &r.URL, &r.Main)
	return r, err
}

const createImage = `
INSERT INTO images (image_id, product_id, url, main)
VALUES ($1, $2, $3, $4)`

// CreateImageParams contains the persisted fields of a new image.
type CreateImageParams struct {
	ImageID   pgtype.UUID
	ProductID pgtype.UUID
	URL       string
	Main      int16
}

func (q *Queries) CreateImage(ctx context.Context, arg CreateImageParams) error {
	_, err := q.db.Exec(ctx, createImage,
		arg.ImageID, arg.ProductID, arg.URL, arg.Main)
	return err
}

const deleteImages = "DELETE FROM images WHERE image_id = ANY($1)"

// DeleteImages bulk-deletes image rows by ID and reports the affected count.
func (q *Queries) DeleteImages(ctx context.Context, imageIDs []pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteImages, imageIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteImagesByProduct = "DELETE FROM images WHERE product_id = $1"

func (q *Queries) DeleteImagesByProduct(ctx context.Context, productID pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteImagesByProduct, productID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const replaceThumbnail = `
UPDATE images SET main = CASE image_id WHEN $1 THEN 0 WHEN $2 THEN 1 END
WHERE image_id IN ($1, $2)`

// ReplaceThumbnailParams names the outgoing and incoming main image.
type ReplaceThumbnailParams struct {
	CurrentID pgtype.UUID
	NewID     pgtype.UUID
}

// ReplaceThumbnail flips the main flag between two images of a product in a
// single statement, preserving thumbnail uniqueness. Returns the affected
// row count; zero means the flip changed nothing.
func (q *Queries) ReplaceThumbnail(ctx context.Context, arg ReplaceThumbnailParams) (int64, error) {
	tag, err := q.db.Exec(ctx, replaceThumbnail, arg.CurrentID, arg.NewID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
