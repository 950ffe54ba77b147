package service

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mercata/catalog/internal/domain"
	"github.com/mercata/catalog/internal/repository"
)

// Row-to-entity mapping. The persisted shape names identifiers
// product_id/comment_id/image_id and keeps price as NUMERIC and the main
// flag as an integer; the domain shape renames identifiers, defaults
// title/description to "" and price to 0, and carries main as a bool.
// Mapping is total: no input row produces an error.

func mapProductRow(row repository.ProductRow) domain.Product {
	return domain.Product{
		ID:          uuidString(row.ProductID),
		Title:       row.Title.String,
		Description: row.Description.String,
		Price:       numericToFloat(row.Price),
	}
}

func mapProductRows(rows []repository.ProductRow) []domain.Product {
	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = mapProductRow(row)
	}
	return products
}

func mapCommentRow(row repository.CommentRow) domain.Comment {
	return domain.Comment{
		ID:        uuidString(row.CommentID),
		Name:      row.Name,
		Email:     row.Email,
		Body:      row.Body,
		ProductID: uuidString(row.ProductID),
	}
}

func mapCommentRows(rows []repository.CommentRow) []domain.Comment {
	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = mapCommentRow(row)
	}
	return comments
}

func mapImageRow(row repository.ImageRow) domain.Image {
	return domain.Image{
		ID:        uuidString(row.ImageID),
		ProductID: uuidString(row.ProductID),
		URL:       row.URL,
		Main:      row.Main == 1,
	}
}

func mapImageRows(rows []repository.ImageRow) []domain.Image {
	images := make([]domain.Image, len(rows))
	for i, row := range rows {
		images[i] = mapImageRow(row)
	}
	return images
}

// numericToFloat coerces a stored price to a number; absent or
// non-representable values map to 0.
func numericToFloat(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	v, err := n.Float64Value()
	if err != nil || !v.Valid {
		return 0
	}
	return v.Float64
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}

// parseUUID converts a caller-supplied identifier into its stored form.
// Returns EINVALID for anything that is not a UUID, before any store call.
func parseUUID(op, field, value string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return pgtype.UUID{}, domain.NewValidationError(op, field, field+" is not a UUID")
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

// floatToNumeric converts a domain price for storage.
func floatToNumeric(f float64) pgtype.Numeric {
	var n pgtype.Numeric
	// Scan on the decimal string form; cannot fail for a finite float.
	_ = n.Scan(strconv.FormatFloat(f, 'f', -1, 64))
	return n
}

func textValue(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func newUUID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}
