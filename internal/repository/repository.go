package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgxpool.Pool used by Queries. Satisfied by both a
// pool and a single connection; the pool is safe for concurrent use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries issues parameterized statements against the catalog schema.
type Queries struct {
	db DBTX
}

// New creates a Queries bound to the given database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Querier is the store-access capability consumed by the service layer.
// Tests substitute a mock implementation.
type Querier interface {
	ListProducts(ctx context.Context) ([]ProductRow, error)
	SearchProducts(ctx context.Context, query string, args []any) ([]ProductRow, error)
	GetProduct(ctx context.Context, productID pgtype.UUID) (ProductRow, error)
	CreateProduct(ctx context.Context, arg CreateProductParams) error
	UpdateProductFields(ctx context.Context, arg UpdateProductFieldsParams) (int64, error)
	DeleteProduct(ctx context.Context, productID pgtype.UUID) (int64, error)

	ListComments(ctx context.Context) ([]CommentRow, error)
	ListCommentsByProduct(ctx context.Context, productID pgtype.UUID) ([]CommentRow, error)
	GetComment(ctx context.Context, commentID pgtype.UUID) (CommentRow, error)
	CreateComment(ctx context.Context, arg CreateCommentParams) error
	UpdateComment(ctx context.Context, arg UpdateCommentParams) (int64, error)
	DeleteComment(ctx context.Context, commentID pgtype.UUID) (int64, error)
	DeleteCommentsByProduct(ctx context.Context, productID pgtype.UUID) (int64, error)

	ListImages(ctx context.Context) ([]ImageRow, error)
	ListImagesByProduct(ctx context.Context, productID pgtype.UUID) ([]ImageRow, error)
	ListMainImages(ctx context.Context, productID pgtype.UUID) ([]ImageRow, error)
	GetProductImage(ctx context.Context, arg GetProductImageParams) (ImageRow, error)
	CreateImage(ctx context.Context, arg CreateImageParams) error
	DeleteImages(ctx context.Context, imageIDs []pgtype.UUID) (int64, error)
	DeleteImagesByProduct(ctx context.Context, productID pgtype.UUID) (int64, error)
	ReplaceThumbnail(ctx context.Context, arg ReplaceThumbnailParams) (int64, error)
}

var _ Querier = (*Queries)(nil)

// =============================================================================
// ROW TYPES (persisted shape)
// =============================================================================

// ProductRow is the persisted product shape. Title and description are
// nullable, price is NUMERIC; the service-layer mapper applies defaults.
type ProductRow struct {
	ProductID   pgtype.UUID
	Title       pgtype.Text
	Description pgtype.Text
	Price       pgtype.Numeric
}

// CommentRow is the persisted comment shape.
type CommentRow struct {
	CommentID pgtype.UUID
	Name      string
	Email     string
	Body      string
	ProductID pgtype.UUID
}

// ImageRow is the persisted image shape. Main is an integer flag, 1 for the
// product's thumbnail image, 0 otherwise.
type ImageRow struct {
	ImageID   pgtype.UUID
	ProductID pgtype.UUID
	URL       string
	Main      int16
}
