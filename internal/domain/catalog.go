package domain

import "context"

// =============================================================================
// CATALOG DOMAIN TYPES
// =============================================================================

// Product represents a catalog product with its aggregated comments and
// images. Comments, Images and Thumbnail are populated by aggregation and
// omitted from serialized output when empty.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Comments    []Comment `json:"comments,omitempty"`
	Images      []Image   `json:"images,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
}

// Comment represents a customer comment on a product. The product is
// referenced by ID only; comments have their own lifecycle.
type Comment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Body      string `json:"body"`
	ProductID string `json:"productId"`
}

// Image represents a product image. At most one image per product carries
// Main=true; that image's URL is the product's thumbnail.
type Image struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	URL       string `json:"url"`
	Main      bool   `json:"main"`
}

// MainImage returns the image flagged as main from a list, if any.
func MainImage(images []Image) (Image, bool) {
	for _, img := range images {
		if img.Main {
			return img, true
		}
	}
	return Image{}, false
}

// =============================================================================
// PARAMETER TYPES
// =============================================================================

// ProductFilter contains optional search criteria. A price bound of nil
// means unbounded on that side.
type ProductFilter struct {
	Title       string
	Description string
	PriceFrom   *float64
	PriceTo     *float64
}

// Empty reports whether no criterion is present.
func (f ProductFilter) Empty() bool {
	return f.Title == "" && f.Description == "" && f.PriceFrom == nil && f.PriceTo == nil
}

// CreateProductParams contains parameters for creating a product.
// Images may seed the product's initial image set.
type CreateProductParams struct {
	Title       string
	Description string
	Price       float64
	Images      []CreateImageParams
}

// PatchProductParams contains parameters for patching product fields.
// Nil fields keep the currently stored value.
type PatchProductParams struct {
	Title       *string
	Description *string
	Price       *float64
}

// CreateCommentParams contains parameters for creating a comment.
type CreateCommentParams struct {
	Name      string
	Email     string
	Body      string
	ProductID string
}

// UpsertCommentParams contains parameters for updating a comment in place,
// or creating it when the ID matches nothing. Nil fields are left unchanged
// on update.
type UpsertCommentParams struct {
	ID        string
	Name      *string
	Email     *string
	Body      *string
	ProductID string
}

// CreateImageParams contains parameters for attaching an image to a product.
type CreateImageParams struct {
	URL  string
	Main bool
}

// =============================================================================
// SERVICE INTERFACES
// =============================================================================

// CatalogService provides the public read/search surface and the per-entity
// mutations the administrative surface is built from.
type CatalogService interface {
	// ListProducts returns all products with comments, images and thumbnail attached.
	ListProducts(ctx context.Context) ([]Product, error)

	// SearchProducts returns aggregated products matching the filter.
	// Returns ENOTFOUND when nothing matches.
	SearchProducts(ctx context.Context, filter ProductFilter) ([]Product, error)

	// GetProduct returns one aggregated product by ID.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// CreateProduct creates a product and its initial images, if any.
	CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error)

	// DeleteProduct removes a product and its dependent comments and images.
	// The store does not cascade; dependents are removed explicitly first.
	DeleteProduct(ctx context.Context, id string) error

	// PatchProduct updates title/description/price, keeping stored values
	// for absent fields.
	PatchProduct(ctx context.Context, id string, params PatchProductParams) error

	// AddImages attaches images to a product.
	AddImages(ctx context.Context, productID string, images []CreateImageParams) ([]Image, error)

	// RemoveImages deletes the named image rows. Returns ENOTFOUND when no
	// row was deleted.
	RemoveImages(ctx context.Context, ids []string) error

	// ReplaceThumbnail flips the main flag from the current main image to
	// imageID in a single statement. The image must belong to the product
	// and exactly one current main image must exist.
	ReplaceThumbnail(ctx context.Context, productID, imageID string) error
}

// CommentService provides comment operations for the public surface.
type CommentService interface {
	ListComments(ctx context.Context) ([]Comment, error)
	GetComment(ctx context.Context, id string) (*Comment, error)

	// CreateComment rejects near-duplicate submissions with EUNPROCESSABLE.
	CreateComment(ctx context.Context, params CreateCommentParams) (*Comment, error)

	// UpsertComment updates the comment when the ID exists, otherwise
	// creates a new one. The returned bool is true when a row was created.
	UpsertComment(ctx context.Context, params UpsertCommentParams) (*Comment, bool, error)

	DeleteComment(ctx context.Context, id string) error
}

// =============================================================================
// DOMAIN ERRORS
// =============================================================================

var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrCommentNotFound = &Error{Code: ENOTFOUND, Message: "Comment not found"}
	ErrImageNotFound   = &Error{Code: ENOTFOUND, Message: "Image not found"}

	ErrDuplicateComment = &Error{Code: EUNPROCESSABLE, Message: "Comment with the same fields already exists"}
)
