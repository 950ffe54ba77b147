package service

import (
	"github.com/mercata/catalog/internal/domain"
	"github.com/mercata/catalog/internal/repository"
)

// Aggregate attaches comments, images and the resolved thumbnail URL to a
// list of products. The comment and image row sets are the full tables,
// unfiltered by product; grouping is done here.
//
// Three single passes build productID-keyed maps, then one pass over the
// products performs the lookups, so the whole join is linear in
// products + comments + images. Attachment is driven by iterating products,
// never by iterating another entity's rows: an empty image set leaves
// comment attachment untouched.
func Aggregate(products []domain.Product, commentRows []repository.CommentRow, imageRows []repository.ImageRow) []domain.Product {
	commentsByProduct := make(map[string][]domain.Comment)
	for _, row := range commentRows {
		comment := mapCommentRow(row)
		commentsByProduct[comment.ProductID] = append(commentsByProduct[comment.ProductID], comment)
	}

	imagesByProduct := make(map[string][]domain.Image)
	thumbnailByProduct := make(map[string]string)
	for _, row := range imageRows {
		image := mapImageRow(row)
		imagesByProduct[image.ProductID] = append(imagesByProduct[image.ProductID], image)
		if image.Main {
			// At most one main image per product by invariant.
			thumbnailByProduct[image.ProductID] = image.URL
		}
	}

	out := make([]domain.Product, len(products))
	for i, product := range products {
		product.Comments = commentsByProduct[product.ID]
		product.Images = imagesByProduct[product.ID]
		product.Thumbnail = thumbnailByProduct[product.ID]
		out[i] = product
	}
	return out
}
