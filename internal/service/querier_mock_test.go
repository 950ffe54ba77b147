package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mercata/catalog/internal/repository"
)

// mockQuerier implements repository.Querier for testing. Unset functions
// return zero values.
type mockQuerier struct {
	listProductsFunc        func(ctx context.Context) ([]repository.ProductRow, error)
	searchProductsFunc      func(ctx context.Context, query string, args []any) ([]repository.ProductRow, error)
	getProductFunc          func(ctx context.Context, productID pgtype.UUID) (repository.ProductRow, error)
	createProductFunc       func(ctx context.Context, arg repository.CreateProductParams) error
	updateProductFieldsFunc func(ctx context.Context, arg repository.UpdateProductFieldsParams) (int64, error)
	deleteProductFunc       func(ctx context.Context, productID pgtype.UUID) (int64, error)

	listCommentsFunc          func(ctx context.Context) ([]repository.CommentRow, error)
	listCommentsByProductFunc func(ctx context.Context, productID pgtype.UUID) ([]repository.CommentRow, error)
	getCommentFunc            func(ctx context.Context, commentID pgtype.UUID) (repository.CommentRow, error)
	createCommentFunc         func(ctx context.Context, arg repository.CreateCommentParams) error
	updateCommentFunc         func(ctx context.Context, arg repository.UpdateCommentParams) (int64, error)
	deleteCommentFunc         func(ctx context.Context, commentID pgtype.UUID) (int64, error)
	deleteCommentsByProdFunc  func(ctx context.Context, productID pgtype.UUID) (int64, error)

	listImagesFunc          func(ctx context.Context) ([]repository.ImageRow, error)
	listImagesByProductFunc func(ctx context.Context, productID pgtype.UUID) ([]repository.ImageRow, error)
	listMainImagesFunc      func(ctx context.Context, productID pgtype.UUID) ([]repository.ImageRow, error)
	getProductImageFunc     func(ctx context.Context, arg repository.GetProductImageParams) (repository.ImageRow, error)
	createImageFunc         func(ctx context.Context, arg repository.CreateImageParams) error
	deleteImagesFunc        func(ctx context.Context, imageIDs []pgtype.UUID) (int64, error)
	deleteImagesByProdFunc  func(ctx context.Context, productID pgtype.UUID) (int64, error)
	replaceThumbnailFunc    func(ctx context.Context, arg repository.ReplaceThumbnailParams) (int64, error)
}

var _ repository.Querier = (*mockQuerier)(nil)

func (m *mockQuerier) ListProducts(ctx context.Context) ([]repository.ProductRow, error) {
	if m.listProductsFunc != nil {
		return m.listProductsFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuerier) SearchProducts(ctx context.Context, query string, args []any) ([]repository.ProductRow, error) {
	if m.searchProductsFunc != nil {
		return m.searchProductsFunc(ctx, query, args)
	}
	return nil, nil
}

func (m *mockQuerier) GetProduct(ctx context.Context, productID pgtype.UUID) (repository.ProductRow, error) {
	if m.getProductFunc != nil {
		return m.getProductFunc(ctx, productID)
	}
	return repository.ProductRow{}, nil
}

func (m *mockQuerier) CreateProduct(ctx context.Context, arg repository.CreateProductParams) error {
	if m.createProductFunc != nil {
		return m.createProductFunc(ctx, arg)
	}
	return nil
}

func (m *mockQuerier) UpdateProductFields(ctx context.Context, arg repository.UpdateProductFieldsParams) (int64, error) {
	if m.updateProductFieldsFunc != nil {
		return m.updateProductFieldsFunc(ctx, arg)
	}
	return 1, nil
}

func (m *mockQuerier) DeleteProduct(ctx context.Context, productID pgtype.UUID) (int64, error) {
	if m.deleteProductFunc != nil {
		return m.deleteProductFunc(ctx, productID)
	}
	return 1, nil
}

func (m *mockQuerier) ListComments(ctx context.Context) ([]repository.CommentRow, error) {
	if m.listCommentsFunc != nil {
		return m.listCommentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuerier) ListCommentsByProduct(ctx context.Context, productID pgtype.UUID) ([]repository.CommentRow, error) {
	if m.listCommentsByProductFunc != nil {
		return m.listCommentsByProductFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockQuerier) GetComment(ctx context.Context, commentID pgtype.UUID) (repository.CommentRow, error) {
	if m.getCommentFunc != nil {
		return m.getCommentFunc(ctx, commentID)
	}
	return repository.CommentRow{}, nil
}

func (m *mockQuerier) CreateComment(ctx context.Context, arg repository.CreateCommentParams) error {
	if m.createCommentFunc != nil {
		return m.createCommentFunc(ctx, arg)
	}
	return nil
}

func (m *mockQuerier) UpdateComment(ctx context.Context, arg repository.UpdateCommentParams) (int64, error) {
	if m.updateCommentFunc != nil {
		return m.updateCommentFunc(ctx, arg)
	}
	return 0, nil
}

func (m *mockQuerier) DeleteComment(ctx context.Context, commentID pgtype.UUID) (int64, error) {
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(ctx, commentID)
	}
	return 1, nil
}

func (m *mockQuerier) DeleteCommentsByProduct(ctx context.Context, productID pgtype.UUID) (int64, error) {
	if m.deleteCommentsByProdFunc != nil {
		return m.deleteCommentsByProdFunc(ctx, productID)
	}
	return 0, nil
}

func (m *mockQuerier) ListImages(ctx context.Context) ([]repository.ImageRow, error) {
	if m.listImagesFunc != nil {
		return m.listImagesFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuerier) ListImagesByProduct(ctx context.Context, productID pgtype.UUID) ([]repository.ImageRow, error) {
	if m.listImagesByProductFunc != nil {
		return m.listImagesByProductFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockQuerier) ListMainImages(ctx context.Context, productID pgtype.UUID) ([]repository.ImageRow, error) {
	if m.listMainImagesFunc != nil {
		return m.listMainImagesFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockQuerier) GetProductImage(ctx context.Context, arg repository.GetProductImageParams) (repository.ImageRow, error) {
	if m.getProductImageFunc != nil {
		return m.getProductImageFunc(ctx, arg)
	}
	return repository.ImageRow{}, nil
}

func (m *mockQuerier) CreateImage(ctx context.Context, arg repository.CreateImageParams) error {
	if m.createImageFunc != nil {
		return m.createImageFunc(ctx, arg)
	}
	return nil
}

func (m *mockQuerier) DeleteImages(ctx context.Context, imageIDs []pgtype.UUID) (int64, error) {
	if m.deleteImagesFunc != nil {
		return m.deleteImagesFunc(ctx, imageIDs)
	}
	return int64(len(imageIDs)), nil
}

func (m *mockQuerier) DeleteImagesByProduct(ctx context.Context, productID pgtype.UUID) (int64, error) {
	if m.deleteImagesByProdFunc != nil {
		return m.deleteImagesByProdFunc(ctx, productID)
	}
	return 0, nil
}

func (m *mockQuerier) ReplaceThumbnail(ctx context.Context, arg repository.ReplaceThumbnailParams) (int64, error) {
	if m.replaceThumbnailFunc != nil {
		return m.replaceThumbnailFunc(ctx, arg)
	}
	return 2, nil
}

// mustUUID parses a canonical UUID string into its stored form.
func mustUUID(s string) pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.MustParse(s), Valid: true}
}
