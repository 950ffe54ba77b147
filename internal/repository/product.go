package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// BaseProductSelect is the selection the search predicate builder extends.
const BaseProductSelect = "SELECT product_id, title, description, price FROM products"

const listProducts = BaseProductSelect

// ListProducts returns every product row.
func (q *Queries) ListProducts(ctx context.Context) ([]ProductRow, error) {
	rows, err := q.db.Query(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ProductRow
	for rows.Next() {
		var r ProductRow
		if err := rows.Scan(&r.ProductID, &r.Title, &r.Description, &r.Price); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// SearchProducts executes a statement produced by the predicate builder.
// The query must select the BaseProductSelect columns.
func (q *Queries) SearchProducts(ctx context.Context, query string, args []any) ([]ProductRow, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ProductRow
	for rows.Next() {
		var r ProductRow
		if err := rows.Scan(&r.ProductID, &r.Title, &r.Description, &r.Price); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getProduct = BaseProductSelect + " WHERE product_id = $1"

// GetProduct returns one product row. Callers translate pgx.ErrNoRows.
func (q *Queries) GetProduct(ctx context.Context, productID pgtype.UUID) (ProductRow, error) {
	var r ProductRow
	err := q.db.QueryRow(ctx, getProduct, productID).
		Scan(&r.ProductID, &r.Title, &r.Description, &r.Price)
	return r, err
}

const createProduct = `
INSERT INTO products (product_id, title, description, price)
VALUES ($1, $2, $3, $4)`

// CreateProductParams contains the persisted fields of a new product.
type CreateProductParams struct {
	ProductID   pgtype.UUID
	Title       pgtype.Text
	Description pgtype.Text
	Price       pgtype.Numeric
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) error {
	_, err := q.db.Exec(ctx, createProduct,
		arg.ProductID, arg.Title, arg.Description, arg.Price)
	return err
}

const updateProductFields = `
UPDATE products SET title = $1, description = $2, price = $3
WHERE product_id = $4`

// UpdateProductFieldsParams carries the full field set for a product patch.
// The service layer substitutes stored values for absent payload fields
// before calling, so the statement itself is unconditional.
type UpdateProductFieldsParams struct {
	Title       pgtype.Text
	Description pgtype.Text
	Price       pgtype.Numeric
	ProductID   pgtype.UUID
}

func (q *Queries) UpdateProductFields(ctx context.Context, arg UpdateProductFieldsParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateProductFields,
		arg.Title, arg.Description, arg.Price, arg.ProductID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteProduct = "DELETE FROM products WHERE product_id = $1"

func (q *Queries) DeleteProduct(ctx context.Context, productID pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteProduct, productID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
