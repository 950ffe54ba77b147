package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

const commentColumns = "comment_id, name, email, body, product_id"

const listComments = "SELECT " + commentColumns + " FROM comments"

// ListComments returns the full comment row set, across all products.
func (q *Queries) ListComments(ctx context.Context) ([]CommentRow, error) {
	return q.queryComments(ctx, listComments)
}

const listCommentsByProduct = "SELECT " + commentColumns + " FROM comments WHERE product_id = $1"

func (q *Queries) ListCommentsByProduct(ctx context.Context, productID pgtype.UUID) ([]CommentRow, error) {
	return q.queryComments(ctx, listCommentsByProduct, productID)
}

func (q *Queries) queryComments(ctx context.Context, query string, args ...any) ([]CommentRow, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CommentRow
	for rows.Next() {
		var r CommentRow
		if err := rows.Scan(&r.CommentID, &r.Name, &r.Email, &r.Body, &r.ProductID); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getComment = "SELECT " + commentColumns + " FROM comments WHERE comment_id = $1"

func (q *Queries) GetComment(ctx context.Context, commentID pgtype.UUID) (CommentRow, error) {
	var r CommentRow
	err := q.db.QueryRow(ctx, getComment, commentID).
		Scan(&r.CommentID, &r.Name, &r.Email, &r.Body, &r.ProductID)
	return r, err
}

const createComment = `
INSERT INTO comments (comment_id, name, email, body, product_id)
VALUES ($1, $2, $3, $4, $5)`

// CreateCommentParams contains the persisted fields of a new comment.
type CreateCommentParams struct {
	CommentID pgtype.UUID
	Name      string
	Email     string
	Body      string
	ProductID pgtype.UUID
}

func (q *Queries) CreateComment(ctx context.Context, arg CreateCommentParams) error {
	_, err := q.db.Exec(ctx, createComment,
		arg.CommentID, arg.Name, arg.Email, arg.Body, arg.ProductID)
	return err
}

// UpdateCommentParams carries a partial comment update. Nil fields are left
// out of the SET list entirely.
type UpdateCommentParams struct {
	CommentID pgtype.UUID
	Name      *string
	Email     *string
	Body      *string
}

// UpdateComment updates only the present fields and reports how many rows
// matched. Zero affected rows means the comment does not exist.
func (q *Queries) UpdateComment(ctx context.Context, arg UpdateCommentParams) (int64, error) {
	var set []string
	var args []any

	appendField := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}
	appendField("name", arg.Name)
	appendField("email", arg.Email)
	appendField("body", arg.Body)

	if len(set) == 0 {
		return 0, nil
	}

	args = append(args, arg.CommentID)
	query := "UPDATE comments SET " + strings.Join(set, ", ") +
		" WHERE comment_id = $" + strconv.Itoa(len(args))

	tag, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteComment = "DELETE FROM comments WHERE comment_id = $1"

func (q *Queries) DeleteComment(ctx context.Context, commentID pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteComment, commentID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCommentsByProduct = "DELETE FROM comments WHERE product_id = $1"

func (q *Queries) DeleteCommentsByProduct(ctx context.Context, productID pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteCommentsByProduct, productID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
