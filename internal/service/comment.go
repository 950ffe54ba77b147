package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mercata/catalog/internal/domain"
	"github.com/mercata/catalog/internal/repository"
)

// commentService implements domain.CommentService on the relational store.
type commentService struct {
	repo repository.Querier
}

var _ domain.CommentService = (*commentService)(nil)

// NewCommentService creates a store-backed comment service.
func NewCommentService(repo repository.Querier) domain.CommentService {
	return &commentService{repo: repo}
}

// IsDuplicateComment reports whether the submission is a near-duplicate of
// an existing comment. The first existing comment whose email matches the
// candidate's case-insensitively decides: the submission is a duplicate
// only if name, body and productId also match that same comment
// case-insensitively. No email match means no duplicate. Pure; touches no
// state.
func IsDuplicateComment(params domain.CreateCommentParams, existing []domain.Comment) bool {
	for _, c := range existing {
		if !strings.EqualFold(params.Email, c.Email) {
			continue
		}
		return strings.EqualFold(params.Name, c.Name) &&
			strings.EqualFold(params.Body, c.Body) &&
			strings.EqualFold(params.ProductID, c.ProductID)
	}
	return false
}

func (s *commentService) ListComments(ctx context.Context) ([]domain.Comment, error) {
	rows, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, domain.Internal(err, "comment.list", "failed to list comments")
	}
	return mapCommentRows(rows), nil
}

func (s *commentService) GetComment(ctx context.Context, id string) (*domain.Comment, error) {
	commentID, err := parseUUID("comment.get", "id", id)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, domain.Internal(err, "comment.get", "failed to get comment")
	}

	comment := mapCommentRow(row)
	return &comment, nil
}

// CreateComment stores a new comment unless the duplicate guard rejects it.
func (s *commentService) CreateComment(ctx context.Context, params domain.CreateCommentParams) (*domain.Comment, error) {
	const op = "comment.create"

	productID, err := parseUUID(op, "productId", params.ProductID)
	if err != nil {
		return nil, err
	}

	existingRows, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list comments")
	}
	if IsDuplicateComment(params, mapCommentRows(existingRows)) {
		return nil, domain.ErrDuplicateComment
	}

	commentID := newUUID()
	err = s.repo.CreateComment(ctx, repository.CreateCommentParams{
		CommentID: commentID,
		Name:      params.Name,
		Email:     params.Email,
		Body:      params.Body,
		ProductID: productID,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create comment")
	}

	return &domain.Comment{
		ID:        uuidString(commentID),
		Name:      params.Name,
		Email:     params.Email,
		Body:      params.Body,
		ProductID: params.ProductID,
	}, nil
}

// UpsertComment updates the named comment's present fields; when no row
// matches, it creates a new comment from the payload instead. The bool
// result is true when a row was created.
func (s *commentService) UpsertComment(ctx context.Context, params domain.UpsertCommentParams) (*domain.Comment, bool, error) {
	const op = "comment.upsert"

	commentID, err := parseUUID(op, "id", params.ID)
	if err != nil {
		return nil, false, err
	}

	affected, err := s.repo.UpdateComment(ctx, repository.UpdateCommentParams{
		CommentID: commentID,
		Name:      params.Name,
		Email:     params.Email,
		Body:      params.Body,
	})
	if err != nil {
		return nil, false, domain.Internal(err, op, "failed to update comment")
	}

	if affected == 1 {
		row, err := s.repo.GetComment(ctx, commentID)
		if err != nil {
			return nil, false, domain.Internal(err, op, "failed to reload comment")
		}
		comment := mapCommentRow(row)
		return &comment, false, nil
	}

	// Nothing matched: fall back to creation, which requires a full payload.
	verr := validateUpsertCreate(op, params)
	if verr != nil {
		return nil, false, verr
	}

	created, err := s.CreateComment(ctx, domain.CreateCommentParams{
		Name:      *params.Name,
		Email:     *params.Email,
		Body:      *params.Body,
		ProductID: params.ProductID,
	})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func validateUpsertCreate(op string, params domain.UpsertCommentParams) error {
	var err error
	if params.Name == nil {
		err = domain.AddFieldError(err, "name", "name is required")
	}
	if params.Email == nil {
		err = domain.AddFieldError(err, "email", "email is required")
	}
	if params.Body == nil {
		err = domain.AddFieldError(err, "body", "body is required")
	}
	if params.ProductID == "" {
		err = domain.AddFieldError(err, "productId", "productId is required")
	}
	return err
}

func (s *commentService) DeleteComment(ctx context.Context, id string) error {
	commentID, err := parseUUID("comment.delete", "id", id)
	if err != nil {
		return err
	}

	affected, err := s.repo.DeleteComment(ctx, commentID)
	if err != nil {
		return domain.Internal(err, "comment.delete", "failed to delete comment")
	}
	if affected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
