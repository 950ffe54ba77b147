package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/mercata/catalog/internal/domain"
)

// Editor executes one administrative product edit as an ordered sequence of
// independent store operations. The sequence is not a transaction: a failed
// step is logged and recorded in the result, prior steps are not rolled
// back, and later steps still run. Only the initial product fetch is a hard
// prerequisite, because the add-images and thumbnail steps depend on the
// product's pre-edit state.
type Editor struct {
	catalog  domain.CatalogService
	comments domain.CommentService
	logger   *slog.Logger
}

// NewEditor creates an Editor over the catalog and comment services.
func NewEditor(catalog domain.CatalogService, comments domain.CommentService, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		catalog:  catalog,
		comments: comments,
		logger:   logger,
	}
}

// EditProduct runs the edit sequence for productID and returns the per-step
// outcomes. Steps with nothing requested are skipped and produce no
// outcome; the field patch always runs.
func (e *Editor) EditProduct(ctx context.Context, productID string, req domain.EditRequest) *domain.EditResult {
	result := &domain.EditResult{ProductID: productID}

	record := func(step string, err error) {
		outcome := domain.StepOutcome{Step: step, OK: err == nil}
		if err != nil {
			outcome.Error = domain.ErrorMessage(err)
			e.logger.Error("edit step failed",
				"op", "product.edit",
				"product_id", productID,
				"step", step,
				"error", err,
			)
		}
		result.Steps = append(result.Steps, outcome)
	}

	// Step 1: snapshot the product before any mutation. The add-images and
	// thumbnail steps are decided against this snapshot.
	product, err := e.catalog.GetProduct(ctx, productID)
	record(domain.StepFetchProduct, err)
	if err != nil {
		return result
	}

	// Step 2: comment removals are independent rows; dispatch concurrently
	// and wait for all. Partial completion is possible and not rolled back.
	if len(req.CommentsToRemove) > 0 {
		record(domain.StepRemoveComments, e.removeComments(ctx, req.CommentsToRemove))
	}

	// Step 3: bulk image removal.
	if len(req.ImagesToRemove) > 0 {
		record(domain.StepRemoveImages, e.catalog.RemoveImages(ctx, req.ImagesToRemove))
	}

	// Step 4: new images are created with main unset. When the product had
	// no thumbnail before the edit, the first new image becomes main to
	// establish the invariant; a product that already has one keeps it, so
	// a second main row is never created here.
	if req.NewImages != "" {
		if urls := splitImageURLs(req.NewImages); len(urls) > 0 {
			images := make([]domain.CreateImageParams, len(urls))
			for i, url := range urls {
				images[i] = domain.CreateImageParams{URL: url}
			}
			if product.Thumbnail == "" {
				images[0].Main = true
			}
			_, err := e.catalog.AddImages(ctx, productID, images)
			record(domain.StepAddImages, err)
		}
	}

	// Step 5: thumbnail replacement, only when the requested image differs
	// from the main image of the pre-edit snapshot.
	if req.MainImage != "" {
		current, hasMain := domain.MainImage(product.Images)
		if !hasMain || current.ID != req.MainImage {
			record(domain.StepReplaceThumbnail, e.catalog.ReplaceThumbnail(ctx, productID, req.MainImage))
		}
	}

	// Step 6: unconditional field patch; absent fields keep stored values.
	record(domain.StepPatchFields, e.catalog.PatchProduct(ctx, productID, domain.PatchProductParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}))

	return result
}

func (e *Editor) removeComments(ctx context.Context, ids []string) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failed   []string
		internal bool
	)

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := e.comments.DeleteComment(ctx, id); err != nil {
				mu.Lock()
				failed = append(failed, id)
				if domain.IsCode(err, domain.EINTERNAL) {
					internal = true
				}
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	if len(failed) == 0 {
		return nil
	}
	if internal {
		return domain.Internal(nil, "product.edit", "failed to delete comments")
	}
	sort.Strings(failed)
	return domain.Errorf(domain.ENOTFOUND, "product.edit",
		"failed to delete comments: %s", strings.Join(failed, ", "))
}

// splitImageURLs parses the admin form's delimited URL list: entries are
// separated by commas or newlines, surrounding whitespace is trimmed, and
// empty entries are dropped.
func splitImageURLs(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	urls := make([]string, 0, len(fields))
	for _, f := range fields {
		if url := strings.TrimSpace(f); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}
