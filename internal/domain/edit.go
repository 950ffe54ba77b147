package domain

// =============================================================================
// ADMINISTRATIVE EDIT TYPES
// =============================================================================

// EditRequest carries one administrative product edit. Every field is
// optional; absent fields skip the corresponding orchestration step.
// NewImages is a comma- or newline-delimited list of image URLs, as
// submitted by the admin form.
type EditRequest struct {
	CommentsToRemove []string `json:"commentsToRemove,omitempty"`
	ImagesToRemove   []string `json:"imagesToRemove,omitempty"`
	NewImages        string   `json:"newImages,omitempty"`
	MainImage        string   `json:"mainImage,omitempty"`
	Title            *string  `json:"title,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Price            *float64 `json:"price,omitempty"`
}

// Edit step names, in execution order.
const (
	StepFetchProduct     = "fetch_product"
	StepRemoveComments   = "remove_comments"
	StepRemoveImages     = "remove_images"
	StepAddImages        = "add_images"
	StepReplaceThumbnail = "replace_thumbnail"
	StepPatchFields      = "patch_fields"
)

// StepOutcome records the result of one orchestration step. Skipped steps
// (nothing requested) produce no outcome.
type StepOutcome struct {
	Step  string `json:"step"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// EditResult aggregates the outcomes of one orchestrated edit. The steps
// are independent statements, not a transaction: a failed step leaves the
// effects of earlier steps in place, and later steps still run.
type EditResult struct {
	ProductID string        `json:"productId"`
	Steps     []StepOutcome `json:"steps"`
}

// Applied reports whether every executed step succeeded.
func (r *EditResult) Applied() bool {
	for _, s := range r.Steps {
		if !s.OK {
			return false
		}
	}
	return true
}

// Partial reports whether at least one step succeeded and at least one failed.
func (r *EditResult) Partial() bool {
	var ok, failed bool
	for _, s := range r.Steps {
		if s.OK {
			ok = true
		} else {
			failed = true
		}
	}
	return ok && failed
}
