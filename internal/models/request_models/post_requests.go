package request_models

// PatchPostRequest either edits the post's content (owner only) or attaches
// a comment from the caller. Exactly one of the two fields should be set.
type PatchPostRequest struct {
	Content *string `json:"content"`
	Comment *string `json:"comment"`
}
