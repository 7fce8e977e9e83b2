package response_models

type CommentResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"createdAt"`
}

type PostResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	ImageURL  *string           `json:"imageUrl,omitempty"`
	Author    string            `json:"author"`
	CreatedAt int64             `json:"createdAt"`
	Comments  []CommentResponse `json:"comments"`
}
