package response_models

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  int64  `json:"createdAt"`
}

type AdminPostResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	AuthorName  string  `json:"authorName"`
	AuthorEmail string  `json:"authorEmail"`
	CreatedAt   int64   `json:"createdAt"`
}

type TherapistResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}
