package response_models

import "time"

type ChatResponse struct {
	Message string `json:"message"`
}

type EntryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	EntryDate time.Time `json:"entryDate"`
	CreatedAt int64     `json:"createdAt"`
}

type MessageResponse struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}
