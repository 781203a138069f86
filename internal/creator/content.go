package creator

import "time"

// ContentItem is one generated piece of content. Items are written once and
// never updated.
type ContentItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Platform    string    `json:"platform"`
	ContentType string    `json:"content_type"`
	Script      string    `json:"script"`
	Caption     string    `json:"caption"`
	Hooks       []string  `json:"hooks"`
	CreatedAt   time.Time `json:"created_at"`
	// Posted is kept for compatibility with stored records; nothing sets it.
	Posted bool `json:"posted"`
}

// GenerateContentRequest asks for one content item for a profile.
type GenerateContentRequest struct {
	UserID            string `json:"user_id" binding:"required"`
	Platform          string `json:"platform" binding:"required"`
	ContentType       string `json:"content_type" binding:"required"`
	AdditionalContext string `json:"additional_context"`
}
