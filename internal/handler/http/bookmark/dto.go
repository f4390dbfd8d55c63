package bookmark

import (
	"time"

	"tourcatalog/internal/domain/entity"
)

// DTO is the JSON shape of a bookmark.
type DTO struct {
	ID        int64     `json:"id"`
	ContentID string    `json:"contentId"`
	Title     string    `json:"title"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDTO(b *entity.Bookmark) DTO {
	return DTO{
		ID:        b.ID,
		ContentID: b.ContentID,
		Title:     b.Title,
		Category:  b.Category,
		CreatedAt: b.CreatedAt,
	}
}
