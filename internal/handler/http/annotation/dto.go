package annotation

import (
	"time"

	"tourcatalog/internal/domain/entity"
)

// DTO is the JSON shape of a pet policy.
type DTO struct {
	ContentID string    `json:"contentId"`
	Allowed   bool      `json:"allowed"`
	SizeClass int       `json:"sizeClass"`
	MaxCount  int       `json:"maxCount"`
	Notes     string    `json:"notes,omitempty"`
	Category  string    `json:"category,omitempty"`
	AreaCode  string    `json:"areaCode,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDTO(p *entity.PetPolicy) DTO {
	return DTO{
		ContentID: p.ContentID,
		Allowed:   p.Allowed,
		SizeClass: p.SizeClass,
		MaxCount:  p.MaxCount,
		Notes:     p.Notes,
		Category:  p.Category,
		AreaCode:  p.AreaCode,
		UpdatedAt: p.UpdatedAt,
	}
}
