package listing

import (
	"time"

	"tourcatalog/internal/domain/entity"
	uc "tourcatalog/internal/usecase/listing"
)

// PolicyDTO is the pet-policy portion of a listing item.
type PolicyDTO struct {
	Allowed   bool   `json:"allowed"`
	SizeClass int    `json:"sizeClass"`
	MaxCount  int    `json:"maxCount"`
	Notes     string `json:"notes,omitempty"`
}

// ItemDTO is one place in the aggregated display list.
type ItemDTO struct {
	ContentID  string     `json:"contentId"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	AreaCode   string     `json:"areaCode"`
	Address    string     `json:"address,omitempty"`
	Latitude   float64    `json:"latitude,omitempty"`
	Longitude  float64    `json:"longitude,omitempty"`
	ImageURL   string     `json:"imageUrl,omitempty"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
	PetPolicy  *PolicyDTO `json:"petPolicy,omitempty"`
}

// ResponseDTO is the aggregated listing response.
type ResponseDTO struct {
	Items         []ItemDTO `json:"items"`
	Page          int       `json:"page"`
	MoreAvailable bool      `json:"moreAvailable"`
	RawFetched    int64     `json:"rawFetched"`
	TotalCount    int64     `json:"totalCount"`
}

func toItemDTO(it uc.AggregatedItem) ItemDTO {
	dto := ItemDTO{
		ContentID: it.Place.ContentID,
		Title:     it.Place.Title,
		Category:  it.Place.Category,
		AreaCode:  it.Place.AreaCode,
		Address:   it.Place.Address,
		Latitude:  it.Place.Latitude,
		Longitude: it.Place.Longitude,
		ImageURL:  it.Place.ImageURL,
	}
	if !it.Place.ModifiedAt.IsZero() {
		ts := it.Place.ModifiedAt
		dto.ModifiedAt = &ts
	}
	if it.Policy != nil {
		dto.PetPolicy = toPolicyDTO(it.Policy)
	}
	return dto
}

func toPolicyDTO(p *entity.PetPolicy) *PolicyDTO {
	return &PolicyDTO{
		Allowed:   p.Allowed,
		SizeClass: p.SizeClass,
		MaxCount:  p.MaxCount,
		Notes:     p.Notes,
	}
}
