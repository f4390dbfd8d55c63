package catalog

import (
	"time"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/utils/identifier"
)

// pageResponse is the wire shape of one catalog page.
type pageResponse struct {
	Items      []catalogItem `json:"items"`
	TotalCount int64         `json:"totalCount"`
}

// catalogItem mirrors one upstream listing entry. ContentID is typed any
// because the upstream emits it inconsistently: sometimes a JSON number,
// sometimes a string, occasionally padded with whitespace.
type catalogItem struct {
	ContentID  any     `json:"contentId"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	AreaCode   string  `json:"areaCode"`
	Address    string  `json:"address"`
	MapX       float64 `json:"mapX"`
	MapY       float64 `json:"mapY"`
	ImageURL   string  `json:"imageUrl"`
	ModifiedAt string  `json:"modifiedAt"`
}

// modifiedAtLayouts lists accepted timestamp formats, newest upstream format
// first. The compact form is the legacy one.
var modifiedAtLayouts = []string{
	time.RFC3339,
	"20060102150405",
}

func (it catalogItem) toPlace() *entity.Place {
	p := &entity.Place{
		ContentID: identifier.Normalize(it.ContentID),
		Title:     it.Title,
		Category:  it.Category,
		AreaCode:  it.AreaCode,
		Address:   it.Address,
		Longitude: it.MapX,
		Latitude:  it.MapY,
		ImageURL:  it.ImageURL,
	}
	for _, layout := range modifiedAtLayouts {
		if ts, err := time.Parse(layout, it.ModifiedAt); err == nil {
			p.ModifiedAt = ts
			break
		}
	}
	return p
}
