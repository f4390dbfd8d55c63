package listing

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"tourcatalog/internal/domain/entity"
	uc "tourcatalog/internal/usecase/listing"
)

var errMissingKeyword = errors.New("keyword is required")

// parseQuery builds a listing query and the requested 1-based page number
// from URL query parameters. Unknown or malformed values are rejected so
// clients notice typos instead of silently getting an unfiltered list.
func parseQuery(r *http.Request) (uc.Query, int, error) {
	q := uc.Query{
		Keyword:  strings.TrimSpace(r.URL.Query().Get("keyword")),
		AreaCode: strings.TrimSpace(r.URL.Query().Get("areaCode")),
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("categories")); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			if !entity.KnownCategory(c) {
				return q, 0, fmt.Errorf("unknown category code %q", c)
			}
			q.Categories = append(q.Categories, c)
		}
	}

	switch sort := r.URL.Query().Get("sort"); sort {
	case "", "name":
		q.Sort = uc.SortByName
	case "recency":
		q.Sort = uc.SortByRecency
	default:
		return q, 0, fmt.Errorf("invalid sort %q: must be \"name\" or \"recency\"", sort)
	}

	switch pet := r.URL.Query().Get("pet"); pet {
	case "":
		q.Pet.Mode = uc.PetFilterDefault
	case "required":
		q.Pet.Mode = uc.PetFilterRequired
	case "excluded":
		q.Pet.Mode = uc.PetFilterExcluded
	default:
		return q, 0, fmt.Errorf("invalid pet %q: must be \"required\" or \"excluded\"", pet)
	}

	minSize, err := intParam(r, "petMinSize", 0)
	if err != nil {
		return q, 0, err
	}
	if minSize < entity.SizeClassUnknown || minSize > entity.SizeClassLarge {
		return q, 0, fmt.Errorf("petMinSize must be between %d and %d", entity.SizeClassUnknown, entity.SizeClassLarge)
	}
	q.Pet.MinSizeClass = minSize

	minCount, err := intParam(r, "petMinCount", 0)
	if err != nil {
		return q, 0, err
	}
	if minCount < 0 {
		return q, 0, fmt.Errorf("petMinCount cannot be negative")
	}
	q.Pet.MinCount = minCount

	page, err := intParam(r, "page", 1)
	if err != nil {
		return q, 0, err
	}
	if page < 1 {
		return q, 0, fmt.Errorf("page must be 1 or greater")
	}

	return q, page, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, raw)
	}
	return v, nil
}
