package listing

import (
	"sort"
	"strings"
)

// SortMode selects the ordering applied to the accumulated display list.
type SortMode int

const (
	// SortByName orders by title using locale-aware collation.
	SortByName SortMode = iota
	// SortByRecency orders by modification time, newest first.
	SortByRecency
)

// PetFilterMode is the tri-state pet filter setting on a query.
//
// PetFilterDefault means the user expressed no preference; a keyword that
// matches the pet vocabulary may still activate the filter implicitly.
// PetFilterExcluded is an explicit opt-out and is never overridden.
type PetFilterMode int

const (
	PetFilterDefault PetFilterMode = iota
	PetFilterRequired
	PetFilterExcluded
)

// PetFilter is the annotation filter portion of a query.
type PetFilter struct {
	Mode PetFilterMode

	// MinSizeClass filters to policies admitting at least this size class
	// (entity.SizeClassSmall etc.). Zero means no size constraint.
	MinSizeClass int

	// MinCount filters to policies admitting at least this many animals.
	// Zero means no count constraint.
	MinCount int
}

// Query is the immutable value describing one listing request. Changing any
// field invalidates all accumulated page state and restarts pagination at
// page 1.
type Query struct {
	// Keyword is the optional free-text search term.
	Keyword string

	// AreaCode optionally restricts results to one catalog area.
	AreaCode string

	// Categories optionally restricts results to category codes, with union
	// semantics. Order is irrelevant to query identity.
	Categories []string

	Sort SortMode
	Pet  PetFilter
}

// Equal reports whether two queries are the same listing request.
// Categories compare as sets.
func (q Query) Equal(other Query) bool {
	if q.Keyword != other.Keyword ||
		q.AreaCode != other.AreaCode ||
		q.Sort != other.Sort ||
		q.Pet != other.Pet {
		return false
	}
	a := q.sortedCategories()
	b := other.sortedCategories()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sortedCategories returns a sorted copy of the category set.
func (q Query) sortedCategories() []string {
	if len(q.Categories) == 0 {
		return nil
	}
	out := make([]string, len(q.Categories))
	copy(out, q.Categories)
	sort.Strings(out)
	return out
}

// hasKeyword reports whether the query carries a non-blank keyword.
func (q Query) hasKeyword() bool {
	return strings.TrimSpace(q.Keyword) != ""
}
