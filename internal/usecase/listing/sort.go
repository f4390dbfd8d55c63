package listing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sorter applies the query's sort mode and the annotation partition to the
// accumulated list. The collator is not safe for concurrent use; the engine
// only sorts while holding its mutex.
type sorter struct {
	coll *collate.Collator
}

func newSorter() *sorter {
	return &sorter{coll: collate.New(language.Korean)}
}

// apply orders items in place: first the plain sort mode, then, when
// prioritize is set, a stable partition that moves annotated items ahead of
// non-annotated ones without disturbing order inside either group.
func (s *sorter) apply(items []AggregatedItem, mode SortMode, prioritize bool) {
	switch mode {
	case SortByName:
		sort.SliceStable(items, func(i, j int) bool {
			return s.coll.CompareString(items[i].Place.Title, items[j].Place.Title) < 0
		})
	case SortByRecency:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Place.ModifiedAt.After(items[j].Place.ModifiedAt)
		})
	}
	if prioritize {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Annotated() && !items[j].Annotated()
		})
	}
}
