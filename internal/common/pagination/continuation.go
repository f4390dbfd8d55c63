package pagination

// HasMore decides whether another page should be requested from a paginated
// upstream that reports a total-result count per query.
//
// The decision uses only raw upstream figures: the size of the page as
// returned (before any local filtering) and the running count of raw items
// fetched so far. Local filtering can shrink a page's visible contribution
// to zero while the upstream still holds more results, so the filtered item
// count must never feed into this calculation.
//
// Rules:
//   - A short page (rawPageLen < requestedLimit) means the upstream is
//     exhausted, regardless of totalCount.
//   - A full page continues only while rawFetched < totalCount.
func HasMore(rawPageLen, requestedLimit int, rawFetched, totalCount int64) bool {
	if rawPageLen < requestedLimit {
		return false
	}
	return rawFetched < totalCount
}
