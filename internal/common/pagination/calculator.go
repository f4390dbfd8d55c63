package pagination

// CalculateOffset calculates the row offset for a 1-based page number.
//
// Formula: offset = (page - 1) * limit
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages using ceiling
// division. A total of 0 still yields 1 page so clients always have a
// renderable page.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
