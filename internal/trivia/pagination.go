package trivia

// Paginate returns the page-th fixed-size window over items, which must
// already be in stable order (ascending by id). Pages are 1-based; any
// page <= 0 is treated as page 1. A window starting beyond the end of items
// yields an empty slice — the caller decides whether that is a 404.
func Paginate(items []Question, page int) []Question {
	if page <= 0 {
		page = 1
	}
	// Compare before multiplying: a huge page number would overflow the
	// offset computation and turn it negative.
	if page-1 > len(items)/PageSize {
		return []Question{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []Question{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
