package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset returns the first index of a zero-based page.
func CalculateOffset(page, perPage int) int {
	if page < 0 || perPage <= 0 {
		return 0
	}
	return page * perPage
}

// SlicePage returns items[page*perPage : page*perPage+perPage] clipped to the
// bounds of items. Out-of-range pages yield an empty, non-nil slice. The
// result is capacity-limited so appending to it never writes into items.
func SlicePage[T any](items []T, page, perPage int) []T {
	if page < 0 || perPage <= 0 {
		return []T{}
	}

	if len(items) == 0 || page > (len(items)-1)/perPage {
		return []T{}
	}

	start := page * perPage
	end := start + perPage
	if end > len(items) || end < start {
		end = len(items)
	}

	return items[start:end:end]
}
