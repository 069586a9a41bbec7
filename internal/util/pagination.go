package util

// Calculate turns a 1-based page and size into an offset/limit pair, clamping
// out-of-range values.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	from = (page - 1) * size
	return from, size
}

// TotalPages is ceil(total/size). Zero rows means zero pages.
func TotalPages(total int64, size int) int64 {
	if size <= 0 {
		return 0
	}
	return (total + int64(size) - 1) / int64(size)
}
