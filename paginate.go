package esgview

// DefaultPageSize is the number of list rows shown per page.
const DefaultPageSize = 20

// Page is one slice of an ordered result set plus its page metadata.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	TotalItems int
}

// Paginate slices items into the requested page. TotalPages is
// ceil(len(items)/size), or 0 for an empty set. Paginate does not clamp the
// page number; keeping navigation inside [1, TotalPages] is the caller's
// responsibility. Out-of-range pages yield empty Items.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := (len(items) + size - 1) / size

	page := Page[T]{Number: number, TotalPages: total, TotalItems: len(items)}
	start := (number - 1) * size
	if start < 0 || start >= len(items) {
		return page
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	page.Items = items[start:end]
	return page
}
