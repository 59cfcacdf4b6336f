package catalog

// Page holds the resolved pagination window for a listing.
type Page struct {
	Number   int
	LastPage int
	Offset   int
	Limit    int
}

// Paginate resolves a 1-based page number against a total row count.
// Out-of-range numbers clamp to the nearest valid page and an empty
// result set still reports a single empty page.
func Paginate(total int64, page int) Page {
	last := int((total + PageSize - 1) / PageSize)
	if last < 1 {
		last = 1
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}
	return Page{
		Number:   page,
		LastPage: last,
		Offset:   (page - 1) * PageSize,
		Limit:    PageSize,
	}
}
