package domain

// ListingConfig sets the page size of a paginated collection endpoint.
// Collections without one are returned whole.
type ListingConfig struct {
	PageSize int
}

var (
	OrderListing  = ListingConfig{PageSize: 5}
	TicketListing = ListingConfig{PageSize: 5}
)

// Page returns the pagination window for the given 1-based page number.
func (c ListingConfig) Page(page int) Pagination {
	if page < 1 {
		page = 1
	}

	return Pagination{
		Page:     page,
		PageSize: c.PageSize,
	}
}

type Pagination struct {
	Page     int
	PageSize int
}

func (f Pagination) Limit() int {
	return f.PageSize
}

func (f Pagination) Offset() int {
	return (f.Page - 1) * f.PageSize
}
