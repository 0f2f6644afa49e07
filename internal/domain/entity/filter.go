package entity

// ContentFilter is a domain-level filter for listing contents.
// Used by repository layer to avoid coupling with delivery DTOs.
type ContentFilter struct {
	Search string      // Title substring (ILIKE)
	Type   ContentType // Optional exact type
}

// DoctorFilter matches Search against name, specialization or phone.
type DoctorFilter struct {
	Search string
}

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

const DefaultPageSize = 10

// Normalize clamps the page and size to sane values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
