package services

import (
	"net/url"
	"strconv"
)

// ListFilter is the query state list endpoints accept. Zero values are
// omitted from the encoded query.
type ListFilter struct {
	Search    string
	Type      string // contact type or interaction type
	Status    string // task or project status
	Priority  string
	ContactID *int64
	Page      int
	PageSize  int
}

// Query encodes the filter as request parameters using the server's
// parameter names.
func (f ListFilter) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if f.ContactID != nil {
		q.Set("contact_id", strconv.FormatInt(*f.ContactID, 10))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(f.PageSize))
	}
	return q
}
