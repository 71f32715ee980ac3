package gcpay

import (
	"net/url"
	"strconv"
	"time"
)

// ListParams holds the query parameters accepted by list endpoints.
// Pagination is cursor-based: After/Before carry opaque tokens from a
// previous page's meta.cursors.
type ListParams struct {
	After  string
	Before string
	Limit  int

	// CreatedAt filters resources by creation time.
	CreatedAt *CreatedAtFilter

	// Filters holds endpoint-specific filters such as "customer",
	// "mandate", "status", or "currency". Multi-valued filters are
	// joined with commas.
	Filters map[string][]string
}

// CreatedAtFilter expresses created_at[gt|gte|lt|lte] bounds.
type CreatedAtFilter struct {
	Gt  *time.Time
	Gte *time.Time
	Lt  *time.Time
	Lte *time.Time
}

// NewListParams creates an empty ListParams with initialized maps.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string][]string),
	}
}

// WithAfter sets the after cursor.
func (p *ListParams) WithAfter(cursor string) *ListParams {
	p.After = cursor

	return p
}

// WithBefore sets the before cursor.
func (p *ListParams) WithBefore(cursor string) *ListParams {
	p.Before = cursor

	return p
}

// WithLimit sets the page size.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithFilter appends values to an endpoint-specific filter.
func (p *ListParams) WithFilter(key string, values ...string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[key] = append(p.Filters[key], values...)

	return p
}

// WithStatus filters by resource status.
func (p *ListParams) WithStatus(statuses ...string) *ListParams {
	return p.WithFilter("status", statuses...)
}

// WithCreatedBefore bounds created_at from above (exclusive).
func (p *ListParams) WithCreatedBefore(t time.Time) *ListParams {
	if p.CreatedAt == nil {
		p.CreatedAt = &CreatedAtFilter{}
	}

	p.CreatedAt.Lt = &t

	return p
}

// WithCreatedAfter bounds created_at from below (exclusive).
func (p *ListParams) WithCreatedAfter(t time.Time) *ListParams {
	if p.CreatedAt == nil {
		p.CreatedAt = &CreatedAtFilter{}
	}

	p.CreatedAt.Gt = &t

	return p
}

// ToValues converts the params to url.Values for the query string.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.After != "" {
		values.Set("after", p.After)
	}

	if p.Before != "" {
		values.Set("before", p.Before)
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.CreatedAt != nil {
		setTimeBound(values, "created_at[gt]", p.CreatedAt.Gt)
		setTimeBound(values, "created_at[gte]", p.CreatedAt.Gte)
		setTimeBound(values, "created_at[lt]", p.CreatedAt.Lt)
		setTimeBound(values, "created_at[lte]", p.CreatedAt.Lte)
	}

	for key, filterValues := range p.Filters {
		if len(filterValues) == 0 {
			continue
		}

		values.Set(key, joinValues(filterValues))
	}

	return values
}

// clone returns a copy so iterators can mutate cursors without
// affecting the caller's params.
func (p *ListParams) clone() *ListParams {
	if p == nil {
		return NewListParams()
	}

	cloned := &ListParams{
		After:     p.After,
		Before:    p.Before,
		Limit:     p.Limit,
		CreatedAt: p.CreatedAt,
		Filters:   make(map[string][]string, len(p.Filters)),
	}

	for key, values := range p.Filters {
		cloned.Filters[key] = append([]string(nil), values...)
	}

	return cloned
}

func setTimeBound(values url.Values, key string, t *time.Time) {
	if t != nil {
		values.Set(key, t.UTC().Format(time.RFC3339))
	}
}

func joinValues(values []string) string {
	result := values[0]
	for _, v := range values[1:] {
		result += "," + v
	}

	return result
}
