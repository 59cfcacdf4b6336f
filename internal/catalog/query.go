// Package catalog turns the raw catalog query string into a normalized
// query description and provides the pagination arithmetic for the
// product listing. Applying the query to storage lives in the
// repository layer; everything here is pure.
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// PageSize is the fixed catalog page size.
const PageSize = 10

// The public API inherited these inverted tokens from the storefront
// frontend and they must be preserved for compatibility:
//   - sortType "dec" orders ascending, "inc" orders descending;
//   - filter[freeDelivery]=false disables the filter entirely, while any
//     other value narrows the listing to free-delivery products.
const (
	SortTokenAscending  = "dec"
	SortTokenDescending = "inc"

	FreeDeliveryTokenAll = "false"
)

// sortColumns whitelists sortable fields and maps the API name to the
// storage column.
var sortColumns = map[string]string{
	"price":   "price",
	"date":    "date",
	"title":   "title",
	"rating":  "rating",
	"reviews": "reviews_count",
}

// FreeDeliveryMode describes how the free-delivery filter narrows the
// listing.
type FreeDeliveryMode int

const (
	// FreeDeliveryAny applies no free-delivery restriction. Used both
	// when the parameter is absent and when it carries the "false"
	// token (see FreeDeliveryTokenAll).
	FreeDeliveryAny FreeDeliveryMode = iota
	// FreeDeliveryOnly narrows the listing to free-delivery products.
	FreeDeliveryOnly
)

// SortField is one (column, descending) pair of a composite ordering.
type SortField struct {
	Column     string
	Descending bool
}

// Query is the normalized catalog request.
type Query struct {
	NameContains string
	MinPrice     *float64
	MaxPrice     *float64
	FreeDelivery FreeDeliveryMode
	Available    *bool
	TagIDs       []uint
	Sort         []SortField
	Page         int
}

// Parse builds a Query from raw URL parameters. Malformed values fail
// only the filter they belong to; the value is treated as absent and
// the rest of the query still applies.
func Parse(values url.Values) Query {
	q := Query{FreeDelivery: FreeDeliveryAny, Page: 1}

	q.NameContains = strings.TrimSpace(values.Get("filter[name]"))
	q.MinPrice = parseFloat(values.Get("filter[minPrice]"))
	q.MaxPrice = parseFloat(values.Get("filter[maxPrice]"))

	if raw := values.Get("filter[freeDelivery]"); raw != "" {
		if strings.ToLower(raw) != FreeDeliveryTokenAll {
			q.FreeDelivery = FreeDeliveryOnly
		}
	}

	if raw := values.Get("filter[available]"); raw != "" {
		v := strings.ToLower(raw) == "true"
		q.Available = &v
	}

	for _, raw := range values["tags[]"] {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			q.TagIDs = append(q.TagIDs, uint(id))
		}
	}

	q.Sort = parseSort(values.Get("sort"), values.Get("sortType"))

	if page, err := strconv.Atoi(values.Get("currentPage")); err == nil && page > 0 {
		q.Page = page
	}

	return q
}

// parseSort pairs comma separated field names with their direction
// tokens. Unknown fields and unknown tokens are dropped.
func parseSort(fields, types string) []SortField {
	if fields == "" {
		return nil
	}
	names := strings.Split(fields, ",")
	tokens := strings.Split(types, ",")

	var sort []SortField
	for i, name := range names {
		column, ok := sortColumns[strings.TrimSpace(name)]
		if !ok || i >= len(tokens) {
			continue
		}
		switch strings.TrimSpace(tokens[i]) {
		case SortTokenAscending:
			sort = append(sort, SortField{Column: column})
		case SortTokenDescending:
			sort = append(sort, SortField{Column: column, Descending: true})
		}
	}
	return sort
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
