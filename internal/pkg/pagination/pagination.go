// Package pagination holds the page/limit/offset arithmetic and the metadata
// envelope shared by every listing endpoint.
package pagination

import (
	"math"

	"orders/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a validated 1-indexed page request.
type Params struct {
	page  int
	limit int
}

// NewParams validates page and limit. Zero values fall back to DefaultPage
// and DefaultLimit, matching a request that omits them. Page is capped so
// that Offset cannot overflow.
func NewParams(page, limit int) (Params, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	if limit < 1 || limit > MaxLimit {
		return Params{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLimit)
	}
	if maxPage := MaxPage(limit); page < 1 || page > maxPage {
		return Params{}, errs.NewValueIsOutOfRangeError("page", page, 1, maxPage)
	}

	return Params{page: page, limit: limit}, nil
}

// MaxPage is the largest page whose offset fits in an int for limit.
func MaxPage(limit int) int {
	return math.MaxInt / limit
}

func (p Params) Page() int {
	return p.page
}

func (p Params) Limit() int {
	return p.limit
}

// Offset is the number of rows to skip: (page-1)*limit.
func (p Params) Offset() int {
	return (p.page - 1) * p.limit
}

// Metadata describes a result window.
type Metadata struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	LastPage int   `json:"lastPage"`
}

// NewMetadata computes LastPage as ceil(total/limit); an empty result set has LastPage 0.
func NewMetadata(total int64, p Params) Metadata {
	lastPage := 0
	if p.limit > 0 && total > 0 {
		lastPage = int((total + int64(p.limit) - 1) / int64(p.limit))
	}

	return Metadata{
		Total:    total,
		Page:     p.page,
		LastPage: lastPage,
	}
}

// Page is the {data, metadata} envelope.
type Page[T any] struct {
	Data     []T      `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// NewPage wraps data; a nil slice is replaced by an empty one so it encodes as [].
func NewPage[T any](data []T, total int64, p Params) Page[T] {
	if data == nil {
		data = make([]T, 0)
	}
	return Page[T]{
		Data:     data,
		Metadata: NewMetadata(total, p),
	}
}

// Map converts the data of a page, keeping its metadata.
func Map[T, R any](page Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(page.Data))
	for _, item := range page.Data {
		out = append(out, fn(item))
	}
	return Page[R]{Data: out, Metadata: page.Metadata}
}
