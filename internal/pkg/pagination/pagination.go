// Package pagination turns page/per_page query parameters into a skip/limit window and
// decorates listings with navigation details.
package pagination

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/httpurl"
)

const (
	pageKey    = "page"
	perPageKey = "per_page"
)

// Params is the parsed pagination request. A zero PerPage means pagination is disabled.
type Params struct {
	CurrPage int
	PerPage  int
}

type Details struct {
	PerPage     int    `json:"per_page"`
	CurrPage    int    `json:"curr_page"`
	Total       int64  `json:"total"`
	LastPageURL string `json:"last_page_url,omitempty"`
	NextPageURL string `json:"next_page_url,omitempty"`
}

// FromQuery reads page and per_page. A per_page that is missing or not a positive integer
// disables pagination; a missing or invalid page becomes 1. A page whose window or next page
// would not fit in an int is invalid.
func FromQuery(values url.Values) Params {
	perPage, err := strconv.Atoi(values.Get(perPageKey))
	if err != nil || perPage < 1 {
		return Params{}
	}

	page, err := strconv.Atoi(values.Get(pageKey))
	if err != nil || page < 1 || page > (math.MaxInt-perPage)/perPage {
		page = 1
	}

	return Params{
		CurrPage: page,
		PerPage:  perPage,
	}
}

func (p Params) Enabled() bool {
	return p.PerPage > 0
}

func (p Params) Window() domain.Page {
	if !p.Enabled() {
		return domain.Page{}
	}

	return domain.Page{
		Skip:  (p.CurrPage - 1) * p.PerPage,
		Limit: p.PerPage,
	}
}

// Decorate builds the pagination details for a listing of total items. It returns nil when
// pagination is disabled.
func Decorate(r *http.Request, p Params, total int64) *Details {
	if !p.Enabled() {
		return nil
	}

	details := &Details{
		PerPage:  p.PerPage,
		CurrPage: p.CurrPage,
		Total:    total,
	}

	if p.CurrPage > 1 {
		details.LastPageURL = pageURL(r, p.CurrPage-1)
	}
	if total-int64(p.CurrPage)*int64(p.PerPage) > 0 {
		details.NextPageURL = pageURL(r, p.CurrPage+1)
	}

	return details
}

// pageURL rebuilds the request URL with only the page parameter changed.
func pageURL(r *http.Request, page int) string {
	query := r.URL.Query()
	query.Set(pageKey, strconv.Itoa(page))

	return httpurl.Origin(r) + r.URL.Path + "?" + query.Encode()
}
