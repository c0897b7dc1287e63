package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

const DefaultPageLimit = 10

// PageConfig sets the page size used when none is requested. MaxLimit caps
// requested sizes; zero or less means no cap.
type PageConfig struct {
	DefaultLimit int
	MaxLimit     int
}

func (c PageConfig) withDefaults() PageConfig {
	if c.DefaultLimit < 1 {
		c.DefaultLimit = DefaultPageLimit
	}
	if c.MaxLimit > 0 && c.MaxLimit < c.DefaultLimit {
		c.MaxLimit = c.DefaultLimit
	}
	return c
}

type Query struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

// Page is the list response envelope.
type Page struct {
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

// ParseQuery reads page, limit, search and category from v. A page that is
// not a positive integer becomes 1; a limit that is not a positive integer
// becomes the default, and limits above a configured maximum are capped.
func ParseQuery(v url.Values, cfg PageConfig) Query {
	cfg = cfg.withDefaults()

	q := Query{
		Page:     positiveInt(v.Get("page"), 1),
		Limit:    positiveInt(v.Get("limit"), cfg.DefaultLimit),
		Search:   v.Get("search"),
		Category: v.Get("category"),
	}
	if cfg.MaxLimit > 0 && q.Limit > cfg.MaxLimit {
		q.Limit = cfg.MaxLimit
	}
	return q
}

func positiveInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Apply filters products by search and category and cuts out the requested page.
// Total counts the filtered products, not the page.
func (q Query) Apply(products []Product) Page {
	filtered := make([]Product, 0, len(products))
	search := strings.ToLower(q.Search)

	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		filtered = append(filtered, p)
	}

	return Page{
		Page:     q.Page,
		Limit:    q.Limit,
		Total:    len(filtered),
		Products: paginate(filtered, q.Page, q.Limit),
	}
}

func paginate(products []Product, page, limit int) []Product {
	if page < 1 || limit < 1 {
		return []Product{}
	}

	if page-1 > len(products)/limit {
		return []Product{}
	}
	start := (page - 1) * limit
	if start >= len(products) {
		return []Product{}
	}
	end := len(products)
	if limit < end-start {
		end = start + limit
	}
	return products[start:end]
}
