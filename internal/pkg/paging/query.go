package paging

import (
	"errors"
	"strings"
)

const MaxLimit = 100

var ErrInvalidQuery = errors.New("invalid list query")

// Query is the common list query string: ?limit=&offset=&search=&sort=&desc=
// Endpoints that allow ?all=true branch before binding it.
type Query struct {
	Limit  int    `form:"limit" json:"limit"`
	Offset int    `form:"offset" json:"offset"`
	Search string `form:"search" json:"search"`
	Sort   string `form:"sort" json:"sort"`
	Desc   string `form:"desc" json:"desc"`
}

// Validate enforces 1 <= limit <= 100 and offset >= 0.
func (q Query) Validate() error {
	if q.Limit < 1 || q.Limit > MaxLimit || q.Offset < 0 {
		return ErrInvalidQuery
	}
	return nil
}

func (q Query) Descending() bool {
	return strings.EqualFold(q.Desc, "desc") || strings.EqualFold(q.Desc, "true")
}

func (q Query) Term() string {
	return strings.TrimSpace(q.Search)
}
