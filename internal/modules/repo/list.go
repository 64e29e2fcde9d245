package repo

import (
	"strings"

	"github.com/caderh/caderh-api/internal/pkg/paging"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// applySearch ORs a case-insensitive substring match over the given columns.
func applySearch(q *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	pattern := likePattern(term)
	for i, c := range columns {
		conds[i] = c + " ILIKE ?"
		args[i] = pattern
	}
	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// orderBy resolves the public sort key through a whitelist; unknown keys fall back.
func orderBy(p paging.Query, sortable map[string]string, fallback string) clause.OrderByColumn {
	col, ok := sortable[p.Sort]
	if !ok {
		return clause.OrderByColumn{Column: clause.Column{Name: fallback, Raw: true}}
	}
	return clause.OrderByColumn{Column: clause.Column{Name: col, Raw: true}, Desc: p.Descending()}
}

// findPage counts and fetches one page. base must return a fresh query each call;
// decorate, when set, only applies to the fetch (computed selects, joins).
func findPage[T any](base func() *gorm.DB, decorate func(*gorm.DB) *gorm.DB, p paging.Query, sortable map[string]string, fallback string) ([]T, int64, error) {
	var count int64
	if err := base().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0)
	q := base()
	if decorate != nil {
		q = decorate(q)
	}
	q = q.Order(orderBy(p, sortable, fallback)).Limit(p.Limit).Offset(p.Offset)
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, count, nil
}
