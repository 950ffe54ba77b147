package service

import (
	"strconv"
	"strings"

	"github.com/mercata/catalog/internal/domain"
	"github.com/mercata/catalog/internal/repository"
)

// Price bounds substituted when only one end of the range is supplied.
const (
	defaultPriceFrom = 0
	defaultPriceTo   = 999999
)

// BuildProductSearchQuery turns an optional filter into a parameterized
// statement plus its ordered bind values. Values are never interpolated
// into the query text.
//
// Criteria are applied in a fixed order (title, description, price range)
// and joined with OR: a product matching any present criterion is returned.
// Callers wanting match-all semantics filter the result themselves; this
// looseness is kept for compatibility with existing consumers. A price
// clause is present when either bound is, checks the strict open interval,
// and substitutes 0 / 999999 for an absent bound. With no criteria the
// base selection is returned untouched.
func BuildProductSearchQuery(filter domain.ProductFilter) (string, []any) {
	var clauses []string
	var args []any

	placeholder := func() string {
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		clauses = append(clauses, "title ILIKE "+placeholder())
	}

	if filter.Description != "" {
		args = append(args, "%"+filter.Description+"%")
		clauses = append(clauses, "description ILIKE "+placeholder())
	}

	if filter.PriceFrom != nil || filter.PriceTo != nil {
		from := float64(defaultPriceFrom)
		if filter.PriceFrom != nil {
			from = *filter.PriceFrom
		}
		to := float64(defaultPriceTo)
		if filter.PriceTo != nil {
			to = *filter.PriceTo
		}

		args = append(args, from)
		clause := "(price > " + placeholder()
		args = append(args, to)
		clause += " AND price < " + placeholder() + ")"
		clauses = append(clauses, clause)
	}

	if len(clauses) == 0 {
		return repository.BaseProductSelect, nil
	}

	return repository.BaseProductSelect + " WHERE " + strings.Join(clauses, " OR "), args
}
