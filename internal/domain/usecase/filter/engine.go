package filter

import (
	"strings"
	"time"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// Predicate decides whether a transaction survives a criterion
type Predicate func(tx entity.Transaction) bool

// Engine applies conjunctive transaction criteria
type Engine struct {
	location *time.Location
}

// NewEngine creates an engine interpreting calendar dates in loc (UTC when nil)
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{location: loc}
}

// Location returns the location calendar dates are interpreted in
func (e *Engine) Location() *time.Location {
	return e.location
}

// ParseCriteria validates raw filter inputs into criteria
func (e *Engine) ParseCriteria(search, txType, sign, start, end string) (entity.Criteria, error) {
	criteria := entity.Criteria{Search: strings.TrimSpace(search)}

	if strings.TrimSpace(txType) != "" {
		t, err := entity.ParseTransactionType(txType)
		if err != nil {
			return entity.Criteria{}, err
		}
		criteria.Type = t
	}

	amountSign, err := entity.ParseAmountSign(sign)
	if err != nil {
		return entity.Criteria{}, err
	}
	criteria.AmountSign = amountSign

	dateRange, err := entity.NewDateRange(start, end, e.location)
	if err != nil {
		return entity.Criteria{}, err
	}
	criteria.DateRange = dateRange

	return criteria, nil
}

// Predicates returns one predicate per active criterion
func (e *Engine) Predicates(criteria entity.Criteria) []Predicate {
	var predicates []Predicate

	if criteria.HasSearch() {
		term := strings.ToLower(strings.TrimSpace(criteria.Search))
		predicates = append(predicates, func(tx entity.Transaction) bool {
			return matchesUser(tx, term)
		})
	}

	if criteria.Type != "" {
		predicates = append(predicates, func(tx entity.Transaction) bool {
			return tx.Type == criteria.Type
		})
	}

	switch criteria.AmountSign {
	case entity.SignPositive:
		predicates = append(predicates, func(tx entity.Transaction) bool {
			return tx.Amount.Sign() >= 0
		})
	case entity.SignNegative:
		predicates = append(predicates, func(tx entity.Transaction) bool {
			return tx.Amount.Sign() < 0
		})
	}

	if !criteria.DateRange.IsZero() {
		dateRange := criteria.DateRange
		predicates = append(predicates, func(tx entity.Transaction) bool {
			return dateRange.Contains(tx.CreatedAt)
		})
	}

	return predicates
}

// Apply returns the records matching every active criterion, preserving order.
// The input slice is never modified; with no active criterion it is returned as is.
func (e *Engine) Apply(records []entity.Transaction, criteria entity.Criteria) []entity.Transaction {
	predicates := e.Predicates(criteria)
	if len(predicates) == 0 {
		return records
	}

	filtered := make([]entity.Transaction, 0, len(records)/2)
	for _, tx := range records {
		if matchesAll(tx, predicates) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// MatchesSearch reports whether the user name contains term, ignoring case.
// A blank term matches everything; a record without a user never matches a non-blank term.
func MatchesSearch(tx entity.Transaction, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return matchesUser(tx, term)
}

func matchesUser(tx entity.Transaction, lowerTerm string) bool {
	name, ok := tx.UserName()
	return ok && strings.Contains(strings.ToLower(name), lowerTerm)
}

func matchesAll(tx entity.Transaction, predicates []Predicate) bool {
	for _, p := range predicates {
		if !p(tx) {
			return false
		}
	}
	return true
}
