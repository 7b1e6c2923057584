// Package view holds the display-layer derivations applied to whatever
// sequence of contracts is currently shown: column sorting, status filtering
// and value formatting. Inputs are never modified.
package view

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/AnTengye/contractdash/model"
)

// SortField names a sortable column.
type SortField string

const (
	SortNone       SortField = ""
	SortID         SortField = "id"
	SortClientName SortField = "client_name"
	SortValue      SortField = "value"
	SortStartDate  SortField = "start_date"
)

// SortFields lists the sortable columns in table order.
var SortFields = []SortField{SortID, SortClientName, SortValue, SortStartDate}

// Order is the sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

var (
	ErrUnknownSortField = errors.New("unknown sort field")
	ErrUnknownOrder     = errors.New("unknown sort order")
)

// ParseSortField accepts a column name; the empty string means unsorted.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if f == SortNone || slices.Contains(SortFields, f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortField, s)
}

// ParseOrder accepts "asc" or "desc"; the empty string means ascending.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Toggle flips the direction.
func (o Order) Toggle() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// Next returns the column after f, wrapping back to unsorted.
func (f SortField) Next() SortField {
	if f == SortNone {
		return SortFields[0]
	}
	i := slices.Index(SortFields, f)
	if i < 0 || i == len(SortFields)-1 {
		return SortNone
	}
	return SortFields[i+1]
}

// Sort returns a sorted copy. Equal keys keep their relative order.
func Sort(contracts []model.Contract, field SortField, order Order) []model.Contract {
	out := slices.Clone(contracts)
	cmpFn := comparator(field)
	if cmpFn == nil {
		return out
	}
	if order == Descending {
		asc := cmpFn
		cmpFn = func(a, b model.Contract) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, cmpFn)
	return out
}

func comparator(field SortField) func(a, b model.Contract) int {
	switch field {
	case SortID:
		return func(a, b model.Contract) int { return strings.Compare(a.ID, b.ID) }
	case SortClientName:
		return func(a, b model.Contract) int { return strings.Compare(a.ClientName, b.ClientName) }
	case SortValue:
		return func(a, b model.Contract) int {
			switch {
			case a.Value < b.Value:
				return -1
			case a.Value > b.Value:
				return 1
			}
			return 0
		}
	case SortStartDate:
		return func(a, b model.Contract) int {
			switch {
			case a.StartDate.Before(b.StartDate):
				return -1
			case a.StartDate.After(b.StartDate):
				return 1
			}
			return 0
		}
	}
	return nil
}

// FilterByStatus keeps contracts whose status equals any of statuses.
// With no statuses selected every contract is kept.
func FilterByStatus(contracts []model.Contract, statuses ...model.Status) []model.Contract {
	if len(statuses) == 0 {
		return slices.Clone(contracts)
	}
	out := make([]model.Contract, 0, len(contracts))
	for _, c := range contracts {
		if slices.Contains(statuses, c.Status) {
			out = append(out, c)
		}
	}
	return out
}

// Query bundles the derivations applied to a result set, in order:
// status filter first, then sort.
type Query struct {
	Statuses []model.Status
	SortBy   SortField
	Order    Order
}

// Apply runs the filter then the sort.
func (q Query) Apply(contracts []model.Contract) []model.Contract {
	return Sort(FilterByStatus(contracts, q.Statuses...), q.SortBy, q.Order)
}
