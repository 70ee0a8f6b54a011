package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	ErrListDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
	)
)

// ListDeliveriesQuery is one page of the delivery table. Search matches the
// order id, customer name, job name, mobile number and agent of the embedded
// order, case-insensitively. An empty status (or "all") disables the filter.
// Zero page and size fall back to DefaultPage and DefaultPageSize.
//
// Example:
//
//	query, err := NewListDeliveriesQuery("acme", "in_transit", 1, 20)
type ListDeliveriesQuery struct {
	search   string
	status   delivery.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery(search, status string, page, pageSize int) (ListDeliveriesQuery, error) {
	query := ListDeliveriesQuery{
		search: strings.ToLower(strings.TrimSpace(search)),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStatus(status),
		query.setPage(page),
		query.setPageSize(pageSize),
	); err != nil {
		return ListDeliveriesQuery{}, errs.NewValidationErrorWithCause("delivery list query is invalid", err)
	}

	return query, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Search() string { return q.search }

// Status is delivery.Unknown when no status filter is applied.
func (q ListDeliveriesQuery) Status() delivery.Status { return q.status }
func (q ListDeliveriesQuery) Page() int { return q.page }
func (q ListDeliveriesQuery) PageSize() int { return q.pageSize }

func (q *ListDeliveriesQuery) setStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, "all") {
		q.status = delivery.Unknown
		return nil
	}

	s, err := delivery.ParseStatus(status)
	if err != nil {
		return err
	}
	q.status = s
	return nil
}

func (q *ListDeliveriesQuery) setPage(page int) error {
	switch {
	case page < 0:
		return errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	case page == 0:
		q.page = DefaultPage
	default:
		q.page = page
	}
	return nil
}

func (q *ListDeliveriesQuery) setPageSize(pageSize int) error {
	switch {
	case pageSize < 0 || pageSize > MaxPageSize:
		return errs.NewValueIsOutOfRangeError("page size", pageSize, 1, MaxPageSize)
	case pageSize == 0:
		q.pageSize = DefaultPageSize
	default:
		q.pageSize = pageSize
	}
	return nil
}

// DeliveryPage is a page of the filtered delivery list. Total counts every
// record matching the filters, not only the ones on the page.
type DeliveryPage struct {
	Items      []delivery.Record
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}
