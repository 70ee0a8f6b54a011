package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrListProductionQueryIsNotConstructed = errors.New(
		"ListProductionQuery must be created via NewListProductionQuery constructor",
	)
)

// ListProductionQuery lists the records of one production line. Search
// matches the order id and the job name; an empty status (or "all")
// disables the status filter.
type ListProductionQuery struct {
	line   string
	search string
	status production.Status

	guard guard.ConstructorGuard
}

func NewListProductionQuery(line, search, status string) (ListProductionQuery, error) {
	query := ListProductionQuery{
		search: strings.ToLower(strings.TrimSpace(search)),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setLine(line),
		query.setStatus(status),
	); err != nil {
		return ListProductionQuery{}, errs.NewValidationErrorWithCause("production list query is invalid", err)
	}

	return query, nil
}

func (q ListProductionQuery) Validate() error {
	return q.guard.Validate(ErrListProductionQueryIsNotConstructed)
}

func (q ListProductionQuery) Line() string { return q.line }
func (q ListProductionQuery) Search() string { return q.search }

// Status is production.Unknown when no status filter is applied.
func (q ListProductionQuery) Status() production.Status { return q.status }

func (q *ListProductionQuery) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errs.NewValueIsRequiredError("line")
	}

	q.line = line
	return nil
}

func (q *ListProductionQuery) setStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, "all") {
		q.status = production.Unknown
		return nil
	}

	s, err := production.ParseStatus(status)
	if err != nil {
		return err
	}
	q.status = s
	return nil
}
