// Package querybuilder translates listing query parameters into query descriptors.
package querybuilder

import (
	"net/url"
	"time"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/dates"
	"github.com/vietanh2810/evote-api/internal/pkg/pagination"
)

type Builder struct {
	loc *time.Location
	now func() time.Time
}

func New(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}

	return &Builder{
		loc: loc,
		now: time.Now,
	}
}

// Elections builds the listing of elections owned by ownerID. Unparseable date filters are
// reported per parameter.
func (b *Builder) Elections(values url.Values, ownerID uint, page pagination.Params) (domain.ElectionQuery, domain.FieldErrors) {
	q := domain.ElectionQuery{
		OwnerID: ownerID,
		Status:  values.Get("status"),
		Now:     b.now().UTC(),
		Page:    page.Window(),
	}

	errs := domain.FieldErrors{}
	q.StartTimeBefore = b.bound(values, "start_time_before", dates.EndOfDay, errs)
	q.StartTimeAfter = b.bound(values, "start_time_after", dates.StartOfDay, errs)
	q.CreatedBefore = b.bound(values, "created_before", dates.EndOfDay, errs)
	q.CreatedAfter = b.bound(values, "created_after", dates.StartOfDay, errs)

	if len(errs) > 0 {
		return domain.ElectionQuery{}, errs
	}

	return q, nil
}

// Scoped builds the listing of resources hanging off electionID.
func (b *Builder) Scoped(electionID uint, page pagination.Params) domain.ElectionScope {
	return domain.ElectionScope{
		ElectionID: electionID,
		Page:       page.Window(),
	}
}

func (b *Builder) bound(
	values url.Values,
	key string,
	edge func(time.Time, *time.Location) time.Time,
	errs domain.FieldErrors,
) *time.Time {
	raw, ok := values[key]
	if !ok || len(raw) == 0 || raw[0] == "" {
		return nil
	}

	parsed, err := dates.Parse(raw[0], b.loc)
	if err != nil {
		errs.Add(key, invalidDate(key))
		return nil
	}

	t := edge(parsed, b.loc).UTC()
	return &t
}

func invalidDate(key string) string {
	return "The " + key + " is not a valid date format."
}
