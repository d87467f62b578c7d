// Package report holds the pure reporting core: resolving a coarse period
// keyword into a concrete date window and aggregating orders inside it.
package report

import (
	"time"

	domainerrors "storefront/internal/domain/errors"
)

// Kind is a coarse reporting period keyword.
type Kind string

const (
	KindDay   Kind = "day"
	KindWeek  Kind = "week"
	KindMonth Kind = "month"
	KindYear  Kind = "year"
)

// ParseKind validates a raw period keyword from a query string.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindDay, KindWeek, KindMonth, KindYear:
		return Kind(raw), nil
	default:
		return "", domainerrors.ErrInvalidPeriod
	}
}

// Window is a concrete date range derived from a period keyword. Aggregation
// treats both bounds as inclusive, so adjacent windows share their boundary
// instant. That matches the behavior downstream report consumers rely on.
type Window struct {
	Kind  Kind      `json:"kind"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Resolve maps a period kind plus an optional anchor date onto a Window.
// It is a pure function of its arguments: no clock reads, no I/O.
//
// Month and year windows always end at the close of the *current* month or
// year taken from now, even when the anchor points elsewhere. An anchor in a
// past month therefore yields a window spanning from that anchor up to the
// present month's end.
func Resolve(kind Kind, anchor *time.Time, now time.Time) (Window, error) {
	today := midnight(now)

	switch kind {
	case KindDay:
		start := today.AddDate(0, 0, -1)
		if anchor != nil {
			start = midnight(*anchor)
		}

		return Window{Kind: kind, Start: start, End: start.AddDate(0, 0, 1)}, nil
	case KindWeek:
		day := today
		if anchor != nil {
			day = midnight(*anchor)
		}
		start := day.AddDate(0, 0, -int(day.Weekday()))

		return Window{Kind: kind, Start: start, End: start.AddDate(0, 0, 7)}, nil
	case KindMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		if anchor != nil {
			start = midnight(*anchor)
		}
		end := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

		return Window{Kind: kind, Start: start, End: end}, nil
	case KindYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		if anchor != nil {
			start = midnight(*anchor)
		}
		end := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

		return Window{Kind: kind, Start: start, End: end}, nil
	default:
		return Window{}, domainerrors.ErrInvalidPeriod
	}
}

// midnight truncates an instant to the start of its UTC day.
func midnight(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
