package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseKind(t *testing.T) {
	for _, raw := range []string{"day", "week", "month", "year"} {
		kind, err := ParseKind(raw)
		require.NoError(t, err)
		assert.Equal(t, Kind(raw), kind)
	}

	_, err := ParseKind("bogus")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPeriod)

	_, err = ParseKind("")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPeriod)
}

func TestResolveDay(t *testing.T) {
	now := date(2024, time.March, 15)

	t.Run("without anchor covers yesterday", func(t *testing.T) {
		window, err := Resolve(KindDay, nil, now)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 14), window.Start)
		assert.Equal(t, date(2024, time.March, 15), window.End)
	})

	t.Run("anchor shifts the window", func(t *testing.T) {
		anchor := date(2024, time.January, 2)
		window, err := Resolve(KindDay, &anchor, now)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 2), window.Start)
		assert.Equal(t, date(2024, time.January, 3), window.End)
	})

	t.Run("anchor time of day is dropped", func(t *testing.T) {
		anchor := time.Date(2024, time.January, 2, 17, 42, 9, 0, time.UTC)
		window, err := Resolve(KindDay, &anchor, now)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 2), window.Start)
	})
}

func TestResolveWeek(t *testing.T) {
	t.Run("anchor mid week snaps to sunday", func(t *testing.T) {
		// 2024-03-15 is a Friday; the containing week starts Sunday 03-10.
		anchor := date(2024, time.March, 15)
		window, err := Resolve(KindWeek, &anchor, date(2025, time.January, 1))
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 10), window.Start)
		assert.Equal(t, date(2024, time.March, 17), window.End)
	})

	t.Run("anchor on sunday stays put", func(t *testing.T) {
		anchor := date(2024, time.March, 10)
		window, err := Resolve(KindWeek, &anchor, date(2024, time.March, 15))
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 10), window.Start)
		assert.Equal(t, date(2024, time.March, 17), window.End)
	})

	t.Run("without anchor uses now", func(t *testing.T) {
		window, err := Resolve(KindWeek, nil, date(2024, time.March, 15))
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 10), window.Start)
		assert.Equal(t, date(2024, time.March, 17), window.End)
	})
}

func TestResolveMonth(t *testing.T) {
	now := date(2024, time.March, 15)

	t.Run("without anchor covers current month", func(t *testing.T) {
		window, err := Resolve(KindMonth, nil, now)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 1), window.Start)
		assert.Equal(t, date(2024, time.March, 31), window.End)
	})

	t.Run("anchor sets the start but end stays in current month", func(t *testing.T) {
		anchor := date(2024, time.January, 10)
		window, err := Resolve(KindMonth, &anchor, now)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 10), window.Start)
		assert.Equal(t, date(2024, time.March, 31), window.End)
	})

	t.Run("february end handles leap years", func(t *testing.T) {
		window, err := Resolve(KindMonth, nil, date(2024, time.February, 20))
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.February, 29), window.End)
	})
}

func TestResolveYear(t *testing.T) {
	now := date(2024, time.June, 1)

	t.Run("without anchor covers current year", func(t *testing.T) {
		window, err := Resolve(KindYear, nil, now)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 1), window.Start)
		assert.Equal(t, date(2024, time.December, 31), window.End)
	})

	t.Run("anchor sets the start but end stays in current year", func(t *testing.T) {
		anchor := date(2022, time.May, 4)
		window, err := Resolve(KindYear, &anchor, now)
		require.NoError(t, err)
		assert.Equal(t, date(2022, time.May, 4), window.Start)
		assert.Equal(t, date(2024, time.December, 31), window.End)
	})
}

func TestResolveInvalidKind(t *testing.T) {
	_, err := Resolve(Kind("quarter"), nil, date(2024, time.March, 15))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPeriod)
}

func TestResolveStartNeverAfterEnd(t *testing.T) {
	now := date(2024, time.March, 15)
	anchor := date(2023, time.July, 9)

	for _, kind := range []Kind{KindDay, KindWeek, KindMonth, KindYear} {
		for _, a := range []*time.Time{nil, &anchor} {
			window, err := Resolve(kind, a, now)
			require.NoError(t, err)
			assert.False(t, window.Start.After(window.End), "kind %s", kind)
		}
	}
}
