package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"same moment", now, 0},
		{"23 hours ago", now.Add(-23 * time.Hour), 0},
		{"exactly one day", now.Add(-24 * time.Hour), 1},
		{"47 hours ago", now.Add(-47 * time.Hour), 1},
		{"three days and a minute", now.Add(-72*time.Hour - time.Minute), 3},
		{"future timestamp", now.Add(5 * time.Hour), 0},
		{"ten days", now.AddDate(0, 0, -10), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysSince(tt.t, now))
		})
	}
}

func TestWateringRule(t *testing.T) {
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

	t.Run("never watered", func(t *testing.T) {
		assert.True(t, NeedsWater(nil, now))
		assert.Equal(t, 0, DaysRemaining(nil, now))
		assert.Equal(t, 0, DaysOverdue(nil, now))
	})

	// needs_water == days_since >= 3 and days_remaining == max(0, 3 - days_since) for every offset
	for hours := 0; hours <= 24*12; hours += 5 {
		last := now.Add(-time.Duration(hours) * time.Hour)
		ds := DaysSince(last, now)
		assert.Equal(t, ds >= WateringIntervalDays, NeedsWater(&last, now), "hours=%d", hours)
		assert.Equal(t, max(0, WateringIntervalDays-ds), DaysRemaining(&last, now), "hours=%d", hours)
		assert.Equal(t, max(0, ds-WateringIntervalDays), DaysOverdue(&last, now), "hours=%d", hours)
	}

	t.Run("inclusive threshold", func(t *testing.T) {
		last := now.Add(-72 * time.Hour)
		assert.True(t, NeedsWater(&last, now))
		assert.Equal(t, 0, DaysOverdue(&last, now))
		last = now.Add(-72*time.Hour + time.Second)
		assert.False(t, NeedsWater(&last, now))
		assert.Equal(t, 1, DaysRemaining(&last, now))
	})

	t.Run("next due", func(t *testing.T) {
		last := time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 9, 4, 8, 30, 0, 0, time.UTC), NextWateringDue(last))
	})
}

func TestStatus(t *testing.T) {
	t0 := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	p := NewPlant("Alice", t0)
	assert.Equal(t, "Alice's Plant", p.Name)

	st := Status(p, t0.Add(time.Hour))
	assert.False(t, st.Watered)
	assert.True(t, st.NeedsWater)
	assert.True(t, st.NextDue.IsZero())

	p.MarkWatered("Alice", t0)
	st = Status(p, t0.AddDate(0, 0, 2))
	assert.True(t, st.Watered)
	assert.Equal(t, "Alice", st.WateredBy)
	assert.Equal(t, 2, st.DaysSince)
	assert.False(t, st.NeedsWater)
	assert.Equal(t, 1, st.DaysRemaining)
	assert.Equal(t, t0.AddDate(0, 0, 3), st.NextDue)

	st = Status(p, t0.AddDate(0, 0, 3))
	assert.True(t, st.NeedsWater)
	assert.Equal(t, 0, st.DaysRemaining)
	assert.Equal(t, 0, st.DaysOverdue)

	st = Status(p, t0.AddDate(0, 0, 5))
	assert.Equal(t, 2, st.DaysOverdue)
}

func TestIsStale(t *testing.T) {
	now := time.Date(2025, 9, 20, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		plant Plant
		want  bool
	}{
		{"watered 8 days ago", Plant{LastWatered: ptr(now.AddDate(0, 0, -8)), CreatedAt: now.AddDate(0, 0, -9)}, true},
		{"watered 6 days ago", Plant{LastWatered: ptr(now.AddDate(0, 0, -6)), CreatedAt: now.AddDate(0, 0, -30)}, false},
		{"watered exactly 7 days ago", Plant{LastWatered: ptr(now.AddDate(0, 0, -7))}, true},
		{"never watered, created 8 days ago", Plant{CreatedAt: now.AddDate(0, 0, -8)}, true},
		{"never watered, created 2 days ago", Plant{CreatedAt: now.AddDate(0, 0, -2)}, false},
		{"no timestamps at all", Plant{Name: "legacy"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStale(tt.plant, now))
		})
	}
}

func TestPlant_StalenessAnchor(t *testing.T) {
	created := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	p := Plant{CreatedAt: created}
	anchor, ok := p.StalenessAnchor()
	assert.True(t, ok)
	assert.Equal(t, created, anchor)

	p.MarkWatered("Bob", created.Add(48*time.Hour))
	anchor, ok = p.StalenessAnchor()
	assert.True(t, ok)
	assert.Equal(t, created.Add(48*time.Hour), anchor)
	assert.Equal(t, "Bob", p.WateredBy)

	_, ok = Plant{}.StalenessAnchor()
	assert.False(t, ok)
}

func TestPlant_TimesInUTC(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*3600)
	local := time.Date(2025, 9, 10, 14, 0, 0, 0, berlin)

	p := NewPlant("Alice", local)
	assert.Equal(t, time.UTC, p.CreatedAt.Location())
	assert.True(t, p.CreatedAt.Equal(local))

	p.MarkWatered("Bob", local.Add(time.Hour))
	assert.Equal(t, time.UTC, p.LastWatered.Location())
	assert.Equal(t, time.Date(2025, 9, 10, 13, 0, 0, 0, time.UTC), *p.LastWatered)
	assert.Equal(t, "Bob", p.WateredBy)
}
