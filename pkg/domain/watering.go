package domain

import "time"

const (
	// WateringIntervalDays is how many days a plant goes between waterings
	WateringIntervalDays = 3
	// RetentionDays is how many days a plant may stay untouched before it is purged
	RetentionDays = 7
)

const day = 24 * time.Hour

// WateringStatus is the watering state of a plant at a given moment
type WateringStatus struct {
	Watered       bool
	LastWatered   time.Time
	WateredBy     string
	DaysSince     int
	NeedsWater    bool
	DaysRemaining int
	DaysOverdue   int
	NextDue       time.Time
}

// DaysSince returns whole days elapsed from t to now, floored. A future t gives 0.
func DaysSince(t, now time.Time) int {
	if !now.After(t) {
		return 0
	}
	return int(now.Sub(t) / day)
}

// NeedsWater is true for a never watered plant or once the interval has elapsed
func NeedsWater(last *time.Time, now time.Time) bool {
	if last == nil {
		return true
	}
	return DaysSince(*last, now) >= WateringIntervalDays
}

// DaysRemaining returns days left until the next watering, 0 when due or never watered
func DaysRemaining(last *time.Time, now time.Time) int {
	if last == nil {
		return 0
	}
	return max(0, WateringIntervalDays-DaysSince(*last, now))
}

// DaysOverdue returns days past the due date, 0 when due today, not yet due or never watered
func DaysOverdue(last *time.Time, now time.Time) int {
	if last == nil {
		return 0
	}
	return max(0, DaysSince(*last, now)-WateringIntervalDays)
}

// NextWateringDue returns the moment the plant watered at last becomes due again
func NextWateringDue(last time.Time) time.Time {
	return last.Add(WateringIntervalDays * day)
}

// Status bundles the watering rule results for a plant
func Status(p Plant, now time.Time) WateringStatus {
	res := WateringStatus{
		Watered:    p.Watered(),
		WateredBy:  p.WateredBy,
		NeedsWater: NeedsWater(p.LastWatered, now),
	}
	if p.LastWatered == nil {
		return res
	}
	res.LastWatered = *p.LastWatered
	res.DaysSince = DaysSince(*p.LastWatered, now)
	res.DaysRemaining = DaysRemaining(p.LastWatered, now)
	res.DaysOverdue = DaysOverdue(p.LastWatered, now)
	res.NextDue = NextWateringDue(*p.LastWatered)
	return res
}

// IsStale reports whether the plant is untouched for the retention window.
// Plants with no known timestamp are never stale.
func IsStale(p Plant, now time.Time) bool {
	anchor, ok := p.StalenessAnchor()
	if !ok {
		return false
	}
	return DaysSince(anchor, now) >= RetentionDays
}
