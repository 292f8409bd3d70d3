package domain

import "time"

// Plant represents the single tracked plant of a registered user
type Plant struct {
	OwnerName   string     // last seen display name of the owner
	Name        string     // user-chosen label, never empty
	LastWatered *time.Time // nil if never watered
	WateredBy   string     // display name of whoever watered it last
	CreatedAt   time.Time  // set once at first registration, zero for legacy records
}

// OwnedPlant pairs a plant with the id of its owner
type OwnedPlant struct {
	OwnerID string
	Plant   Plant
}

// NewPlant makes a plant for a first-time owner with the default name. Times are kept in UTC.
func NewPlant(ownerName string, now time.Time) Plant {
	return Plant{
		OwnerName: ownerName,
		Name:      DefaultPlantName(ownerName),
		CreatedAt: now.UTC(),
	}
}

// DefaultPlantName returns the name a plant gets until its owner renames it
func DefaultPlantName(ownerName string) string {
	return ownerName + "'s Plant"
}

// MarkWatered sets the watering time and who did it
func (p *Plant) MarkWatered(by string, now time.Time) {
	ts := now.UTC()
	p.LastWatered = &ts
	p.WateredBy = by
}

// Watered reports whether the plant was watered at least once
func (p Plant) Watered() bool {
	return p.LastWatered != nil
}

// StalenessAnchor returns the timestamp retention is measured from: last watering if any,
// creation time otherwise. The second value is false if neither is known.
func (p Plant) StalenessAnchor() (time.Time, bool) {
	if p.LastWatered != nil {
		return *p.LastWatered, true
	}
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt, true
	}
	return time.Time{}, false
}

// Lookup is the outcome of reading a plant from the store
type Lookup int

// lookup outcomes
const (
	LookupAbsent Lookup = iota // no record, or the record is unreadable
	LookupFound
	LookupFailed // store unreachable, the record may exist
)
