package scheduler

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/plantbot/pkg/domain"
)

// RetentionResult is the outcome of a retention run
type RetentionResult struct {
	Deleted int
	Kept    int
	Failed  int // stale plants the delete failed for, counted as kept too
	Total   int
}

// Retention deletes plants untouched for the retention window
type Retention struct {
	store Store
	now   func() time.Time
}

// NewRetention makes a retention job
func NewRetention(store Store) *Retention {
	return &Retention{store: store, now: time.Now}
}

// Run does a single retention pass, a failed delete doesn't stop the rest
func (r *Retention) Run(ctx context.Context) RetentionResult {
	now := r.now().UTC()
	plants := r.store.ListPlants(ctx)
	res := RetentionResult{Total: len(plants)}

	for _, op := range plants {
		if !domain.IsStale(op.Plant, now) {
			res.Kept++
			continue
		}
		if !r.store.DeletePlant(ctx, op.OwnerID) {
			res.Failed++
			res.Kept++
			continue
		}
		lgr.Printf("[INFO] deleted stale plant %q of %s", op.Plant.Name, op.OwnerID)
		res.Deleted++
	}

	lgr.Printf("[INFO] retention done, deleted: %d, kept: %d, failed: %d, total: %d",
		res.Deleted, res.Kept, res.Failed, res.Total)
	return res
}
