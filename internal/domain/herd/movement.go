package herd

import (
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

// Reconciler infers animals that changed group between two snapshots.
//
// A plain diff of the two snapshots mixes animals that aged into another
// bracket with animals that joined or left the herd. The group's own entries
// and exits inside the window are subtracted so the residual is movement.
type Reconciler struct {
	filter Filter
	stats  models.MovementStats
}

// NewReconciler builds a reconciler over the group's records.
func NewReconciler(group models.GroupName, records []models.Animal) *Reconciler {
	return &Reconciler{filter: NewFilter(group, records)}
}

// Moved returns the animals of reference that are neither in exclude nor
// explained by an entry or exit of this group in [start, end). Animals are
// matched by ID.
func (r *Reconciler) Moved(reference, exclude []models.Animal, start, end time.Time) []models.Animal {
	skip := make(map[string]struct{}, len(exclude))
	for _, a := range exclude {
		skip[a.ID] = struct{}{}
	}
	for _, a := range r.filter.ByEntryRange(start, end) {
		skip[a.ID] = struct{}{}
	}
	for _, a := range r.filter.ByExitRange(start, end) {
		skip[a.ID] = struct{}{}
	}

	moved := []models.Animal{}
	for _, a := range reference {
		if _, ok := skip[a.ID]; ok {
			continue
		}
		moved = append(moved, a)
	}
	return moved
}

// Compute counts animals moved into and out of the group over [startDate, endDate).
func (r *Reconciler) Compute(startSnapshot models.Snapshot, startDate time.Time, endSnapshot models.Snapshot, endDate time.Time) {
	startActive := r.filter.ActiveIn(startSnapshot, startDate)
	endActive := r.filter.ActiveIn(endSnapshot, endDate)

	r.stats.MovedIn = len(r.Moved(endActive, startActive, startDate, endDate))
	r.stats.MovedOut = len(r.Moved(startActive, endActive, startDate, endDate))
}

// Stats returns the computed movement counts.
func (r *Reconciler) Stats() models.MovementStats {
	return r.stats
}
