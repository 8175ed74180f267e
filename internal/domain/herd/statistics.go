package herd

import (
	"errors"
	"fmt"
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

// ErrPrematureStatistics is the panic value cause when the difference is
// requested before both head counts exist.
var ErrPrematureStatistics = errors.New("statistics difference requested before start and end counts")

// Statistics computes the head count of one group at the start and end of a window.
type Statistics struct {
	filter   Filter
	stats    models.GroupStats
	hasStart bool
	hasEnd   bool
}

// NewStatistics builds a calculator for the group's records.
func NewStatistics(group models.GroupName, records []models.Animal) *Statistics {
	return &Statistics{filter: NewFilter(group, records)}
}

// ComputeStart counts the group's animals active on startDate in the start snapshot.
func (s *Statistics) ComputeStart(startSnapshot models.Snapshot, startDate time.Time) {
	s.stats.StartCount = len(s.filter.ActiveIn(startSnapshot, startDate))
	s.hasStart = true
}

// ComputeEnd counts the group's animals active on endDate in the end snapshot.
func (s *Statistics) ComputeEnd(endSnapshot models.Snapshot, endDate time.Time) {
	s.stats.EndCount = len(s.filter.ActiveIn(endSnapshot, endDate))
	s.hasEnd = true
}

// ComputeDifference sets end minus start. It panics unless both counts are computed.
func (s *Statistics) ComputeDifference() {
	if !s.hasStart || !s.hasEnd {
		panic(fmt.Errorf("group %s: %w", s.filter.Group(), ErrPrematureStatistics))
	}
	s.stats.Difference = s.stats.EndCount - s.stats.StartCount
}

// Stats returns the computed figures.
func (s *Statistics) Stats() models.GroupStats {
	return s.stats
}
