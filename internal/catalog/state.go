// Package catalog holds the in-memory view state for a market board
// session: the loaded records, the active category filter, and the
// record currently opened in the detail overlay. It is a single-owner
// state type; callers drive it from one goroutine (an event loop).
package catalog

import "marketboard/pkg/models"

type State struct {
	records  []models.Exhibitor
	filter   models.Category
	selected *models.Exhibitor

	// memoized derived list, rebuilt when records or filter change
	filtered []models.Exhibitor
}

func NewState() *State {
	return &State{filter: models.FilterAll, filtered: []models.Exhibitor{}}
}

// Replace installs a full snapshot of the catalog. Snapshots can arrive
// at any time (live feed); the filter and selection survive, the derived
// list is rebuilt.
func (s *State) Replace(records []models.Exhibitor) {
	s.records = records
	s.recompute()
}

// SetFilter replaces the active filter and recomputes the derived list.
func (s *State) SetFilter(c models.Category) {
	s.filter = c
	s.recompute()
}

func (s *State) Filter() models.Category {
	return s.filter
}

// Records returns the unfiltered catalog in store order.
func (s *State) Records() []models.Exhibitor {
	return s.records
}

// Filtered returns the records matching the active filter, in store
// order. ALL returns the full list.
func (s *State) Filtered() []models.Exhibitor {
	return s.filtered
}

func (s *State) recompute() {
	if s.filter == models.FilterAll {
		s.filtered = s.records
		return
	}
	out := []models.Exhibitor{}
	for _, e := range s.records {
		if e.Category == s.filter {
			out = append(out, e)
		}
	}
	s.filtered = out
}

// Select opens the overlay on e. Selecting while the overlay is already
// open swaps its content; there is no intermediate closed state.
func (s *State) Select(e models.Exhibitor) {
	copied := e
	s.selected = &copied
}

// Clear closes the overlay. Explicit close, backdrop click and escape
// all end up here.
func (s *State) Clear() {
	s.selected = nil
}

// Selected returns the record open in the overlay, or nil when closed.
func (s *State) Selected() *models.Exhibitor {
	return s.selected
}

// OverlayOpen reports whether the detail overlay is showing. The
// overlay has exactly two states: closed (nil selection) and open on
// one record.
func (s *State) OverlayOpen() bool {
	return s.selected != nil
}
