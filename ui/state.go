package ui

import (
	"github.com/AnTengye/contractdash/model"
	"github.com/AnTengye/contractdash/view"
)

// UIState holds the presentation flags of the dashboard. Each field is set
// independently; none of them touches contract data.
type UIState struct {
	DarkMode      bool
	EditVisible   bool
	CreateVisible bool
	SearchFocused bool

	Query        string
	SortBy       view.SortField
	Order        view.Order
	StatusFilter map[model.Status]bool

	Notice    string
	noticeSeq int
	Err       string
}

// NewUIState returns the initial state.
func NewUIState(dark bool) UIState {
	return UIState{
		DarkMode:     dark,
		Order:        view.Ascending,
		StatusFilter: make(map[model.Status]bool),
	}
}

// ModalOpen reports whether a form is on screen.
func (s UIState) ModalOpen() bool { return s.EditVisible || s.CreateVisible }

// ToggleStatus adds or removes st from the status filter.
func (s *UIState) ToggleStatus(st model.Status) {
	if s.StatusFilter == nil {
		s.StatusFilter = make(map[model.Status]bool)
	}
	if s.StatusFilter[st] {
		delete(s.StatusFilter, st)
		return
	}
	s.StatusFilter[st] = true
}

// ClearStatusFilter removes every selected status.
func (s *UIState) ClearStatusFilter() {
	s.StatusFilter = make(map[model.Status]bool)
}

// SelectedStatuses returns the filter in display order.
func (s UIState) SelectedStatuses() []model.Status {
	var out []model.Status
	for _, st := range model.Statuses {
		if s.StatusFilter[st] {
			out = append(out, st)
		}
	}
	return out
}

// ViewQuery is the filter and sort applied to the current search result.
func (s UIState) ViewQuery() view.Query {
	return view.Query{Statuses: s.SelectedStatuses(), SortBy: s.SortBy, Order: s.Order}
}

// CycleSort moves to the next sort column, resetting to ascending.
func (s *UIState) CycleSort() {
	s.SortBy = s.SortBy.Next()
	s.Order = view.Ascending
}

// SetNotice shows msg and returns a token identifying this notice, so a
// delayed clear does not wipe a newer one.
func (s *UIState) SetNotice(msg string) int {
	s.noticeSeq++
	s.Notice = msg
	s.Err = ""
	return s.noticeSeq
}

// ClearNotice hides the notice if seq is still the latest.
func (s *UIState) ClearNotice(seq int) {
	if seq == s.noticeSeq {
		s.Notice = ""
	}
}
