package ui

import (
	"testing"

	"github.com/AnTengye/contractdash/model"
	"github.com/AnTengye/contractdash/view"
	"github.com/stretchr/testify/assert"
)

func TestUIStateStatusFilter(t *testing.T) {
	s := NewUIState(false)

	s.ToggleStatus(model.StatusExpired)
	s.ToggleStatus(model.StatusDraft)
	assert.Equal(t, []model.Status{model.StatusDraft, model.StatusExpired}, s.SelectedStatuses())

	s.ToggleStatus(model.StatusDraft)
	assert.Equal(t, []model.Status{model.StatusExpired}, s.SelectedStatuses())

	s.ClearStatusFilter()
	assert.Empty(t, s.SelectedStatuses())
}

func TestUIStateZeroValueToggle(t *testing.T) {
	var s UIState
	s.ToggleStatus(model.StatusFinalized)
	assert.Equal(t, []model.Status{model.StatusFinalized}, s.SelectedStatuses())
}

func TestUIStateViewQuery(t *testing.T) {
	s := NewUIState(true)
	s.CycleSort()
	s.Order = s.Order.Toggle()
	s.ToggleStatus(model.StatusInProgress)

	assert.Equal(t, view.Query{
		Statuses: []model.Status{model.StatusInProgress},
		SortBy:   view.SortID,
		Order:    view.Descending,
	}, s.ViewQuery())

	s.CycleSort()
	assert.Equal(t, view.SortClientName, s.SortBy)
	assert.Equal(t, view.Ascending, s.Order)
}

func TestUIStateModalOpen(t *testing.T) {
	s := NewUIState(false)
	assert.False(t, s.ModalOpen())
	s.CreateVisible = true
	assert.True(t, s.ModalOpen())
}
