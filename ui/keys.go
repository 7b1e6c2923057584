package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search      key.Binding
	Sort        key.Binding
	Order       key.Binding
	Status      key.Binding
	ClearStatus key.Binding
	Edit        key.Binding
	New         key.Binding
	Theme       key.Binding
	Quit        key.Binding

	NextField key.Binding
	PrevField key.Binding
	Cycle     key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		Order:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "asc/desc")),
		Status:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "status filter")),
		ClearStatus: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "all statuses")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		New:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Cycle:     key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "cycle status")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.Order, k.Status, k.ClearStatus, k.Edit, k.New, k.Theme, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Cycle, k.Submit, k.Cancel}
}
