package ui

import (
	"strings"

	"github.com/AnTengye/contractdash/form"
	"github.com/AnTengye/contractdash/model"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	editForm formKind = iota
	createForm
)

// formModal binds a form.Form to one text input per field.
type formModal struct {
	kind   formKind
	id     string
	form   *form.Form
	inputs []textinput.Model
	focus  int
	result form.Result
}

func newEditModal(c model.Contract) *formModal {
	return newModal(editForm, c.ID, form.EditContractFrom(c))
}

func newCreateModal() *formModal {
	return newModal(createForm, "", form.NewContract(nil))
}

func newModal(kind formKind, id string, f *form.Form) *formModal {
	m := &formModal{kind: kind, id: id, form: f}
	for _, field := range f.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		// No CharLimit: SetValue would cut a longer stored value and the
		// edit would silently rewrite it.
		ti.Width = 32
		ti.SetValue(field.Value)
		switch field.Name {
		case form.FieldStatus:
			ti.Placeholder = "↑/↓ to choose"
		case form.FieldValue:
			ti.Placeholder = "0"
		case form.FieldStartDate:
			ti.Placeholder = "YYYY-MM-DD"
		}
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[0].Focus()
	return m
}

func (m *formModal) title() string {
	if m.kind == editForm {
		return "Edit Contract " + m.id
	}
	return "Create New Contract"
}

func (m *formModal) move(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formModal) focusedField() string {
	return m.form.Fields[m.focus].Name
}

// cycleStatus steps the status input through the known statuses.
func (m *formModal) cycleStatus(delta int) {
	in := &m.inputs[m.focus]
	cur := -1
	for i, s := range model.Statuses {
		if strings.EqualFold(string(s), strings.TrimSpace(in.Value())) {
			cur = i
			break
		}
	}
	n := len(model.Statuses)
	next := (cur + delta + n) % n
	if cur < 0 && delta < 0 {
		next = n - 1
	}
	in.SetValue(string(model.Statuses[next]))
	in.CursorEnd()
}

// sync copies the input values into the form.
func (m *formModal) sync() {
	for i, field := range m.form.Fields {
		field.Value = m.inputs[i].Value()
	}
}

func (m *formModal) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// setErrors shows server-side field errors inline.
func (m *formModal) setErrors(fields map[string]string) {
	m.result = form.Result{}
	for _, field := range m.form.Fields {
		if msg, ok := fields[field.Name]; ok {
			m.result.Errors = append(m.result.Errors, form.FieldError{Field: field.Name, Message: msg})
		}
	}
}

func (m *formModal) view(s Styles) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render(m.title()))
	sb.WriteString("\n\n")
	for i, field := range m.form.Fields {
		label := s.Label.Render(field.Label)
		if i == m.focus {
			label = s.Label.Inherit(s.Accent).Render(field.Label)
		}
		sb.WriteString(label + m.inputs[i].View() + "\n")
		if msg := m.result.Message(field.Name); msg != "" {
			sb.WriteString(s.Label.Render("") + s.Error.Render(msg) + "\n")
		}
	}
	return s.Modal.Render(strings.TrimRight(sb.String(), "\n"))
}
