package model

import "fmt"

// Status is the lifecycle label of a contract. Any status may follow any other.
type Status string

// ContractStatus constants
const (
	StatusDraft      Status = "Draft"
	StatusInProgress Status = "In Progress"
	StatusFinalized  Status = "Finalized"
	StatusExpired    Status = "Expired"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusDraft, StatusInProgress, StatusFinalized, StatusExpired}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusFinalized, StatusExpired:
		return true
	}
	return false
}

// ParseStatus converts a string to a Status, rejecting free text.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidContract, s)
	}
	return st, nil
}

// UnmarshalText keeps decoded statuses inside the enumeration.
func (s *Status) UnmarshalText(text []byte) error {
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

func (s Status) String() string { return string(s) }
