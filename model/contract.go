package model

import (
	"errors"
	"fmt"
	"math"

	"cloud.google.com/go/civil"
)

// IDPrefix is prepended to the sequence number of every contract ID.
const IDPrefix = "CONTRACT-"

// IDOffset is added to the collection size when a new ID is assigned.
const IDOffset = 1000

// ErrInvalidContract is returned when a contract would violate a field constraint.
var ErrInvalidContract = errors.New("invalid contract")

// Contract represents a single contract record
type Contract struct {
	ID         string     `json:"id"`
	ClientName string     `json:"client_name"`
	Status     Status     `json:"status"`
	Value      float64    `json:"value"`
	StartDate  civil.Date `json:"start_date"`
}

// NewContract holds the fields accepted when creating a contract.
// ID and Status are always assigned by the store.
type NewContract struct {
	ClientName string     `json:"client_name"`
	Value      float64    `json:"value"`
	StartDate  civil.Date `json:"start_date"`
}

// ContractPatch is a partial update. Nil fields are left unchanged.
type ContractPatch struct {
	ClientName *string     `json:"client_name,omitempty"`
	Status     *Status     `json:"status,omitempty"`
	Value      *float64    `json:"value,omitempty"`
	StartDate  *civil.Date `json:"start_date,omitempty"`
}

// FormatID builds a contract ID from its sequence number.
func FormatID(n int) string {
	return fmt.Sprintf("%s%d", IDPrefix, n)
}

// Validate checks the creation input.
func (n NewContract) Validate() error {
	if n.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidContract)
	}
	if err := validateValue(n.Value); err != nil {
		return err
	}
	if n.StartDate.IsZero() || !n.StartDate.IsValid() {
		return fmt.Errorf("%w: start date is required", ErrInvalidContract)
	}
	return nil
}

// Validate checks every field present in the patch.
func (p ContractPatch) Validate() error {
	if p.ClientName != nil && *p.ClientName == "" {
		return fmt.Errorf("%w: client name must not be empty", ErrInvalidContract)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidContract, *p.Status)
	}
	if p.Value != nil {
		if err := validateValue(*p.Value); err != nil {
			return err
		}
	}
	if p.StartDate != nil && !p.StartDate.IsValid() {
		return fmt.Errorf("%w: invalid start date", ErrInvalidContract)
	}
	return nil
}

// Apply returns a copy of c with the patch fields merged in.
func (p ContractPatch) Apply(c Contract) Contract {
	if p.ClientName != nil {
		c.ClientName = *p.ClientName
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Value != nil {
		c.Value = *p.Value
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	return c
}

// IsEmpty reports whether the patch changes nothing.
func (p ContractPatch) IsEmpty() bool {
	return p.ClientName == nil && p.Status == nil && p.Value == nil && p.StartDate == nil
}

func validateValue(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: value must not be negative", ErrInvalidContract)
	}
	return nil
}
