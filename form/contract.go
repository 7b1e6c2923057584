package form

import (
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/AnTengye/contractdash/model"
)

// Field names shared by the contract forms, the HTTP payloads and the dashboard.
const (
	FieldClientName = "client_name"
	FieldStatus     = "status"
	FieldValue      = "value"
	FieldStartDate  = "start_date"
)

// User-facing validation messages.
const (
	MsgClientNameRequired = "Please input client name!"
	MsgStatusRequired     = "Please select status!"
	MsgStatusInvalid      = "Status must be one of Draft, In Progress, Finalized, Expired!"
	MsgValueRequired      = "Please input contract value!"
	MsgValuePositive      = "Value must be positive!"
	MsgStartDateRequired  = "Please select start date!"
	MsgStartDateInvalid   = "Start date must be formatted YYYY-MM-DD!"
)

func statusNames() []string {
	names := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		names[i] = string(s)
	}
	return names
}

// EditContract builds the edit form from raw values keyed by field name.
func EditContract(values map[string]string) *Form {
	return &Form{Fields: []*Field{
		{
			Name:  FieldClientName,
			Label: "Client Name",
			Value: values[FieldClientName],
			Rules: []Rule{Required(MsgClientNameRequired)},
		},
		{
			Name:  FieldStatus,
			Label: "Status",
			Value: values[FieldStatus],
			Rules: []Rule{Required(MsgStatusRequired), OneOf(statusNames(), MsgStatusInvalid)},
		},
		{
			Name:  FieldValue,
			Label: "Contract Value",
			Value: values[FieldValue],
			Rules: []Rule{Required(MsgValueRequired), NonNegativeNumber(MsgValuePositive)},
		},
	}}
}

// EditContractFrom pre-populates the edit form with an existing record.
func EditContractFrom(c model.Contract) *Form {
	return EditContract(ValuesOf(c))
}

// NewContract builds the creation form from raw values keyed by field name.
func NewContract(values map[string]string) *Form {
	return &Form{Fields: []*Field{
		{
			Name:  FieldClientName,
			Label: "Client Name",
			Value: values[FieldClientName],
			Rules: []Rule{Required(MsgClientNameRequired)},
		},
		{
			Name:  FieldValue,
			Label: "Contract Value",
			Value: values[FieldValue],
			Rules: []Rule{Required(MsgValueRequired), NonNegativeNumber(MsgValuePositive)},
		},
		{
			Name:  FieldStartDate,
			Label: "Start Date",
			Value: values[FieldStartDate],
			Rules: []Rule{Required(MsgStartDateRequired), Date(MsgStartDateInvalid)},
		},
	}}
}

// ValuesOf renders a contract as raw form values.
func ValuesOf(c model.Contract) map[string]string {
	return map[string]string{
		FieldClientName: c.ClientName,
		FieldStatus:     string(c.Status),
		FieldValue:      strconv.FormatFloat(c.Value, 'f', -1, 64),
		FieldStartDate:  c.StartDate.String(),
	}
}

// Patch validates the edit form and converts it into a patch covering every
// field the form holds.
func (f *Form) Patch() (model.ContractPatch, Result) {
	res := f.Validate()
	if !res.Valid() {
		return model.ContractPatch{}, res
	}

	var patch model.ContractPatch
	if f.Field(FieldClientName) != nil {
		name := f.Value(FieldClientName)
		patch.ClientName = &name
	}
	if f.Field(FieldStatus) != nil {
		status := model.Status(f.Value(FieldStatus))
		patch.Status = &status
	}
	if f.Field(FieldValue) != nil {
		v, _ := parseNumber(f.Value(FieldValue))
		patch.Value = &v
	}
	if f.Field(FieldStartDate) != nil {
		d, _ := civil.ParseDate(f.Value(FieldStartDate))
		patch.StartDate = &d
	}
	return patch, res
}

// Contract validates the creation form and converts it into store input.
func (f *Form) Contract() (model.NewContract, Result) {
	res := f.Validate()
	if !res.Valid() {
		return model.NewContract{}, res
	}

	v, _ := parseNumber(f.Value(FieldValue))
	d, _ := civil.ParseDate(f.Value(FieldStartDate))
	return model.NewContract{
		ClientName: f.Value(FieldClientName),
		Value:      v,
		StartDate:  d,
	}, res
}
