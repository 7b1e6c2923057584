package view

import (
	"slices"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/AnTengye/contractdash/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []model.Contract {
	return []model.Contract{
		{ID: "CONTRACT-1002", ClientName: "Globex", Status: model.StatusExpired, Value: 45000, StartDate: civil.Date{Year: 2022, Month: 3, Day: 28}},
		{ID: "CONTRACT-1000", ClientName: "Client 1", Status: model.StatusDraft, Value: 1200, StartDate: civil.Date{Year: 2022, Month: 11, Day: 5}},
		{ID: "CONTRACT-1010", ClientName: "Acme", Status: model.StatusFinalized, Value: 10, StartDate: civil.Date{Year: 2021, Month: 12, Day: 31}},
		{ID: "CONTRACT-1001", ClientName: "Client 2", Status: model.StatusDraft, Value: 800, StartDate: civil.Date{Year: 2022, Month: 3, Day: 1}},
	}
}

func ids(contracts []model.Contract) []string {
	out := make([]string, len(contracts))
	for i, c := range contracts {
		out[i] = c.ID
	}
	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		field    SortField
		order    Order
		expected []string
	}{
		{"id asc", SortID, Ascending, []string{"CONTRACT-1000", "CONTRACT-1001", "CONTRACT-1002", "CONTRACT-1010"}},
		{"id desc", SortID, Descending, []string{"CONTRACT-1010", "CONTRACT-1002", "CONTRACT-1001", "CONTRACT-1000"}},
		{"client asc", SortClientName, Ascending, []string{"CONTRACT-1010", "CONTRACT-1000", "CONTRACT-1001", "CONTRACT-1002"}},
		{"value asc", SortValue, Ascending, []string{"CONTRACT-1010", "CONTRACT-1001", "CONTRACT-1000", "CONTRACT-1002"}},
		{"value desc", SortValue, Descending, []string{"CONTRACT-1002", "CONTRACT-1000", "CONTRACT-1001", "CONTRACT-1010"}},
		{"start date asc", SortStartDate, Ascending, []string{"CONTRACT-1010", "CONTRACT-1001", "CONTRACT-1002", "CONTRACT-1000"}},
		{"start date desc", SortStartDate, Descending, []string{"CONTRACT-1000", "CONTRACT-1002", "CONTRACT-1001", "CONTRACT-1010"}},
		{"unsorted keeps order", SortNone, Ascending, []string{"CONTRACT-1002", "CONTRACT-1000", "CONTRACT-1010", "CONTRACT-1001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Sort(fixture(), tt.field, tt.order)))
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := fixture()
	_ = Sort(in, SortValue, Ascending)
	assert.Equal(t, fixture(), in)
}

func TestSortValueReversal(t *testing.T) {
	asc := ids(Sort(fixture(), SortValue, Ascending))
	desc := ids(Sort(fixture(), SortValue, Descending))

	slices.Reverse(desc)
	assert.Equal(t, asc, desc)
}

func TestSortStable(t *testing.T) {
	in := []model.Contract{
		{ID: "a", Value: 5},
		{ID: "b", Value: 1},
		{ID: "c", Value: 5},
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids(Sort(in, SortValue, Ascending)))
	assert.Equal(t, []string{"a", "c", "b"}, ids(Sort(in, SortValue, Descending)))
}

func TestFilterByStatus(t *testing.T) {
	assert.Equal(t, []string{"CONTRACT-1000", "CONTRACT-1001"}, ids(FilterByStatus(fixture(), model.StatusDraft)))
	assert.Equal(t,
		[]string{"CONTRACT-1002", "CONTRACT-1010"},
		ids(FilterByStatus(fixture(), model.StatusExpired, model.StatusFinalized)))
	assert.Empty(t, FilterByStatus(fixture(), model.StatusInProgress))
	assert.Len(t, FilterByStatus(fixture()), 4)
}

func TestQueryApply(t *testing.T) {
	q := Query{
		Statuses: []model.Status{model.StatusDraft, model.StatusFinalized},
		SortBy:   SortValue,
		Order:    Descending,
	}
	assert.Equal(t, []string{"CONTRACT-1000", "CONTRACT-1001", "CONTRACT-1010"}, ids(q.Apply(fixture())))
}

func TestParseSortField(t *testing.T) {
	for _, f := range SortFields {
		got, err := ParseSortField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, SortNone, got)

	_, err = ParseSortField("status")
	assert.ErrorIs(t, err, ErrUnknownSortField)
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, Ascending, o)

	o, err = ParseOrder("desc")
	require.NoError(t, err)
	assert.Equal(t, Descending, o)

	_, err = ParseOrder("sideways")
	assert.ErrorIs(t, err, ErrUnknownOrder)

	assert.Equal(t, Descending, Ascending.Toggle())
	assert.Equal(t, Ascending, Descending.Toggle())
}

func TestSortFieldNext(t *testing.T) {
	f := SortNone
	var seen []SortField
	for i := 0; i < 5; i++ {
		f = f.Next()
		seen = append(seen, f)
	}
	assert.Equal(t, []SortField{SortID, SortClientName, SortValue, SortStartDate, SortNone}, seen)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "$0", FormatValue(0))
	assert.Equal(t, "$999", FormatValue(999))
	assert.Equal(t, "$45,000", FormatValue(45000))
	assert.Equal(t, "$1,234,567", FormatValue(1234567))
}
