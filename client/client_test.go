package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/AnTengye/contractdash/config"
	"github.com/AnTengye/contractdash/form"
	"github.com/AnTengye/contractdash/model"
	"github.com/AnTengye/contractdash/router"
	"github.com/AnTengye/contractdash/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Client, *service.ContractStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := service.NewContractStore([]model.Contract{
		{ID: "CONTRACT-1000", ClientName: "Client 1", Status: model.StatusDraft, Value: 1200, StartDate: civil.Date{Year: 2022, Month: 1, Day: 5}},
		{ID: "CONTRACT-1001", ClientName: "Globex", Status: model.StatusExpired, Value: 300, StartDate: civil.Date{Year: 2022, Month: 8, Day: 17}},
	})
	srv := httptest.NewServer(router.New(config.Default(), store))
	t.Cleanup(srv.Close)

	return New(srv.URL), store
}

func TestClientListAndSearch(t *testing.T) {
	c, _ := newTestServer(t)
	ctx := context.Background()

	all, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, civil.Date{Year: 2022, Month: 8, Day: 17}, all[1].StartDate)

	found, err := c.Search(ctx, "GLOBEX")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "CONTRACT-1001", found[0].ID)
}

func TestClientGet(t *testing.T) {
	c, _ := newTestServer(t)

	got, err := c.Get(context.Background(), "CONTRACT-1000")
	require.NoError(t, err)
	assert.Equal(t, "Client 1", got.ClientName)

	_, err = c.Get(context.Background(), "CONTRACT-4040")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClientCreate(t *testing.T) {
	c, store := newTestServer(t)

	created, err := c.Create(context.Background(), model.NewContract{
		ClientName: "Acme",
		Value:      5000,
		StartDate:  civil.Date{Year: 2024, Month: 1, Day: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "CONTRACT-1002", created.ID)
	assert.Equal(t, model.StatusDraft, created.Status)
	assert.Equal(t, 3, store.Count())
}

func TestClientCreateValidationError(t *testing.T) {
	c, store := newTestServer(t)

	_, err := c.Create(context.Background(), model.NewContract{
		ClientName: "Acme",
		Value:      -10,
		StartDate:  civil.Date{Year: 2024, Month: 1, Day: 1},
	})

	var verr *form.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, form.MsgValuePositive, verr.Fields[form.FieldValue])
	assert.Equal(t, 2, store.Count())
}

func TestClientUpdate(t *testing.T) {
	c, store := newTestServer(t)

	finalized := model.StatusFinalized
	updated, err := c.Update(context.Background(), "CONTRACT-1000", model.ContractPatch{Status: &finalized})
	require.NoError(t, err)

	assert.Equal(t, model.StatusFinalized, updated.Status)
	assert.Equal(t, "Client 1", updated.ClientName)
	assert.Equal(t, 1200.0, updated.Value)

	stored, _ := store.Get("CONTRACT-1000")
	assert.Equal(t, updated, stored)
}

func TestClientUpdateUnknown(t *testing.T) {
	c, _ := newTestServer(t)

	draft := model.StatusDraft
	_, err := c.Update(context.Background(), "CONTRACT-4040", model.ContractPatch{Status: &draft})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
