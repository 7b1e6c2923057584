package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AnTengye/contractdash/form"
	"github.com/AnTengye/contractdash/model"
	"github.com/AnTengye/contractdash/pkg/logger"
	"github.com/AnTengye/contractdash/service"
	"github.com/AnTengye/contractdash/view"
	"github.com/gin-gonic/gin"
)

// Confirmation notices returned with successful mutations
const (
	MsgContractUpdated = "Contract updated successfully"
	MsgContractCreated = "New contract created successfully"
)

type ContractHandler struct {
	store *service.ContractStore
}

func NewContractHandler(store *service.ContractStore) *ContractHandler {
	return &ContractHandler{store: store}
}

// ListResponse is the body of GET /api/contracts
type ListResponse struct {
	Contracts []model.Contract `json:"contracts"`
	Total     int              `json:"total"`
}

// MutationResponse is the body of successful create and update calls
type MutationResponse struct {
	Contract model.Contract `json:"contract"`
	Message  string         `json:"message"`
}

// ValidationResponse is the body of a 400 caused by form validation
type ValidationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// List returns the contracts matching ?q=, filtered by ?status= and sorted by ?sort=&order=
func (h *ContractHandler) List(c *gin.Context) {
	field, err := view.ParseSortField(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := view.ParseOrder(c.Query("order"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var statuses []model.Status
	for _, raw := range c.QueryArray("status") {
		st, err := model.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		statuses = append(statuses, st)
	}

	contracts := h.store.Search(c.Query("q"))
	contracts = view.Query{Statuses: statuses, SortBy: field, Order: order}.Apply(contracts)

	c.JSON(http.StatusOK, ListResponse{Contracts: contracts, Total: len(contracts)})
}

// Get returns a single contract
func (h *ContractHandler) Get(c *gin.Context) {
	contract, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// Create validates the creation form and appends a new Draft contract
func (h *ContractHandler) Create(c *gin.Context) {
	values, ok := bindFormValues(c)
	if !ok {
		return
	}

	input, res := form.NewContract(values).Contract()
	if !res.Valid() {
		respondValidation(c, res)
		return
	}

	contracts, err := h.store.Create(input)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	created := contracts[len(contracts)-1]
	logger.Info(logger.WithContractID(c.Request.Context(), created.ID), "contract created via api")

	c.JSON(http.StatusCreated, MutationResponse{Contract: created, Message: MsgContractCreated})
}

// Update validates the edit form and merges it into the contract
func (h *ContractHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	values, ok := bindFormValues(c)
	if !ok {
		return
	}

	patch, res := form.EditContract(values).Patch()
	if !res.Valid() {
		respondValidation(c, res)
		return
	}

	contracts, err := h.store.Update(id, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	updated, found := findContract(contracts, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}
	logger.Info(logger.WithContractID(c.Request.Context(), id), "contract updated via api")

	c.JSON(http.StatusOK, MutationResponse{Contract: updated, Message: MsgContractUpdated})
}

// Statuses returns the selectable statuses in display order
func (h *ContractHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": model.Statuses})
}

// bindFormValues decodes a flat JSON object into raw form values.
// Numbers and strings are both accepted, mirroring an HTML form.
func bindFormValues(c *gin.Context) (map[string]string, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return nil, false
	}

	values := make(map[string]string, len(body))
	for k, v := range body {
		switch x := v.(type) {
		case nil:
			values[k] = ""
		case string:
			values[k] = x
		case float64:
			values[k] = strconv.FormatFloat(x, 'f', -1, 64)
		case bool:
			values[k] = strconv.FormatBool(x)
		default:
			values[k] = fmt.Sprint(x)
		}
	}
	return values, true
}

func findContract(contracts []model.Contract, id string) (model.Contract, bool) {
	for _, contract := range contracts {
		if contract.ID == id {
			return contract, true
		}
	}
	return model.Contract{}, false
}

func respondValidation(c *gin.Context, res form.Result) {
	var verr *form.ValidationError
	errors.As(res.Err(), &verr)
	c.JSON(http.StatusBadRequest, ValidationResponse{Error: "validation failed", Fields: verr.Fields})
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrInvalidContract) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error(c.Request.Context(), "contract store failure", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
