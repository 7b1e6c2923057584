package ui

import (
	"context"
	"errors"

	"github.com/AnTengye/contractdash/model"
	"github.com/AnTengye/contractdash/service"
)

// ErrContractGone is reported when an edited contract is no longer in the collection.
var ErrContractGone = errors.New("contract no longer exists")

// Backend is the dashboard's view of the contract store. *client.Client
// satisfies it directly; StoreBackend adapts an in-process store.
type Backend interface {
	Search(ctx context.Context, query string) ([]model.Contract, error)
	Update(ctx context.Context, id string, patch model.ContractPatch) (model.Contract, error)
	Create(ctx context.Context, in model.NewContract) (model.Contract, error)
}

// StoreBackend runs dashboard operations against a local store.
type StoreBackend struct {
	Store *service.ContractStore
}

func (b StoreBackend) Search(_ context.Context, query string) ([]model.Contract, error) {
	return b.Store.Search(query), nil
}

func (b StoreBackend) Update(_ context.Context, id string, patch model.ContractPatch) (model.Contract, error) {
	contracts, err := b.Store.Update(id, patch)
	if err != nil {
		return model.Contract{}, err
	}
	for _, c := range contracts {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Contract{}, ErrContractGone
}

func (b StoreBackend) Create(_ context.Context, in model.NewContract) (model.Contract, error) {
	contracts, err := b.Store.Create(in)
	if err != nil {
		return model.Contract{}, err
	}
	return contracts[len(contracts)-1], nil
}
