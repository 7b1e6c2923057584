package service

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/AnTengye/contractdash/config"
	"github.com/AnTengye/contractdash/model"
	"golang.org/x/text/cases"
)

// ContractStore is the in-memory owner of the contract collection.
// Insertion order is preserved; readers always receive copies.
type ContractStore struct {
	mu        sync.RWMutex
	contracts []model.Contract
	index     map[string]int // id -> position in contracts
}

// NewContractStore creates a store holding the given contracts in order.
// Duplicate IDs in the seed are dropped after the first occurrence.
func NewContractStore(seed []model.Contract) *ContractStore {
	s := &ContractStore{
		contracts: make([]model.Contract, 0, len(seed)),
		index:     make(map[string]int, len(seed)),
	}
	for _, c := range seed {
		if _, exists := s.index[c.ID]; exists {
			slog.Warn("dropping duplicate seed contract", "contract_id", c.ID)
			continue
		}
		s.index[c.ID] = len(s.contracts)
		s.contracts = append(s.contracts, c)
	}
	return s
}

// InitContractStore builds the process-wide store from synthesized mock data
func InitContractStore(cfg *config.StoreConfig) *ContractStore {
	store := NewContractStore(Seed(cfg.SeedCount, cfg.RandomSeed))
	slog.Info("contract store initialized", "contracts", store.Count())
	return store
}

// List returns the full ordered collection.
func (s *ContractStore) List() []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Search returns the contracts whose client name or ID contains query,
// ignoring case. An empty query matches everything.
func (s *ContractStore) Search(query string) []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		return s.snapshot()
	}

	fold := cases.Fold()
	needle := fold.String(query)

	result := make([]model.Contract, 0)
	for _, c := range s.contracts {
		if strings.Contains(fold.String(c.ClientName), needle) ||
			strings.Contains(fold.String(c.ID), needle) {
			result = append(result, c)
		}
	}
	return result
}

// Get returns the contract with the given ID.
func (s *ContractStore) Get(id string) (model.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return model.Contract{}, false
	}
	return s.contracts[i], true
}

// Update merges patch into the contract with the given ID and returns the
// updated collection. An unknown ID leaves the collection unchanged.
func (s *ContractStore) Update(id string, patch model.ContractPatch) ([]model.Contract, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		slog.Debug("update ignored for unknown contract", "contract_id", id)
		return s.snapshot(), nil
	}

	s.contracts[i] = patch.Apply(s.contracts[i])
	slog.Info("contract updated", "contract_id", id)
	return s.snapshot(), nil
}

// Create appends a new Draft contract and returns the updated collection.
// The new contract is always the last element.
func (s *ContractStore) Create(in model.NewContract) ([]model.Contract, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contract := model.Contract{
		ID:         s.nextID(),
		ClientName: in.ClientName,
		Status:     model.StatusDraft,
		Value:      in.Value,
		StartDate:  in.StartDate,
	}
	s.index[contract.ID] = len(s.contracts)
	s.contracts = append(s.contracts, contract)

	slog.Info("contract created", "contract_id", contract.ID)
	return s.snapshot(), nil
}

// Count returns the number of contracts in the store
func (s *ContractStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contracts)
}

// nextID derives the ID from the collection size, skipping any ID already
// taken by seeded data. Must be called with lock held.
func (s *ContractStore) nextID() string {
	n := len(s.contracts) + model.IDOffset
	for {
		id := model.FormatID(n)
		if _, taken := s.index[id]; !taken {
			return id
		}
		n++
	}
}

// snapshot copies the collection. Must be called with lock held.
func (s *ContractStore) snapshot() []model.Contract {
	out := make([]model.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}
