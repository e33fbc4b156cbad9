package services

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"stoper/internal/domain"
	"stoper/internal/repository"
)

var errGatewayDown = errors.New("gateway down")

// fakeToolStore is an in-memory gateway with per-operation failure
// switches, so compensation paths can be exercised without a database.
type fakeToolStore struct {
	tools map[string]domain.Tool

	failUpdateQuantity bool
	updateCalls        int
}

func newFakeToolStore(tools ...domain.Tool) *fakeToolStore {
	m := make(map[string]domain.Tool, len(tools))
	for _, t := range tools {
		m[t.ID] = t
	}
	return &fakeToolStore{tools: m}
}

func (f *fakeToolStore) List() ([]domain.Tool, error) {
	out := make([]domain.Tool, 0, len(f.tools))
	for _, t := range f.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeToolStore) FindByID(id string) (*domain.Tool, error) {
	t, ok := f.tools[id]
	if !ok {
		return nil, repository.ErrToolNotFound
	}
	return &t, nil
}

func (f *fakeToolStore) Count() (int, error) {
	return len(f.tools), nil
}

func (f *fakeToolStore) Seed(tools []domain.Tool) error {
	for _, t := range tools {
		if _, exists := f.tools[t.ID]; !exists {
			f.tools[t.ID] = t
		}
	}
	return nil
}

func (f *fakeToolStore) UpdateQuantity(id string, quantity int) (*domain.Tool, error) {
	f.updateCalls++
	if f.failUpdateQuantity {
		return nil, errGatewayDown
	}
	t, ok := f.tools[id]
	if !ok {
		return nil, repository.ErrToolNotFound
	}
	t.Quantity = quantity
	f.tools[id] = t
	return &t, nil
}

func (f *fakeToolStore) UpdateThreshold(id string, threshold int) (*domain.Tool, error) {
	t, ok := f.tools[id]
	if !ok {
		return nil, repository.ErrToolNotFound
	}
	t.MinThreshold = threshold
	f.tools[id] = t
	return &t, nil
}

type fakeWithdrawalStore struct {
	ws []domain.Withdrawal

	failInsert bool
	failDelete bool
}

func (f *fakeWithdrawalStore) List() ([]domain.Withdrawal, error) {
	out := make([]domain.Withdrawal, len(f.ws))
	copy(out, f.ws)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeWithdrawalStore) FindByID(id uuid.UUID) (*domain.Withdrawal, error) {
	for _, w := range f.ws {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, repository.ErrWithdrawalNotFound
}

func (f *fakeWithdrawalStore) Insert(w *domain.Withdrawal) error {
	if f.failInsert {
		return errGatewayDown
	}
	f.ws = append(f.ws, *w)
	return nil
}

func (f *fakeWithdrawalStore) Delete(id uuid.UUID) error {
	if f.failDelete {
		return errGatewayDown
	}
	for i, w := range f.ws {
		if w.ID == id {
			f.ws = append(f.ws[:i], f.ws[i+1:]...)
			return nil
		}
	}
	return repository.ErrWithdrawalNotFound
}

func seedToolFixture() domain.Tool {
	return domain.Tool{
		ID:           "t51-haste",
		Model:        domain.ModelT51,
		Type:         domain.TypeHaste,
		Quantity:     20,
		MinThreshold: 8,
	}
}

func validInput(quantity int) RegisterInput {
	return RegisterInput{
		ToolID:     "t51-haste",
		Quantity:   quantity,
		Reason:     string(domain.ReasonWear),
		Supervisor: "Emanuel",
		Operator:   "Carlos",
		RigTag:     "PH14",
		Team:       string(domain.TeamA),
	}
}
