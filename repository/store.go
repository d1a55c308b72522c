// repository/store.go
package repository

import (
	"context"
	"fmt"

	"github.com/sociobooks/sociobooks-backend/models"
)

// Store is the persistence gateway the settlement services operate
// against. Every read and write is scoped to an account. WithTransaction
// hands the callback a Store bound to a single transaction so that a
// multi-step balance adjustment either fully commits or fully rolls back.
type Store interface {
	WithTransaction(ctx context.Context, fn func(Store) error) error

	ListPartners(ctx context.Context, accountID string) ([]models.Partner, error)
	GetPartner(ctx context.Context, accountID, id string) (*models.Partner, error)
	InsertPartner(ctx context.Context, partner *models.Partner) error
	UpdatePartner(ctx context.Context, partner *models.Partner) error
	DeletePartner(ctx context.Context, accountID, id string) error

	ListCosts(ctx context.Context, accountID string) ([]models.Cost, error)
	GetCost(ctx context.Context, accountID, id string) (*models.Cost, error)
	InsertCost(ctx context.Context, cost *models.Cost) error
	UpdateCost(ctx context.Context, cost *models.Cost) error
	DeleteCost(ctx context.Context, accountID, id string) error

	ListProfits(ctx context.Context, accountID string) ([]models.Profit, error)
	GetProfit(ctx context.Context, accountID, id string) (*models.Profit, error)
	InsertProfit(ctx context.Context, profit *models.Profit) error
	UpdateProfit(ctx context.Context, profit *models.Profit) error
	DeleteProfit(ctx context.Context, accountID, id string) error
}

// SQLStore implements Store on Postgres.
type SQLStore struct {
	partners *PartnerRepository
	costs    *CostRepository
	profits  *ProfitRepository
	inTx     bool
}

// NewSQLStore creates a Store over the shared database connection.
func NewSQLStore() *SQLStore {
	return newSQLStore(GetDB())
}

func newSQLStore(q Querier) *SQLStore {
	return &SQLStore{
		partners: NewPartnerRepository(q),
		costs:    NewCostRepository(q),
		profits:  NewProfitRepository(q),
	}
}

// WithTransaction runs fn against a transaction-bound Store. Nested calls
// reuse the surrounding transaction.
func (s *SQLStore) WithTransaction(ctx context.Context, fn func(Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	txStore := newSQLStore(tx)
	txStore.inTx = true
	if err := fn(txStore); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) ListPartners(ctx context.Context, accountID string) ([]models.Partner, error) {
	return s.partners.ListPartners(ctx, accountID)
}

func (s *SQLStore) GetPartner(ctx context.Context, accountID, id string) (*models.Partner, error) {
	return s.partners.GetPartner(ctx, accountID, id)
}

func (s *SQLStore) InsertPartner(ctx context.Context, partner *models.Partner) error {
	return s.partners.InsertPartner(ctx, partner)
}

func (s *SQLStore) UpdatePartner(ctx context.Context, partner *models.Partner) error {
	return s.partners.UpdatePartner(ctx, partner)
}

func (s *SQLStore) DeletePartner(ctx context.Context, accountID, id string) error {
	return s.partners.DeletePartner(ctx, accountID, id)
}

func (s *SQLStore) ListCosts(ctx context.Context, accountID string) ([]models.Cost, error) {
	return s.costs.ListCosts(ctx, accountID)
}

func (s *SQLStore) GetCost(ctx context.Context, accountID, id string) (*models.Cost, error) {
	return s.costs.GetCost(ctx, accountID, id)
}

func (s *SQLStore) InsertCost(ctx context.Context, cost *models.Cost) error {
	return s.costs.InsertCost(ctx, cost)
}

func (s *SQLStore) UpdateCost(ctx context.Context, cost *models.Cost) error {
	return s.costs.UpdateCost(ctx, cost)
}

func (s *SQLStore) DeleteCost(ctx context.Context, accountID, id string) error {
	return s.costs.DeleteCost(ctx, accountID, id)
}

func (s *SQLStore) ListProfits(ctx context.Context, accountID string) ([]models.Profit, error) {
	return s.profits.ListProfits(ctx, accountID)
}

func (s *SQLStore) GetProfit(ctx context.Context, accountID, id string) (*models.Profit, error) {
	return s.profits.GetProfit(ctx, accountID, id)
}

func (s *SQLStore) InsertProfit(ctx context.Context, profit *models.Profit) error {
	return s.profits.InsertProfit(ctx, profit)
}

func (s *SQLStore) UpdateProfit(ctx context.Context, profit *models.Profit) error {
	return s.profits.UpdateProfit(ctx, profit)
}

func (s *SQLStore) DeleteProfit(ctx context.Context, accountID, id string) error {
	return s.profits.DeleteProfit(ctx, accountID, id)
}
