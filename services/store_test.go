package services

import (
	"context"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/repository"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// memStore is an in-memory Store used by the service tests so they run
// without Postgres. WithTransaction snapshots the state and restores it
// when the callback fails, mirroring a rollback.
type memStore struct {
	partners []models.Partner
	costs    []models.Cost
	profits  []models.Profit
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) clone() *memStore {
	c := &memStore{
		partners: make([]models.Partner, len(m.partners)),
		costs:    make([]models.Cost, len(m.costs)),
		profits:  make([]models.Profit, len(m.profits)),
	}
	copy(c.partners, m.partners)
	for i, cost := range m.costs {
		c.costs[i] = copyCost(cost)
	}
	for i, profit := range m.profits {
		c.profits[i] = copyProfit(profit)
	}
	return c
}

func copyCost(cost models.Cost) models.Cost {
	cost.InvolvedPartnerIDs = append([]string(nil), cost.InvolvedPartnerIDs...)
	cost.Payments = append([]models.CostPayment(nil), cost.Payments...)
	return cost
}

func copyProfit(profit models.Profit) models.Profit {
	profit.Distributions = append([]models.ProfitDistribution(nil), profit.Distributions...)
	return profit
}

func (m *memStore) WithTransaction(ctx context.Context, fn func(repository.Store) error) error {
	snapshot := m.clone()
	if err := fn(m); err != nil {
		*m = *snapshot
		return err
	}
	return nil
}

func (m *memStore) ListPartners(ctx context.Context, accountID string) ([]models.Partner, error) {
	var out []models.Partner
	for _, p := range m.partners {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) GetPartner(ctx context.Context, accountID, id string) (*models.Partner, error) {
	for _, p := range m.partners {
		if p.AccountID == accountID && p.ID == id {
			partner := p
			return &partner, nil
		}
	}
	return nil, utils.NewNotFoundError("Partner")
}

func (m *memStore) InsertPartner(ctx context.Context, partner *models.Partner) error {
	m.partners = append(m.partners, *partner)
	return nil
}

func (m *memStore) UpdatePartner(ctx context.Context, partner *models.Partner) error {
	for i, p := range m.partners {
		if p.AccountID == partner.AccountID && p.ID == partner.ID {
			m.partners[i] = *partner
			return nil
		}
	}
	return utils.NewNotFoundError("Partner")
}

func (m *memStore) DeletePartner(ctx context.Context, accountID, id string) error {
	for i, p := range m.partners {
		if p.AccountID == accountID && p.ID == id {
			m.partners = append(m.partners[:i], m.partners[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("Partner")
}

func (m *memStore) ListCosts(ctx context.Context, accountID string) ([]models.Cost, error) {
	var out []models.Cost
	for _, cost := range m.costs {
		if cost.AccountID == accountID {
			out = append(out, copyCost(cost))
		}
	}
	return out, nil
}

func (m *memStore) GetCost(ctx context.Context, accountID, id string) (*models.Cost, error) {
	for _, cost := range m.costs {
		if cost.AccountID == accountID && cost.ID == id {
			c := copyCost(cost)
			return &c, nil
		}
	}
	return nil, utils.NewNotFoundError("Cost")
}

func (m *memStore) InsertCost(ctx context.Context, cost *models.Cost) error {
	m.costs = append(m.costs, copyCost(*cost))
	return nil
}

func (m *memStore) UpdateCost(ctx context.Context, cost *models.Cost) error {
	for i, c := range m.costs {
		if c.AccountID == cost.AccountID && c.ID == cost.ID {
			m.costs[i] = copyCost(*cost)
			return nil
		}
	}
	return utils.NewNotFoundError("Cost")
}

func (m *memStore) DeleteCost(ctx context.Context, accountID, id string) error {
	for i, c := range m.costs {
		if c.AccountID == accountID && c.ID == id {
			m.costs = append(m.costs[:i], m.costs[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("Cost")
}

func (m *memStore) ListProfits(ctx context.Context, accountID string) ([]models.Profit, error) {
	var out []models.Profit
	for _, profit := range m.profits {
		if profit.AccountID == accountID {
			out = append(out, copyProfit(profit))
		}
	}
	return out, nil
}

func (m *memStore) GetProfit(ctx context.Context, accountID, id string) (*models.Profit, error) {
	for _, profit := range m.profits {
		if profit.AccountID == accountID && profit.ID == id {
			p := copyProfit(profit)
			return &p, nil
		}
	}
	return nil, utils.NewNotFoundError("Profit")
}

func (m *memStore) InsertProfit(ctx context.Context, profit *models.Profit) error {
	m.profits = append(m.profits, copyProfit(*profit))
	return nil
}

func (m *memStore) UpdateProfit(ctx context.Context, profit *models.Profit) error {
	for i, p := range m.profits {
		if p.AccountID == profit.AccountID && p.ID == profit.ID {
			m.profits[i] = copyProfit(*profit)
			return nil
		}
	}
	return utils.NewNotFoundError("Profit")
}

func (m *memStore) DeleteProfit(ctx context.Context, accountID, id string) error {
	for i, p := range m.profits {
		if p.AccountID == accountID && p.ID == id {
			m.profits = append(m.profits[:i], m.profits[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("Profit")
}
