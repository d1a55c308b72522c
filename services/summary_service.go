package services

import (
	"context"
	"time"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/repository"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// SummaryService aggregates an account's bookkeeping for the dashboard:
// cost/profit totals, per-category breakdowns and partner balances.
type SummaryService struct {
	store repository.Store
}

// NewSummaryService creates a new summary service
func NewSummaryService(store repository.Store) *SummaryService {
	return &SummaryService{store: store}
}

// GetSummary computes the dashboard aggregates. When from/to are non-nil
// only costs and profits dated inside the range (inclusive) are counted;
// partner balances always reflect the full history.
func (s *SummaryService) GetSummary(ctx context.Context, accountID string, from, to *time.Time) (*models.Summary, error) {
	partners, err := s.store.ListPartners(ctx, accountID)
	if err != nil {
		return nil, err
	}
	costs, err := s.store.ListCosts(ctx, accountID)
	if err != nil {
		return nil, err
	}
	profits, err := s.store.ListProfits(ctx, accountID)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		CostsByCategory:   make(map[string]float64),
		ProfitsByCategory: make(map[string]float64),
		PartnerBalances:   make([]models.PartnerBalance, 0, len(partners)),
	}

	for _, cost := range costs {
		if !inRange(cost.Date, from, to) {
			continue
		}
		summary.TotalCosts += cost.Value
		summary.CostsByCategory[cost.Category] += cost.Value
		if cost.IsRecurrent {
			summary.RecurrentCosts += cost.Value
		}
	}
	for _, profit := range profits {
		if !inRange(profit.Date, from, to) {
			continue
		}
		summary.TotalProfits += profit.Value
		summary.ProfitsByCategory[profit.Category] += profit.Value
	}

	summary.TotalCosts = utils.Round(summary.TotalCosts)
	summary.TotalProfits = utils.Round(summary.TotalProfits)
	summary.RecurrentCosts = utils.Round(summary.RecurrentCosts)
	summary.NetResult = utils.Round(summary.TotalProfits - summary.TotalCosts)
	for category, total := range summary.CostsByCategory {
		summary.CostsByCategory[category] = utils.Round(total)
	}
	for category, total := range summary.ProfitsByCategory {
		summary.ProfitsByCategory[category] = utils.Round(total)
	}

	for _, partner := range partners {
		summary.PartnerBalances = append(summary.PartnerBalances, models.PartnerBalance{
			PartnerID:     partner.ID,
			Name:          partner.Name,
			Participation: partner.Participation,
			Balance:       partner.Balance,
		})
	}

	return summary, nil
}

func inRange(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && date.After(*to) {
		return false
	}
	return true
}
