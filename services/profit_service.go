package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/repository"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// ProfitService is the distribution engine for income. A profit is
// distributed across all current partners weighted by participation;
// edit and delete reverse the stored distributions before applying new
// ones.
type ProfitService struct {
	store repository.Store
}

// NewProfitService creates a new profit service
func NewProfitService(store repository.Store) *ProfitService {
	return &ProfitService{store: store}
}

// ListProfits returns all profits for an account
func (s *ProfitService) ListProfits(ctx context.Context, accountID string) ([]models.Profit, error) {
	return s.store.ListProfits(ctx, accountID)
}

// GetProfit returns a single profit
func (s *ProfitService) GetProfit(ctx context.Context, accountID, id string) (*models.Profit, error) {
	return s.store.GetProfit(ctx, accountID, id)
}

// AddProfit records a profit and credits every partner with their
// participation-weighted share.
func (s *ProfitService) AddProfit(ctx context.Context, accountID string, req *models.AddProfitRequest) (*models.Profit, error) {
	if err := validateProfitInput(req.Category, req.Source, req.Value); err != nil {
		return nil, err
	}

	var created *models.Profit
	err := s.store.WithTransaction(ctx, func(tx repository.Store) error {
		partners, err := tx.ListPartners(ctx, accountID)
		if err != nil {
			return err
		}
		if len(partners) == 0 {
			return utils.NewNoPartnersError()
		}

		distributions := buildDistributions(partners, req.Value)
		profit := &models.Profit{
			ID:            uuid.NewString(),
			AccountID:     accountID,
			Date:          req.Date,
			Value:         req.Value,
			Source:        req.Source,
			Category:      req.Category,
			Distributions: distributions,
			CreatedAt:     time.Now().UTC(),
		}
		if err := tx.InsertProfit(ctx, profit); err != nil {
			return err
		}
		for _, dist := range distributions {
			if err := applyBalanceDelta(ctx, tx, accountID, dist.PartnerID, dist.Amount); err != nil {
				return err
			}
		}
		created = profit
		return nil
	})
	return created, err
}

// EditProfit reverses the stored distributions, recomputes against the
// partners that exist now and applies the new distributions.
func (s *ProfitService) EditProfit(ctx context.Context, accountID, id string, req *models.EditProfitRequest) (*models.Profit, error) {
	if err := validateProfitInput(req.Category, req.Source, req.Value); err != nil {
		return nil, err
	}

	var updated *models.Profit
	err := s.store.WithTransaction(ctx, func(tx repository.Store) error {
		old, err := tx.GetProfit(ctx, accountID, id)
		if err != nil {
			return err
		}
		partners, err := tx.ListPartners(ctx, accountID)
		if err != nil {
			return err
		}
		if len(partners) == 0 {
			return utils.NewNoPartnersError()
		}

		for _, dist := range old.Distributions {
			if err := applyBalanceDelta(ctx, tx, accountID, dist.PartnerID, -dist.Amount); err != nil {
				return err
			}
		}

		distributions := buildDistributions(partners, req.Value)
		profit := &models.Profit{
			ID:            old.ID,
			AccountID:     old.AccountID,
			Date:          req.Date,
			Value:         req.Value,
			Source:        req.Source,
			Category:      req.Category,
			Distributions: distributions,
			CreatedAt:     old.CreatedAt,
		}
		for _, dist := range distributions {
			if err := applyBalanceDelta(ctx, tx, accountID, dist.PartnerID, dist.Amount); err != nil {
				return err
			}
		}
		if err := tx.UpdateProfit(ctx, profit); err != nil {
			return err
		}
		updated = profit
		return nil
	})
	return updated, err
}

// DeleteProfit reverses all distributions and removes the record.
func (s *ProfitService) DeleteProfit(ctx context.Context, accountID, id string) error {
	return s.store.WithTransaction(ctx, func(tx repository.Store) error {
		profit, err := tx.GetProfit(ctx, accountID, id)
		if err != nil {
			return err
		}
		for _, dist := range profit.Distributions {
			if err := applyBalanceDelta(ctx, tx, accountID, dist.PartnerID, -dist.Amount); err != nil {
				return err
			}
		}
		return tx.DeleteProfit(ctx, accountID, id)
	})
}

func validateProfitInput(category, source string, value float64) error {
	if err := utils.ValidateProfitCategory(category); err != nil {
		return err
	}
	if err := utils.ValidateRequired(source, "source"); err != nil {
		return err
	}
	return utils.ValidatePositive(value, "value")
}

// buildDistributions computes one share per current partner. When total
// participation is under 100% the distributed total is proportionally
// smaller; the remainder stays unassigned.
func buildDistributions(partners []models.Partner, value float64) []models.ProfitDistribution {
	distributions := make([]models.ProfitDistribution, 0, len(partners))
	for _, partner := range partners {
		distributions = append(distributions, models.ProfitDistribution{
			PartnerID: partner.ID,
			Amount:    utils.ParticipationShare(value, partner.Participation),
		})
	}
	return distributions
}
