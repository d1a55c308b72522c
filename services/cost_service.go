package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/repository"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// CostService is the settlement engine for shared costs. A cost is
// fronted by one partner (the payer) and split equally among the involved
// partners; each operation applies or reverses the corresponding balance
// deltas inside a single transaction.
type CostService struct {
	store repository.Store
}

// NewCostService creates a new cost service
func NewCostService(store repository.Store) *CostService {
	return &CostService{store: store}
}

// ListCosts returns all costs for an account
func (s *CostService) ListCosts(ctx context.Context, accountID string) ([]models.Cost, error) {
	return s.store.ListCosts(ctx, accountID)
}

// GetCost returns a single cost
func (s *CostService) GetCost(ctx context.Context, accountID, id string) (*models.Cost, error) {
	return s.store.GetCost(ctx, accountID, id)
}

// AddCost records a cost, splits its value equally among the involved
// partners (all unpaid) and credits the payer's balance with the full
// fronted amount.
func (s *CostService) AddCost(ctx context.Context, accountID string, req *models.AddCostRequest) (*models.Cost, error) {
	if err := validateCostInput(req.Category, req.Value, req.InvolvedPartnerIDs); err != nil {
		return nil, err
	}

	var created *models.Cost
	err := s.store.WithTransaction(ctx, func(tx repository.Store) error {
		partners, err := tx.ListPartners(ctx, accountID)
		if err != nil {
			return err
		}
		if len(partners) == 0 {
			return utils.NewNoPartnersError()
		}

		payments, err := buildPayments(partners, req.InvolvedPartnerIDs, req.Value)
		if err != nil {
			return err
		}

		cost := &models.Cost{
			ID:                 uuid.NewString(),
			AccountID:          accountID,
			Category:           req.Category,
			Description:        req.Description,
			Value:              req.Value,
			Date:               req.Date,
			PayerID:            req.PayerID,
			IsRecurrent:        req.IsRecurrent,
			InvolvedPartnerIDs: req.InvolvedPartnerIDs,
			Payments:           payments,
			CreatedAt:          time.Now().UTC(),
		}
		if err := tx.InsertCost(ctx, cost); err != nil {
			return err
		}

		// The payer fronted the full amount; the group owes it to them.
		if err := applyBalanceDelta(ctx, tx, accountID, req.PayerID, req.Value); err != nil {
			return err
		}
		created = cost
		return nil
	})
	return created, err
}

// TogglePayment flips one involved partner's paid flag. Marking a share
// paid settles it: the partner's balance drops by the share and the
// payer's receivable shrinks by the same amount. Unmarking reverses both
// deltas. Returns the updated cost and the new paid state.
func (s *CostService) TogglePayment(ctx context.Context, accountID, costID, partnerID string) (*models.Cost, bool, error) {
	var updated *models.Cost
	var nowPaid bool
	err := s.store.WithTransaction(ctx, func(tx repository.Store) error {
		cost, err := tx.GetCost(ctx, accountID, costID)
		if err != nil {
			return err
		}

		idx := -1
		for i := range cost.Payments {
			if cost.Payments[i].PartnerID == partnerID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return utils.NewNotFoundError("Payment")
		}

		payment := &cost.Payments[idx]
		payment.Paid = !payment.Paid
		nowPaid = payment.Paid

		delta := payment.Amount
		if payment.Paid {
			delta = -payment.Amount
		}
		if err := applyBalanceDelta(ctx, tx, accountID, payment.PartnerID, delta); err != nil {
			return err
		}
		if err := applyBalanceDelta(ctx, tx, accountID, cost.PayerID, delta); err != nil {
			return err
		}

		if err := tx.UpdateCost(ctx, cost); err != nil {
			return err
		}
		updated = cost
		return nil
	})
	return updated, nowPaid, err
}

// EditCost fully reverses the stored cost's financial effect, recomputes
// the equal split for the new field values and applies the new effect.
// All payments reset to unpaid; the user re-marks them after an edit.
func (s *CostService) EditCost(ctx context.Context, accountID, id string, req *models.EditCostRequest) (*models.Cost, error) {
	if err := validateCostInput(req.Category, req.Value, req.InvolvedPartnerIDs); err != nil {
		return nil, err
	}

	var updated *models.Cost
	err := s.store.WithTransaction(ctx, func(tx repository.Store) error {
		old, err := tx.GetCost(ctx, accountID, id)
		if err != nil {
			return err
		}
		partners, err := tx.ListPartners(ctx, accountID)
		if err != nil {
			return err
		}

		// Validate the new version before touching any balance.
		payments, err := buildPayments(partners, req.InvolvedPartnerIDs, req.Value)
		if err != nil {
			return err
		}

		// Revert the old version: the payer's fronted amount, then every
		// settled share.
		if err := applyBalanceDelta(ctx, tx, accountID, old.PayerID, -old.Value); err != nil {
			return err
		}
		for _, payment := range old.Payments {
			if !payment.Paid {
				continue
			}
			if err := applyBalanceDelta(ctx, tx, accountID, payment.PartnerID, payment.Amount); err != nil {
				return err
			}
			if err := applyBalanceDelta(ctx, tx, accountID, old.PayerID, payment.Amount); err != nil {
				return err
			}
		}

		cost := &models.Cost{
			ID:                 old.ID,
			AccountID:          old.AccountID,
			Category:           req.Category,
			Description:        req.Description,
			Value:              req.Value,
			Date:               req.Date,
			PayerID:            req.PayerID,
			IsRecurrent:        req.IsRecurrent,
			InvolvedPartnerIDs: req.InvolvedPartnerIDs,
			Payments:           payments,
			CreatedAt:          old.CreatedAt,
		}

		if err := applyBalanceDelta(ctx, tx, accountID, req.PayerID, req.Value); err != nil {
			return err
		}
		if err := tx.UpdateCost(ctx, cost); err != nil {
			return err
		}
		updated = cost
		return nil
	})
	return updated, err
}

// DeleteCost reverses the payer's balance effect and removes the record.
// Blocked while any share is marked paid; those must be reverted first.
func (s *CostService) DeleteCost(ctx context.Context, accountID, id string) error {
	return s.store.WithTransaction(ctx, func(tx repository.Store) error {
		cost, err := tx.GetCost(ctx, accountID, id)
		if err != nil {
			return err
		}
		for _, payment := range cost.Payments {
			if payment.Paid {
				return utils.NewPaidPaymentsExistError()
			}
		}
		if err := applyBalanceDelta(ctx, tx, accountID, cost.PayerID, -cost.Value); err != nil {
			return err
		}
		return tx.DeleteCost(ctx, accountID, id)
	})
}

func validateCostInput(category string, value float64, involvedPartnerIDs []string) error {
	if err := utils.ValidateCostCategory(category); err != nil {
		return err
	}
	if err := utils.ValidatePositive(value, "value"); err != nil {
		return err
	}
	if len(involvedPartnerIDs) == 0 {
		return utils.NewEmptySelectionError()
	}
	return nil
}

// buildPayments creates one unpaid payment per involved partner, each for
// an equal share of the value. Every involved id must resolve to a known
// partner.
func buildPayments(partners []models.Partner, involvedPartnerIDs []string, value float64) ([]models.CostPayment, error) {
	if len(involvedPartnerIDs) == 0 {
		return nil, utils.NewEmptySelectionError()
	}
	known := make(map[string]bool, len(partners))
	for _, p := range partners {
		known[p.ID] = true
	}

	share := utils.EqualSplit(value, len(involvedPartnerIDs))
	payments := make([]models.CostPayment, 0, len(involvedPartnerIDs))
	for _, partnerID := range involvedPartnerIDs {
		if !known[partnerID] {
			return nil, utils.NewNotFoundError("Partner")
		}
		payments = append(payments, models.CostPayment{
			PartnerID: partnerID,
			Amount:    share,
			Paid:      false,
		})
	}
	return payments, nil
}
