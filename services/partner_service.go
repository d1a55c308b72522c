package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/repository"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// PartnerService owns the partner ledger: the set of partners, their
// participation percentages and their running balances. Balances are
// mutated only through the settlement operations of the cost and profit
// services, never through partner edits.
type PartnerService struct {
	store repository.Store
}

// NewPartnerService creates a new partner service
func NewPartnerService(store repository.Store) *PartnerService {
	return &PartnerService{store: store}
}

// ListPartners returns all partners for an account
func (s *PartnerService) ListPartners(ctx context.Context, accountID string) ([]models.Partner, error) {
	return s.store.ListPartners(ctx, accountID)
}

// GetPartner returns a single partner
func (s *PartnerService) GetPartner(ctx context.Context, accountID, id string) (*models.Partner, error) {
	return s.store.GetPartner(ctx, accountID, id)
}

// AddPartner registers a new partner with a zero balance. Name and email
// must be unique (case-insensitive) and the account's total participation
// must stay at or below 100%.
func (s *PartnerService) AddPartner(ctx context.Context, accountID string, req *models.AddPartnerRequest) (*models.Partner, error) {
	if err := validatePartnerInput(req.Name, req.Email, req.Participation); err != nil {
		return nil, err
	}

	var created *models.Partner
	err := s.store.WithTransaction(ctx, func(tx repository.Store) error {
		partners, err := tx.ListPartners(ctx, accountID)
		if err != nil {
			return err
		}
		if err := checkPartnerUniqueness(partners, req.Name, req.Email, ""); err != nil {
			return err
		}
		if totalParticipation(partners)+req.Participation > 100 {
			return utils.NewParticipationExceededError()
		}

		partner := &models.Partner{
			ID:            uuid.NewString(),
			AccountID:     accountID,
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			Document:      req.Document,
			Participation: req.Participation,
			Balance:       0,
			CreatedAt:     time.Now().UTC(),
		}
		if err := tx.InsertPartner(ctx, partner); err != nil {
			return err
		}
		created = partner
		return nil
	})
	return created, err
}

// EditPartner updates a partner's attributes. The running balance is
// deliberately untouched.
func (s *PartnerService) EditPartner(ctx context.Context, accountID, id string, req *models.EditPartnerRequest) (*models.Partner, error) {
	if err := validatePartnerInput(req.Name, req.Email, req.Participation); err != nil {
		return nil, err
	}

	var updated *models.Partner
	err := s.store.WithTransaction(ctx, func(tx repository.Store) error {
		partner, err := tx.GetPartner(ctx, accountID, id)
		if err != nil {
			return err
		}
		partners, err := tx.ListPartners(ctx, accountID)
		if err != nil {
			return err
		}
		if err := checkPartnerUniqueness(partners, req.Name, req.Email, id); err != nil {
			return err
		}
		if totalParticipation(partners)-partner.Participation+req.Participation > 100 {
			return utils.NewParticipationExceededError()
		}

		partner.Name = req.Name
		partner.Email = req.Email
		partner.Phone = req.Phone
		partner.Document = req.Document
		partner.Participation = req.Participation
		if err := tx.UpdatePartner(ctx, partner); err != nil {
			return err
		}
		updated = partner
		return nil
	})
	return updated, err
}

// DeletePartner removes a partner. A partner with money owed in either
// direction cannot be removed.
func (s *PartnerService) DeletePartner(ctx context.Context, accountID, id string) error {
	return s.store.WithTransaction(ctx, func(tx repository.Store) error {
		partner, err := tx.GetPartner(ctx, accountID, id)
		if err != nil {
			return err
		}
		if partner.Balance != 0 {
			return utils.NewNonZeroBalanceError()
		}
		return tx.DeletePartner(ctx, accountID, id)
	})
}

// GetTotalParticipation returns the sum of participation across all partners
func (s *PartnerService) GetTotalParticipation(ctx context.Context, accountID string) (float64, error) {
	partners, err := s.store.ListPartners(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return totalParticipation(partners), nil
}

func validatePartnerInput(name, email string, participation float64) error {
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return err
	}
	if err := utils.ValidateRequired(email, "email"); err != nil {
		return err
	}
	return utils.ValidateParticipation(participation)
}

func checkPartnerUniqueness(partners []models.Partner, name, email, excludeID string) error {
	normName := utils.NormalizeName(name)
	normEmail := utils.NormalizeName(email)
	for _, p := range partners {
		if p.ID == excludeID {
			continue
		}
		if utils.NormalizeName(p.Name) == normName {
			return utils.NewDuplicateNameError()
		}
		if utils.NormalizeName(p.Email) == normEmail {
			return utils.NewDuplicateEmailError()
		}
	}
	return nil
}

func totalParticipation(partners []models.Partner) float64 {
	var total float64
	for _, p := range partners {
		total += p.Participation
	}
	return total
}

// applyBalanceDelta adjusts one partner's running balance. It must run
// against the transaction-bound store of the surrounding operation so a
// failing adjustment rolls the whole operation back.
func applyBalanceDelta(ctx context.Context, store repository.Store, accountID, partnerID string, delta float64) error {
	partner, err := store.GetPartner(ctx, accountID, partnerID)
	if err != nil {
		return err
	}
	partner.Balance = utils.Round(partner.Balance + delta)
	return store.UpdatePartner(ctx, partner)
}
