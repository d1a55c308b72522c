// repository/partner_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// PartnerRepository handles database operations for partners
type PartnerRepository struct {
	q Querier
}

// NewPartnerRepository creates a new PartnerRepository
func NewPartnerRepository(q Querier) *PartnerRepository {
	return &PartnerRepository{q: q}
}

// ListPartners retrieves all partners for an account
func (r *PartnerRepository) ListPartners(ctx context.Context, accountID string) ([]models.Partner, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, account_id, name, email, phone, document, participation, balance, created_at
         FROM partners WHERE account_id = $1 ORDER BY created_at ASC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %v", err)
	}
	defer rows.Close()

	var partners []models.Partner
	for rows.Next() {
		var p models.Partner
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Email, &p.Phone, &p.Document,
			&p.Participation, &p.Balance, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan partner: %v", err)
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

// GetPartner retrieves a partner by id
func (r *PartnerRepository) GetPartner(ctx context.Context, accountID, id string) (*models.Partner, error) {
	var p models.Partner
	err := r.q.QueryRowContext(ctx,
		`SELECT id, account_id, name, email, phone, document, participation, balance, created_at
         FROM partners WHERE account_id = $1 AND id = $2`,
		accountID, id,
	).Scan(&p.ID, &p.AccountID, &p.Name, &p.Email, &p.Phone, &p.Document,
		&p.Participation, &p.Balance, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.NewNotFoundError("Partner")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %v", err)
	}
	return &p, nil
}

// InsertPartner saves a new partner
func (r *PartnerRepository) InsertPartner(ctx context.Context, partner *models.Partner) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO partners (id, account_id, name, email, phone, document, participation, balance, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		partner.ID, partner.AccountID, partner.Name, partner.Email, partner.Phone,
		partner.Document, partner.Participation, partner.Balance, partner.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert partner: %v", err)
	}
	return nil
}

// UpdatePartner updates a partner's attributes and balance
func (r *PartnerRepository) UpdatePartner(ctx context.Context, partner *models.Partner) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE partners SET name = $1, email = $2, phone = $3, document = $4,
             participation = $5, balance = $6
         WHERE account_id = $7 AND id = $8`,
		partner.Name, partner.Email, partner.Phone, partner.Document,
		partner.Participation, partner.Balance, partner.AccountID, partner.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner: %v", err)
	}
	return requireRowAffected(result, "Partner")
}

// DeletePartner removes a partner
func (r *PartnerRepository) DeletePartner(ctx context.Context, accountID, id string) error {
	result, err := r.q.ExecContext(ctx,
		"DELETE FROM partners WHERE account_id = $1 AND id = $2",
		accountID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete partner: %v", err)
	}
	return requireRowAffected(result, "Partner")
}

// requireRowAffected turns a zero-row write into a not-found error.
func requireRowAffected(result sql.Result, resource string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return utils.NewNotFoundError(resource)
	}
	return nil
}
