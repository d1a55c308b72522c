// repository/cost_repository.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// CostRepository handles database operations for costs. Payments are a
// JSONB document column and must round-trip exactly through serialization.
type CostRepository struct {
	q Querier
}

// NewCostRepository creates a new CostRepository
func NewCostRepository(q Querier) *CostRepository {
	return &CostRepository{q: q}
}

const costColumns = `id, account_id, category, description, value, date,
         payer_id, is_recurrent, involved_partner_ids, payments, created_at`

// ListCosts retrieves all costs for an account
func (r *CostRepository) ListCosts(ctx context.Context, accountID string) ([]models.Cost, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+costColumns+` FROM costs WHERE account_id = $1 ORDER BY date DESC, created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list costs: %v", err)
	}
	defer rows.Close()

	var costs []models.Cost
	for rows.Next() {
		cost, err := scanCost(rows.Scan)
		if err != nil {
			return nil, err
		}
		costs = append(costs, *cost)
	}
	return costs, rows.Err()
}

// GetCost retrieves a cost by id
func (r *CostRepository) GetCost(ctx context.Context, accountID, id string) (*models.Cost, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+costColumns+` FROM costs WHERE account_id = $1 AND id = $2`,
		accountID, id,
	)
	cost, err := scanCost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.NewNotFoundError("Cost")
	}
	return cost, err
}

// InsertCost saves a new cost
func (r *CostRepository) InsertCost(ctx context.Context, cost *models.Cost) error {
	payments, err := json.Marshal(cost.Payments)
	if err != nil {
		return fmt.Errorf("failed to marshal payments: %v", err)
	}
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO costs
         (id, account_id, category, description, value, date, payer_id,
          is_recurrent, involved_partner_ids, payments, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		cost.ID, cost.AccountID, cost.Category, cost.Description, cost.Value, cost.Date,
		cost.PayerID, cost.IsRecurrent, pq.Array(cost.InvolvedPartnerIDs), payments, cost.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cost: %v", err)
	}
	return nil
}

// UpdateCost updates a cost record including its payments document
func (r *CostRepository) UpdateCost(ctx context.Context, cost *models.Cost) error {
	payments, err := json.Marshal(cost.Payments)
	if err != nil {
		return fmt.Errorf("failed to marshal payments: %v", err)
	}
	result, err := r.q.ExecContext(ctx,
		`UPDATE costs SET category = $1, description = $2, value = $3, date = $4,
             payer_id = $5, is_recurrent = $6, involved_partner_ids = $7, payments = $8
         WHERE account_id = $9 AND id = $10`,
		cost.Category, cost.Description, cost.Value, cost.Date, cost.PayerID,
		cost.IsRecurrent, pq.Array(cost.InvolvedPartnerIDs), payments,
		cost.AccountID, cost.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cost: %v", err)
	}
	return requireRowAffected(result, "Cost")
}

// DeleteCost removes a cost
func (r *CostRepository) DeleteCost(ctx context.Context, accountID, id string) error {
	result, err := r.q.ExecContext(ctx,
		"DELETE FROM costs WHERE account_id = $1 AND id = $2",
		accountID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete cost: %v", err)
	}
	return requireRowAffected(result, "Cost")
}

// scanCost reads one cost row, reviving the payments document and
// defaulting missing array fields so callers always see valid shapes.
func scanCost(scan func(dest ...interface{}) error) (*models.Cost, error) {
	var cost models.Cost
	var payments []byte
	err := scan(&cost.ID, &cost.AccountID, &cost.Category, &cost.Description, &cost.Value,
		&cost.Date, &cost.PayerID, &cost.IsRecurrent,
		pq.Array(&cost.InvolvedPartnerIDs), &payments, &cost.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan cost: %v", err)
	}
	if len(payments) > 0 {
		if err := json.Unmarshal(payments, &cost.Payments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payments: %v", err)
		}
	}
	if cost.Payments == nil {
		cost.Payments = []models.CostPayment{}
	}
	if cost.InvolvedPartnerIDs == nil {
		cost.InvolvedPartnerIDs = []string{}
	}
	return &cost, nil
}
