// repository/profit_repository.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// ProfitRepository handles database operations for profits. Distributions
// are a JSONB document column.
type ProfitRepository struct {
	q Querier
}

// NewProfitRepository creates a new ProfitRepository
func NewProfitRepository(q Querier) *ProfitRepository {
	return &ProfitRepository{q: q}
}

const profitColumns = `id, account_id, date, value, source, category, distributions, created_at`

// ListProfits retrieves all profits for an account
func (r *ProfitRepository) ListProfits(ctx context.Context, accountID string) ([]models.Profit, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+profitColumns+` FROM profits WHERE account_id = $1 ORDER BY date DESC, created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profits: %v", err)
	}
	defer rows.Close()

	var profits []models.Profit
	for rows.Next() {
		profit, err := scanProfit(rows.Scan)
		if err != nil {
			return nil, err
		}
		profits = append(profits, *profit)
	}
	return profits, rows.Err()
}

// GetProfit retrieves a profit by id
func (r *ProfitRepository) GetProfit(ctx context.Context, accountID, id string) (*models.Profit, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+profitColumns+` FROM profits WHERE account_id = $1 AND id = $2`,
		accountID, id,
	)
	profit, err := scanProfit(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.NewNotFoundError("Profit")
	}
	return profit, err
}

// InsertProfit saves a new profit
func (r *ProfitRepository) InsertProfit(ctx context.Context, profit *models.Profit) error {
	distributions, err := json.Marshal(profit.Distributions)
	if err != nil {
		return fmt.Errorf("failed to marshal distributions: %v", err)
	}
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO profits (id, account_id, date, value, source, category, distributions, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		profit.ID, profit.AccountID, profit.Date, profit.Value, profit.Source,
		profit.Category, distributions, profit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert profit: %v", err)
	}
	return nil
}

// UpdateProfit updates a profit record including its distributions document
func (r *ProfitRepository) UpdateProfit(ctx context.Context, profit *models.Profit) error {
	distributions, err := json.Marshal(profit.Distributions)
	if err != nil {
		return fmt.Errorf("failed to marshal distributions: %v", err)
	}
	result, err := r.q.ExecContext(ctx,
		`UPDATE profits SET date = $1, value = $2, source = $3, category = $4, distributions = $5
         WHERE account_id = $6 AND id = $7`,
		profit.Date, profit.Value, profit.Source, profit.Category, distributions,
		profit.AccountID, profit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profit: %v", err)
	}
	return requireRowAffected(result, "Profit")
}

// DeleteProfit removes a profit
func (r *ProfitRepository) DeleteProfit(ctx context.Context, accountID, id string) error {
	result, err := r.q.ExecContext(ctx,
		"DELETE FROM profits WHERE account_id = $1 AND id = $2",
		accountID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete profit: %v", err)
	}
	return requireRowAffected(result, "Profit")
}

func scanProfit(scan func(dest ...interface{}) error) (*models.Profit, error) {
	var profit models.Profit
	var distributions []byte
	err := scan(&profit.ID, &profit.AccountID, &profit.Date, &profit.Value,
		&profit.Source, &profit.Category, &distributions, &profit.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan profit: %v", err)
	}
	if len(distributions) > 0 {
		if err := json.Unmarshal(distributions, &profit.Distributions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal distributions: %v", err)
		}
	}
	if profit.Distributions == nil {
		profit.Distributions = []models.ProfitDistribution{}
	}
	return &profit, nil
}
