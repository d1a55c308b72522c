package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/utils"
)

func profitRequest(value float64) *models.AddProfitRequest {
	return &models.AddProfitRequest{
		Date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Value:    value,
		Source:   "client retainer",
		Category: utils.ProfitCategoryOperational,
	}
}

// Scenario from the books: a 200 profit at 50/50 participation credits
// each partner with 100; deleting it restores the prior balances.
func TestProfitService_DistributionScenario(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	profitService := NewProfitService(store)

	alice := addTestPartner(t, partnerService, "Alice", 50)
	bob := addTestPartner(t, partnerService, "Bob", 50)

	profit, err := profitService.AddProfit(context.Background(), testAccount, profitRequest(200))
	require.NoError(t, err)

	require.Len(t, profit.Distributions, 2)
	for _, dist := range profit.Distributions {
		assert.Equal(t, 100.0, dist.Amount)
	}
	assert.Equal(t, 100.0, getBalance(t, store, alice.ID))
	assert.Equal(t, 100.0, getBalance(t, store, bob.ID))

	require.NoError(t, profitService.DeleteProfit(context.Background(), testAccount, profit.ID))
	assert.Equal(t, 0.0, getBalance(t, store, alice.ID))
	assert.Equal(t, 0.0, getBalance(t, store, bob.ID))
}

func TestProfitService_AddProfit_NoPartners(t *testing.T) {
	store := newMemStore()
	profitService := NewProfitService(store)

	_, err := profitService.AddProfit(context.Background(), testAccount, profitRequest(100))
	assert.True(t, utils.IsKind(err, utils.KindNoPartners))
}

func TestProfitService_DistributionInvariant_PartialParticipation(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	profitService := NewProfitService(store)

	addTestPartner(t, partnerService, "Alice", 30)
	addTestPartner(t, partnerService, "Bob", 20)

	profit, err := profitService.AddProfit(context.Background(), testAccount, profitRequest(100))
	require.NoError(t, err)

	var sum float64
	for _, dist := range profit.Distributions {
		sum += dist.Amount
	}
	// Total participation is 50%, so only half the value is distributed;
	// the remainder stays unassigned by design.
	assert.InDelta(t, 50.0, sum, 0.01*float64(len(profit.Distributions)))
}

func TestProfitService_EditProfit_NoOpKeepsBalances(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	profitService := NewProfitService(store)

	alice := addTestPartner(t, partnerService, "Alice", 60)
	bob := addTestPartner(t, partnerService, "Bob", 40)

	req := profitRequest(150)
	profit, err := profitService.AddProfit(context.Background(), testAccount, req)
	require.NoError(t, err)

	_, err = profitService.EditProfit(context.Background(), testAccount, profit.ID, &models.EditProfitRequest{
		Date:     req.Date,
		Value:    req.Value,
		Source:   req.Source,
		Category: req.Category,
	})
	require.NoError(t, err)

	assert.Equal(t, 90.0, getBalance(t, store, alice.ID))
	assert.Equal(t, 60.0, getBalance(t, store, bob.ID))
}

func TestProfitService_EditProfit_UsesCurrentPartners(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	profitService := NewProfitService(store)

	alice := addTestPartner(t, partnerService, "Alice", 40)
	bob := addTestPartner(t, partnerService, "Bob", 40)

	profit, err := profitService.AddProfit(context.Background(), testAccount, profitRequest(100))
	require.NoError(t, err)
	require.Len(t, profit.Distributions, 2)

	// A third partner joins after the profit was recorded.
	carol := addTestPartner(t, partnerService, "Carol", 20)

	updated, err := profitService.EditProfit(context.Background(), testAccount, profit.ID, &models.EditProfitRequest{
		Date:     profit.Date,
		Value:    100,
		Source:   profit.Source,
		Category: profit.Category,
	})
	require.NoError(t, err)

	// The edit redistributes across the partners that exist now.
	require.Len(t, updated.Distributions, 3)
	assert.Equal(t, 40.0, getBalance(t, store, alice.ID))
	assert.Equal(t, 40.0, getBalance(t, store, bob.ID))
	assert.Equal(t, 20.0, getBalance(t, store, carol.ID))
}

func TestProfitService_EditProfit_ChangesValue(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	profitService := NewProfitService(store)

	alice := addTestPartner(t, partnerService, "Alice", 100)

	profit, err := profitService.AddProfit(context.Background(), testAccount, profitRequest(100))
	require.NoError(t, err)
	assert.Equal(t, 100.0, getBalance(t, store, alice.ID))

	_, err = profitService.EditProfit(context.Background(), testAccount, profit.ID, &models.EditProfitRequest{
		Date:     profit.Date,
		Value:    250,
		Source:   "bigger retainer",
		Category: utils.ProfitCategoryExtraordinary,
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, getBalance(t, store, alice.ID), "old distribution reverted before the new one applies")
}

func TestProfitService_DeleteProfit_Unknown(t *testing.T) {
	store := newMemStore()
	profitService := NewProfitService(store)

	err := profitService.DeleteProfit(context.Background(), testAccount, "missing")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestProfitService_AddProfit_InvalidCategory(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	profitService := NewProfitService(store)

	addTestPartner(t, partnerService, "Alice", 100)

	req := profitRequest(100)
	req.Category = "misc"
	_, err := profitService.AddProfit(context.Background(), testAccount, req)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}
