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

func TestReportService_ExportBooks(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	costService := NewCostService(store)
	reportService := NewReportService(store, NewSummaryService(store))

	alice := addTestPartner(t, partnerService, "Alice", 100)
	_, err := costService.AddCost(context.Background(), testAccount, &models.AddCostRequest{
		Category:           utils.CostCategorySite,
		Description:        "domain renewal",
		Value:              45,
		Date:               time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		PayerID:            alice.ID,
		InvolvedPartnerIDs: []string{alice.ID},
	})
	require.NoError(t, err)

	file, filename, err := reportService.ExportBooks(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Contains(t, filename, ".xlsx")

	for _, sheet := range []string{"Partners", "Costs", "Profits", "Summary"} {
		idx, err := file.GetSheetIndex(sheet)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0, "sheet %s should exist", sheet)
	}

	name, err := file.GetCellValue("Partners", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	desc, err := file.GetCellValue("Costs", "C2")
	require.NoError(t, err)
	assert.Equal(t, "domain renewal", desc)
}
