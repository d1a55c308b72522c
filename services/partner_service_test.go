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

const testAccount = "acct-test"

func addTestPartner(t *testing.T, s *PartnerService, name string, participation float64) *models.Partner {
	t.Helper()
	partner, err := s.AddPartner(context.Background(), testAccount, &models.AddPartnerRequest{
		Name:          name,
		Email:         name + "@example.com",
		Participation: participation,
	})
	require.NoError(t, err)
	return partner
}

func getBalance(t *testing.T, store *memStore, partnerID string) float64 {
	t.Helper()
	partner, err := store.GetPartner(context.Background(), testAccount, partnerID)
	require.NoError(t, err)
	return partner.Balance
}

func TestPartnerService_AddPartner(t *testing.T) {
	store := newMemStore()
	service := NewPartnerService(store)

	partner := addTestPartner(t, service, "Alice", 50)

	assert.NotEmpty(t, partner.ID)
	assert.Equal(t, "Alice", partner.Name)
	assert.Equal(t, 50.0, partner.Participation)
	assert.Equal(t, 0.0, partner.Balance, "new partner starts with zero balance")
}

func TestPartnerService_AddPartner_DuplicateName(t *testing.T) {
	store := newMemStore()
	service := NewPartnerService(store)

	addTestPartner(t, service, "Alice", 30)

	_, err := service.AddPartner(context.Background(), testAccount, &models.AddPartnerRequest{
		Name:          "alice", // case-insensitive match
		Email:         "other@example.com",
		Participation: 10,
	})
	assert.True(t, utils.IsKind(err, utils.KindDuplicateName))
}

func TestPartnerService_AddPartner_DuplicateEmail(t *testing.T) {
	store := newMemStore()
	service := NewPartnerService(store)

	addTestPartner(t, service, "Alice", 30)

	_, err := service.AddPartner(context.Background(), testAccount, &models.AddPartnerRequest{
		Name:          "Bob",
		Email:         "ALICE@example.com",
		Participation: 10,
	})
	assert.True(t, utils.IsKind(err, utils.KindDuplicateEmail))
}

func TestPartnerService_AddPartner_ParticipationCap(t *testing.T) {
	store := newMemStore()
	service := NewPartnerService(store)

	addTestPartner(t, service, "Alice", 60)
	addTestPartner(t, service, "Bob", 40)

	_, err := service.AddPartner(context.Background(), testAccount, &models.AddPartnerRequest{
		Name:          "Carol",
		Email:         "carol@example.com",
		Participation: 1,
	})
	assert.True(t, utils.IsKind(err, utils.KindParticipationExceeded))
}

func TestPartnerService_EditPartner(t *testing.T) {
	store := newMemStore()
	service := NewPartnerService(store)

	alice := addTestPartner(t, service, "Alice", 50)
	addTestPartner(t, service, "Bob", 30)

	// Re-submitting the partner's own name and email is not a conflict.
	updated, err := service.EditPartner(context.Background(), testAccount, alice.ID, &models.EditPartnerRequest{
		Name:          "Alice",
		Email:         "Alice@example.com",
		Phone:         "555-0101",
		Participation: 70,
	})
	require.NoError(t, err)
	assert.Equal(t, 70.0, updated.Participation)
	assert.Equal(t, "555-0101", updated.Phone)

	// But taking another partner's name is.
	_, err = service.EditPartner(context.Background(), testAccount, alice.ID, &models.EditPartnerRequest{
		Name:          "BOB",
		Email:         "alice@example.com",
		Participation: 50,
	})
	assert.True(t, utils.IsKind(err, utils.KindDuplicateName))
}

func TestPartnerService_EditPartner_ParticipationCap(t *testing.T) {
	store := newMemStore()
	service := NewPartnerService(store)

	alice := addTestPartner(t, service, "Alice", 50)
	addTestPartner(t, service, "Bob", 50)

	// Raising above the remaining headroom fails.
	_, err := service.EditPartner(context.Background(), testAccount, alice.ID, &models.EditPartnerRequest{
		Name:          "Alice",
		Email:         "alice@example.com",
		Participation: 51,
	})
	assert.True(t, utils.IsKind(err, utils.KindParticipationExceeded))

	// Keeping the same participation is fine: the check excludes the
	// partner's own current share.
	_, err = service.EditPartner(context.Background(), testAccount, alice.ID, &models.EditPartnerRequest{
		Name:          "Alice",
		Email:         "alice@example.com",
		Participation: 50,
	})
	assert.NoError(t, err)
}

func TestPartnerService_EditPartner_DoesNotTouchBalance(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	costService := NewCostService(store)

	alice := addTestPartner(t, partnerService, "Alice", 50)
	bob := addTestPartner(t, partnerService, "Bob", 50)

	_, err := costService.AddCost(context.Background(), testAccount, &models.AddCostRequest{
		Category:           utils.CostCategorySite,
		Value:              100,
		Date:               time.Now(),
		PayerID:            alice.ID,
		InvolvedPartnerIDs: []string{alice.ID, bob.ID},
	})
	require.NoError(t, err)

	_, err = partnerService.EditPartner(context.Background(), testAccount, alice.ID, &models.EditPartnerRequest{
		Name:          "Alice Prime",
		Email:         "alice@example.com",
		Participation: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, getBalance(t, store, alice.ID))
}

func TestPartnerService_DeletePartner_NonZeroBalance(t *testing.T) {
	store := newMemStore()
	partnerService := NewPartnerService(store)
	costService := NewCostService(store)

	alice := addTestPartner(t, partnerService, "Alice", 50)
	bob := addTestPartner(t, partnerService, "Bob", 50)

	_, err := costService.AddCost(context.Background(), testAccount, &models.AddCostRequest{
		Category:           utils.CostCategoryProvider,
		Value:              80,
		Date:               time.Now(),
		PayerID:            alice.ID,
		InvolvedPartnerIDs: []string{alice.ID, bob.ID},
	})
	require.NoError(t, err)

	err = partnerService.DeletePartner(context.Background(), testAccount, alice.ID)
	assert.True(t, utils.IsKind(err, utils.KindNonZeroBalance))

	// Bob has no balance yet (no payment settled) and can be removed.
	err = partnerService.DeletePartner(context.Background(), testAccount, bob.ID)
	assert.NoError(t, err)
}

func TestPartnerService_DeletePartner_Unknown(t *testing.T) {
	store := newMemStore()
	service := NewPartnerService(store)

	err := service.DeletePartner(context.Background(), testAccount, "missing")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestPartnerService_GetTotalParticipation(t *testing.T) {
	store := newMemStore()
	service := NewPartnerService(store)

	total, err := service.GetTotalParticipation(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	addTestPartner(t, service, "Alice", 35)
	addTestPartner(t, service, "Bob", 40)

	total, err = service.GetTotalParticipation(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, 75.0, total)
}
