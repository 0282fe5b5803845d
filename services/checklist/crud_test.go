package checklist

import (
	"context"
	"testing"

	"cabinkeep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrUpdateOpenCreatesThenUpdates(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first := bareRecord(1)
	first.GuestName = "Smith"
	first.BathTowels = 2

	created, err := svc.CreateOrUpdateOpen(ctx, first)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// A second sequential call for the same cabin must not create a second
	// open record; the existing one takes the new call's values wholesale.
	second := bareRecord(1)
	second.GuestName = "Jones"
	second.BathTowels = 4

	updated, err := svc.CreateOrUpdateOpen(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jones", updated.GuestName)
	assert.Equal(t, 4, updated.BathTowels)
	assert.Len(t, repo.records, 1)
}

func TestCreateOrUpdateOpenSeparateCabins(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.CreateOrUpdateOpen(ctx, bareRecord(1))
	require.NoError(t, err)
	_, err = svc.CreateOrUpdateOpen(ctx, bareRecord(2))
	require.NoError(t, err)

	assert.Len(t, repo.records, 2)
}

func TestCreateOrUpdateOpenIgnoresCompletedRecords(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	closed := bareRecord(1)
	closed.Completed = true
	_, err := repo.Create(ctx, closed)
	require.NoError(t, err)

	// The closed record is edit-locked by convention; a new edit for the
	// cabin opens a fresh record.
	created, err := svc.CreateOrUpdateOpen(ctx, bareRecord(1))
	require.NoError(t, err)
	assert.False(t, created.Completed)
	assert.Len(t, repo.records, 2)
}

func TestCreateOrUpdateOpenRejectsBadCabin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, cabin := range []int{0, -1, 4} {
		_, err := svc.CreateOrUpdateOpen(ctx, bareRecord(cabin))
		assert.ErrorIs(t, err, ErrInvalidCabin, "cabin %d", cabin)
	}
}

func TestCreateOrUpdateOpenRejectsBadEnum(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec := bareRecord(1)
	rec.CleanACFilter = "Maybe Later"

	_, err := svc.CreateOrUpdateOpen(ctx, rec)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestCreateOrUpdateOpenClampsQuantities(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec := bareRecord(1)
	rec.BathTowels = 99
	rec.CoffeePods = -3

	saved, err := svc.CreateOrUpdateOpen(ctx, rec)
	require.NoError(t, err)

	assert.Equal(t, 4, saved.BathTowels)
	assert.Equal(t, 0, saved.CoffeePods)
}

func TestUpdateChecklistUnknownIDIsNull(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.UpdateChecklist(context.Background(), "no-such-id", bareRecord(1))
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateChecklistTogglesCompleted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateOrUpdateOpen(ctx, bareRecord(2))
	require.NoError(t, err)

	done := *created
	done.Completed = true
	updated, err := svc.UpdateChecklist(ctx, created.ID, done)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	// The cabin has no pending record anymore.
	summary, err := svc.ComputeRestockSummary(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Pendings)
}

func TestDeleteChecklistResetsCabin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateOrUpdateOpen(ctx, bareRecord(3))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteChecklist(ctx, created.ID))
	assert.Empty(t, repo.records)

	// A fresh edit opens a brand-new record.
	recreated, err := svc.CreateOrUpdateOpen(ctx, bareRecord(3))
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, recreated.ID)
}

func TestRoundTripThroughGet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec := bareRecord(2)
	rec.GuestName = "Anders"
	rec.ToiletPaper = 1
	rec.StripKingBeds = models.StripBundled
	rec.DamagesYesNo = true
	rec.DamagesDescription = "cracked mug"

	created, err := svc.CreateOrUpdateOpen(ctx, rec)
	require.NoError(t, err)

	fetched, err := svc.GetChecklist(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, created.GuestName, fetched.GuestName)
	assert.Equal(t, created.ToiletPaper, fetched.ToiletPaper)
	assert.Equal(t, created.StripKingBeds, fetched.StripKingBeds)
	assert.Equal(t, created.DamagesDescription, fetched.DamagesDescription)
}

func TestGetChecklistUnknownIDIsNull(t *testing.T) {
	svc, _ := newTestService()

	rec, err := svc.GetChecklist(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, rec)
}
