package cleaners

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	"github.com/m04kA/CleanClick-BookingService/internal/infra/storage/jsonfile"
	"github.com/m04kA/CleanClick-BookingService/internal/integrations/identity"
	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners/models"
	"github.com/m04kA/CleanClick-BookingService/pkg/logger"
	"github.com/m04kA/CleanClick-BookingService/pkg/ptr"
)

type fakeIdentity struct {
	users map[string]*identity.User
	err   error
	calls int
}

func (f *fakeIdentity) GetUser(_ context.Context, id string) (*identity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return u, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var monday = time.Date(2030, time.January, 7, 8, 0, 0, 0, time.UTC)

func newService(t *testing.T, idp *fakeIdentity) *Service {
	t.Helper()
	store, err := jsonfile.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return NewService(store, idp, fixedTime{monday}, logger.NewNop())
}

func TestGet_Seeded(t *testing.T) {
	svc := newService(t, &fakeIdentity{})

	resp, err := svc.Get(context.Background(), jsonfile.SeedCleanerID)
	require.NoError(t, err)
	assert.Equal(t, jsonfile.SeedCleanerID, resp.ID)
	assert.Equal(t, domain.PricingKindFlatTable, resp.Pricing.Strategy.Kind())
	assert.Len(t, resp.Availability, 7)
}

func TestGet_ProvisionsKnownIdentity(t *testing.T) {
	idp := &fakeIdentity{users: map[string]*identity.User{
		"u-1": {ID: "u-1", Email: "ana@example.com", UserMetadata: identity.UserMetadata{Name: " Ana "}},
		"u-2": {ID: "u-2", Email: "anon@example.com"},
	}}
	svc := newService(t, idp)
	ctx := context.Background()

	resp, err := svc.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, domain.DefaultFrequencyDiscounts(), resp.FrequencyDiscounts)
	assert.Equal(t, domain.PricingKindFormula, resp.Pricing.Strategy.Kind())
	assert.Empty(t, resp.BlockedDates)

	// второе чтение идет из хранилища
	_, err = svc.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 1, idp.calls)

	resp, err = svc.Get(ctx, "u-2")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCleanerName, resp.Name)
}

func TestGet_UnknownIdentity(t *testing.T) {
	svc := newService(t, &fakeIdentity{})
	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCleanerNotFound)

	svc = newService(t, &fakeIdentity{err: identity.ErrNotConfigured})
	_, err = svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCleanerNotFound)

	svc = newService(t, &fakeIdentity{err: errors.New("boom")})
	_, err = svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_OwnerOnly(t *testing.T) {
	svc := newService(t, &fakeIdentity{})

	_, err := svc.Update(context.Background(), jsonfile.SeedCleanerID, &models.UpdateCleanerRequest{CallerID: "someone-else"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Update(context.Background(), jsonfile.SeedCleanerID, &models.UpdateCleanerRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_PartialPatch(t *testing.T) {
	svc := newService(t, &fakeIdentity{})
	ctx := context.Background()

	before, err := svc.Get(ctx, jsonfile.SeedCleanerID)
	require.NoError(t, err)

	resp, err := svc.Update(ctx, jsonfile.SeedCleanerID, &models.UpdateCleanerRequest{
		CallerID:     jsonfile.SeedCleanerID,
		Phone:        ptr.Ptr("+1 555 0100"),
		BlockedDates: &[]string{"2030-01-09", "2030-01-08", "2030-01-09"},
		Availability: domain.WeeklyAvailability{"sunday": {Morning: true}},
	})
	require.NoError(t, err)

	assert.Equal(t, "+1 555 0100", resp.Phone)
	assert.Equal(t, before.Name, resp.Name)
	assert.Equal(t, before.Pricing, resp.Pricing)
	assert.Equal(t, []string{"2030-01-08", "2030-01-09"}, resp.BlockedDates)
	assert.True(t, resp.Availability["sunday"].Morning)
	assert.Equal(t, domain.DefaultAvailability()["monday"], resp.Availability["monday"])
	assert.Equal(t, monday, resp.UpdatedAt)

	stored, err := svc.Get(ctx, jsonfile.SeedCleanerID)
	require.NoError(t, err)
	assert.Equal(t, resp.BlockedDates, stored.BlockedDates)
}

func TestUpdate_RejectsBadPatch(t *testing.T) {
	svc := newService(t, &fakeIdentity{})
	ctx := context.Background()
	owner := jsonfile.SeedCleanerID

	_, err := svc.Update(ctx, owner, &models.UpdateCleanerRequest{
		CallerID:           owner,
		FrequencyDiscounts: &domain.FrequencyDiscounts{Weekly: 120},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, owner, &models.UpdateCleanerRequest{
		CallerID: owner,
		Pricing:  &domain.Pricing{Strategy: domain.FlatTable{"1-1": -5}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, owner, &models.UpdateCleanerRequest{
		CallerID:     owner,
		BlockedDates: &[]string{"2030-02-30"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_ZeroDiscountsAreKept(t *testing.T) {
	svc := newService(t, &fakeIdentity{})
	ctx := context.Background()
	owner := jsonfile.SeedCleanerID

	resp, err := svc.Update(ctx, owner, &models.UpdateCleanerRequest{
		CallerID:           owner,
		FrequencyDiscounts: &domain.FrequencyDiscounts{},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyDiscounts{}, resp.FrequencyDiscounts)

	stored, err := svc.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyDiscounts{}, stored.FrequencyDiscounts)
}

func TestListOpenDays(t *testing.T) {
	svc := newService(t, &fakeIdentity{})
	ctx := context.Background()

	days, err := svc.ListOpenDays(ctx, &models.ListOpenDaysRequest{CleanerID: jsonfile.SeedCleanerID})
	require.NoError(t, err)
	require.Len(t, days, domain.DefaultOpenDaysCount)
	assert.Equal(t, models.OpenDayResponse{Date: "2030-01-07", Weekday: "monday", IsOpen: true}, days[0])

	days, err = svc.ListOpenDays(ctx, &models.ListOpenDaysRequest{CleanerID: jsonfile.SeedCleanerID, From: "2030-01-12", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, []models.OpenDayResponse{
		{Date: "2030-01-12", Weekday: "saturday", IsOpen: true},
		{Date: "2030-01-13", Weekday: "sunday", IsOpen: false},
	}, days)

	_, err = svc.ListOpenDays(ctx, &models.ListOpenDaysRequest{CleanerID: jsonfile.SeedCleanerID, Count: 61})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListOpenDays(ctx, &models.ListOpenDaysRequest{CleanerID: "ghost", Count: 1})
	assert.ErrorIs(t, err, ErrCleanerNotFound)
}
