package impl

import (
	"context"
	"testing"
	"time"

	"locator/internal/domain/entity"
	mockRepo "locator/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenState_InclusiveBoundaries(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore(merge(week("09:00", "17:00"), map[string]string{entity.FieldTimezone.Key(): "UTC"}))
	r := newResolvers(shared, newLocationStore())

	tests := []struct {
		hh, mm int
		want   entity.OpenState
	}{
		{hh: 8, mm: 59, want: entity.OpenStateClosed},
		{hh: 9, mm: 0, want: entity.OpenStateOpen},
		{hh: 12, mm: 30, want: entity.OpenStateOpen},
		{hh: 17, mm: 0, want: entity.OpenStateOpen},
		{hh: 17, mm: 1, want: entity.OpenStateClosed},
	}

	for _, tt := range tests {
		t.Run(time.Date(0, 1, 1, tt.hh, tt.mm, 0, 0, time.UTC).Format("15:04"), func(t *testing.T) {
			got := r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(tt.hh, tt.mm, time.UTC))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenState_ConvertsToLocalTime(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore(merge(week("09:00", "17:00"), map[string]string{entity.FieldTimezone.Key(): "Europe/Amsterdam"}))
	r := newResolvers(shared, newLocationStore())

	// 08:30 UTC is 09:30 in Amsterdam in January.
	assert.Equal(t, entity.OpenStateOpen, r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(8, 30, time.UTC)))
	// 16:30 UTC is 17:30 in Amsterdam.
	assert.Equal(t, entity.OpenStateClosed, r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(16, 30, time.UTC)))
}

func TestOpenState_Open247ShortCircuitsClosedDay(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore(merge(week("closed", "closed"), map[string]string{
		entity.FieldTimezone.Key(): "UTC",
		entity.ToggleOpen247:       "on",
	}))
	r := newResolvers(shared, newLocationStore())

	got := r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(3, 0, time.UTC))

	assert.Equal(t, entity.OpenStateOpen, got)
}

func TestOpenState_UndeterminedTimezone(t *testing.T) {
	ctx := context.Background()

	for _, zone := range []string{"", "   ", "Mars/Olympus_Mons"} {
		t.Run(zone, func(t *testing.T) {
			shared := sharedStore(merge(week("00:00", "23:59"), map[string]string{entity.FieldTimezone.Key(): zone}))
			r := newResolvers(shared, newLocationStore())

			got := r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(12, 0, time.UTC))

			assert.Equal(t, entity.OpenStateUndetermined, got)
		})
	}
}

func TestOpenState_ClosedDay(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore(merge(week("closed", "closed"), map[string]string{entity.FieldTimezone.Key(): "UTC"}))
	r := newResolvers(shared, newLocationStore())

	got := r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(12, 0, time.UTC))

	assert.Equal(t, entity.OpenStateClosed, got)
}

func TestOpenState_SecondaryWindow(t *testing.T) {
	ctx := context.Background()
	base := map[string]string{
		entity.FieldTimezone.Key(): "UTC",
		mondayKeys.From:            "closed",
		mondayKeys.To:              "closed",
		mondayKeys.SecondFrom:      "18:00",
		mondayKeys.SecondTo:        "22:00",
	}

	r := newResolvers(sharedStore(merge(base, map[string]string{entity.ToggleMultipleTimes: "on"})), newLocationStore())
	assert.Equal(t, entity.OpenStateOpen, r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(19, 0, time.UTC)))
	assert.Equal(t, entity.OpenStateClosed, r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(12, 0, time.UTC)))

	r = newResolvers(sharedStore(base), newLocationStore())
	assert.Equal(t, entity.OpenStateClosed, r.openState.IsOpen(ctx, singleLocation, entity.Subject{}, monday(19, 0, time.UTC)),
		"secondary window is ignored unless multiple opening hours are enabled")
}

func TestOpenState_PerLocationTimezoneAndOverride(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore(merge(week("09:00", "17:00"), map[string]string{entity.FieldTimezone.Key(): "UTC"}))
	locations := newLocationStore().
		set("inherits", map[string]string{}).
		set("late", map[string]string{
			entity.OverrideKey(mondayKeys.Day): "on",
			mondayKeys.From:                    "18:00",
			mondayKeys.To:                      "23:00",
		})
	r := newResolvers(shared, locations)
	now := monday(20, 0, time.UTC)

	assert.Equal(t, entity.OpenStateClosed, r.openState.IsOpen(ctx, sharedOrganization, entity.Subject{LocationID: "inherits"}, now))
	assert.Equal(t, entity.OpenStateOpen, r.openState.IsOpen(ctx, sharedOrganization, entity.Subject{LocationID: "late"}, now))
	// Without sharing the location has no timezone of its own.
	assert.Equal(t, entity.OpenStateUndetermined, r.openState.IsOpen(ctx, independentLocations, entity.Subject{LocationID: "late"}, now))
}

func TestOpenState_StoreErrorIsUndetermined(t *testing.T) {
	ctx := context.Background()
	shared := mockRepo.NewMockSharedProfileRepository(t)
	shared.EXPECT().Get(mock.Anything, entity.FieldTimezone.Key(), "").Return("UTC", nil)
	shared.EXPECT().Get(mock.Anything, entity.ToggleOpen247, "").Return("", errors.New("i/o timeout"))
	logger := newDiscardLogger()
	locations := mockRepo.NewMockLocationRepository(t)
	fields := NewFieldResolver(shared, locations, logger)
	hours := NewHoursResolver(shared, locations, logger)
	evaluator := NewOpenStateEvaluator(shared, locations, fields, hours, systemZones{}, nil, nil, logger)

	got := evaluator.IsOpen(ctx, singleLocation, entity.Subject{}, monday(12, 0, time.UTC))

	assert.Equal(t, entity.OpenStateUndetermined, got)
}

func TestOpenState_BatchIsolatesLocations(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore(week("09:00", "17:00"))
	locations := newLocationStore().
		set("utc", map[string]string{entity.FieldTimezone.Key(): "UTC"}).
		set("tokyo", map[string]string{entity.FieldTimezone.Key(): "Asia/Tokyo"}).
		set("broken", map[string]string{entity.FieldTimezone.Key(): "Nowhere/Land"})
	r := newResolvers(shared, locations)

	ids := []string{"utc", "tokyo", "broken", "missing"}
	got := r.openState.IsOpenBatch(ctx, entity.Settings{MultiLocation: true, SingleOrganization: true, ShareOpeningHours: true}, ids, monday(12, 0, time.UTC))

	assert.Equal(t, map[string]entity.OpenState{
		"utc":     entity.OpenStateOpen,
		"tokyo":   entity.OpenStateClosed,
		"broken":  entity.OpenStateUndetermined,
		"missing": entity.OpenStateUndetermined,
	}, got)
	assert.Len(t, r.observer.states, len(ids))
}

func TestOpenState_BatchWithoutIDsEvaluatesEveryLocation(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore(week("09:00", "17:00"))
	locations := newLocationStore().
		set("utc", map[string]string{entity.FieldTimezone.Key(): "UTC"}).
		set("tokyo", map[string]string{entity.FieldTimezone.Key(): "Asia/Tokyo"})
	r := newResolvers(shared, locations)

	got := r.openState.IsOpenBatch(ctx, independentLocations, nil, monday(12, 0, time.UTC))

	assert.Equal(t, map[string]entity.OpenState{
		"utc":   entity.OpenStateOpen,
		"tokyo": entity.OpenStateClosed,
	}, got)

	assert.Empty(t, r.openState.IsOpenBatch(ctx, singleLocation, nil, monday(12, 0, time.UTC)), "single location mode has no stored locations")
}

func TestOpenState_BatchListFailure(t *testing.T) {
	locations := mockRepo.NewMockLocationRepository(t)
	locations.EXPECT().ListLocationIDs(mock.Anything).Return(nil, errors.New("connection reset"))
	evaluator := NewOpenStateEvaluator(mockRepo.NewMockSharedProfileRepository(t), locations, nil, nil, systemZones{}, nil, newTestConfig(2, ""), newDiscardLogger())

	got := evaluator.IsOpenBatch(context.Background(), sharedOrganization, []string{}, monday(12, 0, time.UTC))

	assert.Empty(t, got)
}

func TestDayState(t *testing.T) {
	tests := []struct {
		name string
		day  entity.ResolvedDay
		want entity.OpenState
	}{
		{name: "full day", day: entity.ResolvedDay{Is24h: true, From: "09:00", To: "17:00"}, want: entity.OpenStateOpen},
		{name: "inside primary", day: entity.ResolvedDay{From: "11:00", To: "13:00"}, want: entity.OpenStateOpen},
		{name: "outside primary", day: entity.ResolvedDay{From: "13:00", To: "14:00"}, want: entity.OpenStateClosed},
		{name: "partial window", day: entity.ResolvedDay{From: "11:00"}, want: entity.OpenStateUndetermined},
		{name: "partial secondary with open primary", day: entity.ResolvedDay{From: "11:00", To: "13:00", SecondFrom: "14:00", UseMultipleTimes: true}, want: entity.OpenStateOpen},
		{name: "partial secondary with closed primary", day: entity.ResolvedDay{From: "closed", To: "closed", SecondFrom: "14:00", UseMultipleTimes: true}, want: entity.OpenStateUndetermined},
		{name: "empty secondary", day: entity.ResolvedDay{From: "13:00", To: "14:00", UseMultipleTimes: true}, want: entity.OpenStateClosed},
		{name: "overnight window never matches", day: entity.ResolvedDay{From: "22:00", To: "02:00"}, want: entity.OpenStateClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dayState(&tt.day, 12*60))
		})
	}
}

func TestNewOpenStateEvaluator_BatchConcurrency(t *testing.T) {
	evaluator := NewOpenStateEvaluator(sharedStore{}, newLocationStore(), nil, nil, systemZones{}, nil, newTestConfig(0, ""), nil)
	require.IsType(t, &openStateEvaluator{}, evaluator)
	assert.Equal(t, defaultBatchConcurrency, evaluator.(*openStateEvaluator).batchConcurrency)

	evaluator = NewOpenStateEvaluator(sharedStore{}, newLocationStore(), nil, nil, systemZones{}, nil, newTestConfig(3, ""), nil)
	assert.Equal(t, 3, evaluator.(*openStateEvaluator).batchConcurrency)
}
