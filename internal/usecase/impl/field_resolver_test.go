package impl

import (
	"context"
	"testing"

	"locator/internal/domain/entity"
	mockRepo "locator/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFieldResolver_SingleLocationReadsShared(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore{entity.FieldBusinessName.Key(): "Acme", entity.FieldCity.Key(): "Utrecht"}
	r := newResolvers(shared, newLocationStore().set("a", map[string]string{entity.FieldBusinessName.Key(): "Own"}))

	got := r.fields.ResolveFields(ctx, singleLocation, entity.Subject{LocationID: "a"},
		[]entity.Field{entity.FieldBusinessName, entity.FieldCity})

	assert.Equal(t, map[entity.Field]string{
		entity.FieldBusinessName: "Acme",
		entity.FieldCity:         "Utrecht",
	}, got)
}

func TestFieldResolver_CascadePrecedence(t *testing.T) {
	ctx := context.Background()
	phone := entity.FieldPhone.Key()
	shared := sharedStore{phone: "S"}

	tests := []struct {
		name     string
		settings entity.Settings
		own      map[string]string
		want     string
	}{
		{name: "sharing on without override", settings: sharedOrganization, own: map[string]string{phone: "L"}, want: "S"},
		{name: "sharing on with override", settings: sharedOrganization, own: map[string]string{phone: "L", entity.OverrideKey(phone): "on"}, want: "L"},
		{name: "override with blank own value", settings: sharedOrganization, own: map[string]string{phone: "", entity.OverrideKey(phone): "on"}, want: ""},
		{name: "sharing off", settings: independentLocations, own: map[string]string{phone: "L"}, want: "L"},
		{name: "sharing off with blank own value", settings: independentLocations, own: map[string]string{phone: ""}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolvers(shared, newLocationStore().set("a", tt.own))

			got := r.fields.ResolveFields(ctx, tt.settings, entity.Subject{LocationID: "a"}, []entity.Field{entity.FieldPhone})

			assert.Equal(t, tt.want, got[entity.FieldPhone])
		})
	}
}

func TestFieldResolver_PhysicalFieldsNeverInherit(t *testing.T) {
	ctx := context.Background()
	shared := sharedStore{}
	for _, field := range entity.KnownFields() {
		shared[field.Key()] = "shared-" + string(field)
	}
	r := newResolvers(shared, newLocationStore().set("a", map[string]string{}))

	got := r.fields.ResolveFields(ctx, sharedOrganization, entity.Subject{LocationID: "a"}, entity.KnownFields())

	for _, field := range entity.KnownFields() {
		if field.IsPhysical() {
			assert.Empty(t, got[field], "field %s", field)
		} else {
			assert.Equal(t, "shared-"+string(field), got[field], "field %s", field)
		}
	}
}

func TestFieldResolver_SubjectFallbacks(t *testing.T) {
	ctx := context.Background()
	name := entity.FieldBusinessName.Key()
	locations := newLocationStore().
		set("primary", map[string]string{name: "Primary"}).
		set("draft-1", map[string]string{name: "Draft"})
	locations.primary = "primary"
	r := newResolvers(sharedStore{name: "Shared"}, locations)

	got := r.fields.ResolveFields(ctx, independentLocations, entity.Subject{}, []entity.Field{entity.FieldBusinessName})
	assert.Equal(t, "Primary", got[entity.FieldBusinessName])

	got = r.fields.ResolveFields(ctx, independentLocations, entity.Subject{DraftID: "draft-1"}, []entity.Field{entity.FieldBusinessName})
	assert.Equal(t, "Draft", got[entity.FieldBusinessName])
}

func TestFieldResolver_NoPrimaryMeansUnknownLocation(t *testing.T) {
	ctx := context.Background()
	name := entity.FieldBusinessName.Key()
	r := newResolvers(sharedStore{name: "Shared"}, newLocationStore())

	got := r.fields.ResolveFields(ctx, independentLocations, entity.Subject{}, []entity.Field{entity.FieldBusinessName})
	assert.Empty(t, got[entity.FieldBusinessName])

	got = r.fields.ResolveFields(ctx, sharedOrganization, entity.Subject{}, []entity.Field{entity.FieldBusinessName})
	assert.Equal(t, "Shared", got[entity.FieldBusinessName])
}

func TestFieldResolver_UnknownFieldIsEmpty(t *testing.T) {
	ctx := context.Background()
	r := newResolvers(sharedStore{"not_a_field": "x"}, newLocationStore())

	got := r.fields.ResolveFields(ctx, singleLocation, entity.Subject{}, []entity.Field{"not_a_field"})

	assert.Equal(t, map[entity.Field]string{"not_a_field": ""}, got)
}

func TestFieldResolver_StoreErrorLeavesOnlyThatFieldEmpty(t *testing.T) {
	ctx := context.Background()
	shared := mockRepo.NewMockSharedProfileRepository(t)
	shared.EXPECT().Get(mock.Anything, entity.FieldPhone.Key(), "").Return("", errors.New("timeout"))
	shared.EXPECT().Get(mock.Anything, entity.FieldEmail.Key(), "").Return("info@example.com", nil)
	r := NewFieldResolver(shared, mockRepo.NewMockLocationRepository(t), newDiscardLogger())

	got := r.ResolveFields(ctx, singleLocation, entity.Subject{}, []entity.Field{entity.FieldPhone, entity.FieldEmail})

	assert.Equal(t, map[entity.Field]string{
		entity.FieldPhone: "",
		entity.FieldEmail: "info@example.com",
	}, got)
}
