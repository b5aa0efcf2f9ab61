package entity

// Field names a business-info value slot. The same name is used for the
// location's own value and for the shared default.
type Field string

const (
	FieldBusinessName       Field = "business_name"
	FieldBusinessType       Field = "business_type"
	FieldAddress            Field = "business_address"
	FieldAddress2           Field = "business_address_2"
	FieldCity               Field = "business_city"
	FieldState              Field = "business_state"
	FieldZipcode            Field = "business_zipcode"
	FieldCountry            Field = "business_country"
	FieldLatitude           Field = "location_coords_lat"
	FieldLongitude          Field = "location_coords_long"
	FieldPhone              Field = "business_phone"
	FieldPhone2             Field = "business_phone_2nd"
	FieldFax                Field = "business_fax"
	FieldEmail              Field = "business_email"
	FieldURL                Field = "business_url"
	FieldDescription        Field = "business_description"
	FieldPriceRange         Field = "business_price_range"
	FieldCurrenciesAccepted Field = "business_currencies_accepted"
	FieldPaymentAccepted    Field = "business_payment_accepted"
	FieldAreaServed         Field = "business_area_served"
	FieldVATID              Field = "business_vat_id"
	FieldTaxID              Field = "business_tax_id"
	FieldRegistrationID     Field = "business_coc_id"
	FieldLogo               Field = "business_logo"
	FieldImage              Field = "business_image"
	FieldTimezone           Field = "location_timezone"
)

var knownFields = []Field{
	FieldBusinessName,
	FieldBusinessType,
	FieldAddress,
	FieldAddress2,
	FieldCity,
	FieldState,
	FieldZipcode,
	FieldCountry,
	FieldLatitude,
	FieldLongitude,
	FieldPhone,
	FieldPhone2,
	FieldFax,
	FieldEmail,
	FieldURL,
	FieldDescription,
	FieldPriceRange,
	FieldCurrenciesAccepted,
	FieldPaymentAccepted,
	FieldAreaServed,
	FieldVATID,
	FieldTaxID,
	FieldRegistrationID,
	FieldLogo,
	FieldImage,
	FieldTimezone,
}

var knownFieldSet = func() map[Field]struct{} {
	set := make(map[Field]struct{}, len(knownFields))
	for _, f := range knownFields {
		set[f] = struct{}{}
	}

	return set
}()

// physicalFields are never inherited from the shared profile: they describe
// where a single location physically is.
var physicalFields = map[Field]struct{}{
	FieldAddress:        {},
	FieldAddress2:       {},
	FieldCity:           {},
	FieldState:          {},
	FieldZipcode:        {},
	FieldCountry:        {},
	FieldLatitude:       {},
	FieldLongitude:      {},
	FieldRegistrationID: {},
}

// KnownFields returns every resolvable business field in a stable order.
func KnownFields() []Field {
	out := make([]Field, len(knownFields))
	copy(out, knownFields)

	return out
}

// IsKnown reports whether f belongs to the known field set.
func (f Field) IsKnown() bool {
	_, ok := knownFieldSet[f]

	return ok
}

// IsPhysical reports whether f is excluded from shared-profile inheritance.
func (f Field) IsPhysical() bool {
	_, ok := physicalFields[f]

	return ok
}

// Key is the store key of the field's own value.
func (f Field) Key() string {
	return string(f)
}
