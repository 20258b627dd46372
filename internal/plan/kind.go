// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package plan

// GeneratorKind names a value generator.
type GeneratorKind string

// Supported generator kinds.
const (
	KindUUID4         GeneratorKind = "uuid4"
	KindTimestamp     GeneratorKind = "timestamp_iso8601"
	KindDate          GeneratorKind = "date_iso8601"
	KindEnumChoice    GeneratorKind = "enum_choice"
	KindIntRange      GeneratorKind = "int_range"
	KindNumericRange  GeneratorKind = "numeric_range"
	KindEmail         GeneratorKind = "email"
	KindPhone         GeneratorKind = "phone_e164"
	KindString        GeneratorKind = "string"
	KindStringPattern GeneratorKind = "string_pattern"
	KindCountry       GeneratorKind = "country"
	KindCity          GeneratorKind = "city"
	KindLatLong       GeneratorKind = "lat_long"
	KindFixedValue    GeneratorKind = "fixed_value"
	KindBoolean       GeneratorKind = "boolean"
	KindFirstName     GeneratorKind = "first_name"
	KindLastName      GeneratorKind = "last_name"
	KindFullName      GeneratorKind = "full_name"
	KindAddress       GeneratorKind = "address"
	KindCompany       GeneratorKind = "company"
	KindURL           GeneratorKind = "url"
	KindCurrency      GeneratorKind = "currency"
)

var allKinds = []GeneratorKind{
	KindUUID4, KindTimestamp, KindDate, KindEnumChoice, KindIntRange, KindNumericRange,
	KindEmail, KindPhone, KindString, KindStringPattern, KindCountry, KindCity, KindLatLong,
	KindFixedValue, KindBoolean, KindFirstName, KindLastName, KindFullName, KindAddress,
	KindCompany, KindURL, KindCurrency,
}

// Kinds returns every supported kind in declaration order.
func Kinds() []GeneratorKind {
	return append([]GeneratorKind(nil), allKinds...)
}

// Valid reports whether k is a supported kind.
func (k GeneratorKind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind returns the kind named s, or KindString when s is not a known kind.
func ParseKind(s string) GeneratorKind {
	if k := GeneratorKind(s); k.Valid() {
		return k
	}
	return KindString
}
