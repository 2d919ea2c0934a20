// internal/domain/models/service.go
package models

import "strings"

// ServiceKey identifies one of the cleaning services a quote can be
// requested for. The key is the value sent over the wire and stored in
// the database; display labels live in the catalog.
type ServiceKey string

const (
	ServiceUnspecified      ServiceKey = "unspecified"
	ServiceOffice           ServiceKey = "office"
	ServicePostConstruction ServiceKey = "post-construction"
	ServiceIndustrial       ServiceKey = "industrial"
	ServiceHome             ServiceKey = "home"
	ServiceUpholstery       ServiceKey = "upholstery"
	ServiceCarpet           ServiceKey = "carpet"
	ServiceOther            ServiceKey = "other"
)

// AllServiceKeys returns every valid service key, in display order.
func AllServiceKeys() []ServiceKey {
	return []ServiceKey{
		ServiceUnspecified,
		ServiceOffice,
		ServicePostConstruction,
		ServiceIndustrial,
		ServiceHome,
		ServiceUpholstery,
		ServiceCarpet,
		ServiceOther,
	}
}

// IsValidServiceKey reports whether s is one of the fixed service keys.
func IsValidServiceKey(s string) bool {
	for _, k := range AllServiceKeys() {
		if string(k) == s {
			return true
		}
	}
	return false
}

// ServiceFromKey parses a raw form value into a ServiceKey.
// Unknown or empty values collapse to ServiceUnspecified so stored
// documents always carry a key from the closed set.
func ServiceFromKey(s string) ServiceKey {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ServiceUnspecified
	}
	if IsValidServiceKey(s) {
		return ServiceKey(s)
	}
	return ServiceUnspecified
}
