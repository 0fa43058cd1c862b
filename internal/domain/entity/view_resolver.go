package entity

import "strings"

// IsAdmin reports whether the profile belongs to the distinguished admin
// identity. Admin status is derived from configuration, never stored.
func IsAdmin(profile *Profile, adminEmail string) bool {
	if profile == nil || adminEmail == "" {
		return false
	}

	return strings.EqualFold(profile.Email, adminEmail)
}

// ResolvePriceView is the catalog view resolver: a pure derivation of the
// pricing tier to request from the commerce API. It must be re-derived on
// every use; price correctness depends on freshness.
//
// Admins see whichever tier they selected (retailer by default); verified
// wholesalers see wholesale pricing; everyone else, including unauthenticated
// visitors and unverified wholesalers, sees retail pricing.
func ResolvePriceView(profile *Profile, adminEmail string, adminView PriceView) PriceView {
	if IsAdmin(profile, adminEmail) {
		if adminView.IsValid() {
			return adminView
		}

		return ViewRetailer
	}

	if profile != nil && profile.Role == RoleWholesaler && profile.IsVerified {
		return ViewWholesaler
	}

	return ViewRetailer
}
