// Package entity contains the core business objects of the project.
package entity

// Role represents the account type assigned by the commerce API.
type Role string

const (
	// RoleRetailer indicates a regular retail buyer.
	RoleRetailer Role = "retailer"
	// RoleWholesaler indicates a wholesale buyer subject to verification.
	RoleWholesaler Role = "wholesaler"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleRetailer, RoleWholesaler:
		return true
	default:
		return false
	}
}

// PriceView is the pricing tier requested from the commerce API. It is a
// derived value, never stored: admins may look at either tier, verified
// wholesalers get the wholesale tier, everyone else gets retail.
type PriceView string

const (
	// ViewRetailer requests retail pricing.
	ViewRetailer PriceView = "retailer"
	// ViewWholesaler requests wholesale pricing.
	ViewWholesaler PriceView = "wholesaler"
)

// String returns the string representation of the PriceView.
func (v PriceView) String() string {
	return string(v)
}

// IsValid checks if the PriceView is a valid value.
func (v PriceView) IsValid() bool {
	switch v {
	case ViewRetailer, ViewWholesaler:
		return true
	default:
		return false
	}
}
