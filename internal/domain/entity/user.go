package entity

// Profile is the server-resolved account record keyed by the current
// credential. It is owned exclusively by the session store and replaced
// wholesale on every credential change; no other component mutates it.
type Profile struct {
	ID         string // Commerce API identifier for the account.
	Email      string // Login identifier; also how the admin account is recognised.
	Name       string // Display name.
	Role       Role   // retailer or wholesaler.
	IsVerified bool   // Wholesaler verification flag; gates wholesale pricing.
	Address    string // Saved shipping address, may be empty.
	Phone      string // Saved phone number, may be empty.
	City       string
	Pincode    string
	AvatarURL  string // Hosted avatar reference, may be empty.

	// Snapshots embedded in the profile response; the session store seeds the
	// cart and wishlist aggregates from these on every resolution.
	CartLines     []CartLine
	WishlistLines []WishlistLine
}

// ProfileUpdate is the explicit "update profile" payload. It is the only way
// any component other than the session store touches profile data, and it
// goes through a full round trip that returns a fresh credential.
type ProfileUpdate struct {
	Name    string
	Phone   string
	Address string
	City    string
	Pincode string
}

// SessionPhase is the lifecycle state of the session store.
type SessionPhase string

const (
	// PhaseUnauthenticated means no usable credential is held.
	PhaseUnauthenticated SessionPhase = "unauthenticated"
	// PhaseResolving means a credential is held and the profile fetch is in flight.
	// While resolving, the rest of the application is gated.
	PhaseResolving SessionPhase = "resolving"
	// PhaseAuthenticated means the profile has been resolved.
	PhaseAuthenticated SessionPhase = "authenticated"
)
