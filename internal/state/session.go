// Package state holds the injected per-client state containers. They are
// owned by the application root and passed by reference to the components
// that need them; no ambient global singletons exist.
package state

import (
	"sync"

	"neocart/internal/domain/entity"
)

// UIState holds non-persistent presentation flags with no server
// correspondence.
type UIState struct {
	SidebarOpen    bool
	MobileMenuOpen bool
}

// Session is the state container for one authenticated client: the resolved
// profile, the cart and wishlist aggregates, the admin view selection, the
// accumulated catalog feed and transient UI flags.
//
// All access goes through methods holding the session mutex. The source
// design assumed a single cooperative thread; the mutex restores that
// guarantee per session without imposing any cross-session ordering.
type Session struct {
	mu sync.RWMutex

	phase      entity.SessionPhase
	credential entity.Credential
	profile    *entity.Profile
	adminView  entity.PriceView

	cart     entity.Cart
	wishlist entity.Wishlist
	feed     *entity.Feed
	ui       UIState
}

// NewSession returns an unauthenticated session.
func NewSession() *Session {
	return &Session{
		phase:     entity.PhaseUnauthenticated,
		adminView: entity.ViewRetailer,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() entity.SessionPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.phase
}

// Credential returns the held credential, zero when unauthenticated.
func (s *Session) Credential() entity.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.credential
}

// Profile returns the resolved profile, nil unless authenticated.
func (s *Session) Profile() *entity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}

// BeginResolving stores the credential and enters the resolving phase. While
// resolving, the delivery layer gates everything behind the session.
func (s *Session) BeginResolving(credential entity.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = entity.PhaseResolving
	s.credential = credential
	s.profile = nil
}

// CompleteResolution installs the resolved profile and seeds both aggregates
// from the snapshots embedded in the profile response. The profile is
// replaced wholesale; earlier aggregate contents are discarded.
func (s *Session) CompleteResolution(profile *entity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = entity.PhaseAuthenticated
	s.profile = profile
	s.cart.Clear()
	s.cart.Replace(profile.CartLines)
	s.wishlist.Replace(profile.WishlistLines)
	s.feed = nil
}

// Reset clears credential, profile, both aggregates and the feed, returning
// the session to the unauthenticated phase. Used for logout and for failed
// resolution alike.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = entity.PhaseUnauthenticated
	s.credential = ""
	s.profile = nil
	s.adminView = entity.ViewRetailer
	s.cart.Clear()
	s.wishlist.Clear()
	s.feed = nil
	s.ui = UIState{}
}

// AdminView returns the admin-selected pricing view.
func (s *Session) AdminView() entity.PriceView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.adminView
}

// SetAdminView stores the admin-selected pricing view. The caller enforces
// that only admins may toggle it.
func (s *Session) SetAdminView(view entity.PriceView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adminView = view
}

// UpdateCart runs fn with the cart aggregate under the session lock and
// returns the recomputed totals.
func (s *Session) UpdateCart(fn func(cart *entity.Cart)) entity.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.cart)

	return s.cart.Totals()
}

// CartView returns a copy of the cart lines, the applied coupon and the
// derived totals.
func (s *Session) CartView() ([]entity.CartLine, *entity.Coupon, entity.CartTotals) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := append([]entity.CartLine(nil), s.cart.Lines...)
	var coupon *entity.Coupon
	if s.cart.Coupon != nil {
		c := *s.cart.Coupon
		coupon = &c
	}

	return lines, coupon, s.cart.Totals()
}

// Coupon returns the applied coupon, nil when none is set.
func (s *Session) Coupon() *entity.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cart.Coupon == nil {
		return nil
	}
	c := *s.cart.Coupon

	return &c
}

// UpdateWishlist runs fn with the wishlist aggregate under the session lock.
func (s *Session) UpdateWishlist(fn func(wishlist *entity.Wishlist)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.wishlist)
}

// WishlistView returns a copy of the saved lines.
func (s *Session) WishlistView() []entity.WishlistLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.WishlistLine(nil), s.wishlist.Lines...)
}

// Feed returns the accumulated catalog feed, nil when none was started.
func (s *Session) Feed() *entity.Feed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.feed
}

// SetFeed installs a fresh catalog feed, discarding accumulated pages.
func (s *Session) SetFeed(feed *entity.Feed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feed = feed
}

// UI returns the transient UI flags.
func (s *Session) UI() UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ui
}

// SetUI replaces the transient UI flags.
func (s *Session) SetUI(ui UIState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ui = ui
}
