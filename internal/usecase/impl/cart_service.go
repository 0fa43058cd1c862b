package impl

import (
	"context"
	"log/slog"
	"strings"

	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	carts    gateway.CartGateway
	products gateway.ProductGateway
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	carts gateway.CartGateway,
	products gateway.ProductGateway,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		carts:    carts,
		products: products,
		sessions: sessions,
		logger:   logger,
	}
}

// requireCredential gates every mutation: without a session credential no
// upstream call is made at all.
func requireCredential(session *state.Session) (entity.Credential, error) {
	if session == nil {
		return "", errors.Wrap(domainerrors.ErrAuthRequired, "no session")
	}
	credential := session.Credential()
	if credential.IsZero() {
		return "", errors.Wrap(domainerrors.ErrAuthRequired, "no credential held")
	}

	return credential, nil
}

func summarize(session *state.Session) *usecase.CartSummary {
	lines, coupon, totals := session.CartView()

	return &usecase.CartSummary{Lines: lines, Coupon: coupon, Totals: totals}
}

// Summary returns the current cart without any round trip.
func (srv *cartService) Summary(_ context.Context, session *state.Session) (*usecase.CartSummary, error) {
	if _, err := requireCredential(session); err != nil {
		return nil, err
	}

	return summarize(session), nil
}

// Add puts quantity units of the product into the cart.
func (srv *cartService) Add(ctx context.Context, session *state.Session, productID string, quantity int) (*usecase.CartSummary, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
	}

	view := srv.sessions.EffectiveView(session)
	product, err := srv.products.Get(ctx, productID, view)
	if err != nil {
		if errors.Is(err, gateway.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrNotFound, "product %s", productID)
		}

		return nil, errors.Wrap(err, "failed to resolve product for cart add")
	}

	stored, err := srv.carts.Add(ctx, credential, entity.CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.DiscountPrice,
		ImageURL:    product.ImageURL,
		Quantity:    quantity,
	})
	if err != nil {
		return nil, mapGatewayError(err, "failed to add cart line")
	}

	var existed bool
	session.UpdateCart(func(cart *entity.Cart) {
		existed = cart.Reconcile(*stored)
	})

	srv.logger.Info("Cart line added",
		slog.String("productID", product.ID),
		slog.Int("quantity", stored.Quantity),
		slog.Bool("merged", existed))

	return summarize(session), nil
}

// AdjustQuantity applies a relative delta to an existing line.
func (srv *cartService) AdjustQuantity(ctx context.Context, session *state.Session, productID string, delta int) (*usecase.CartSummary, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	lines, _, _ := session.CartView()
	if !hasLine(lines, productID) {
		return nil, errors.Wrapf(domainerrors.ErrCartLineNotFound, "product %s", productID)
	}

	updated, err := srv.carts.UpdateQuantity(ctx, credential, productID, delta)
	if err != nil {
		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
		}

		// The upstream removes the line when the adjustment drives the
		// quantity to zero, and that removal may have landed even when the
		// response was lost. Dropping the line locally keeps the aggregate
		// consistent with the worst case; the next resolution reconciles.
		srv.logger.Warn("Quantity adjustment round trip failed, dropping line locally",
			slog.String("productID", productID), slog.Any("error", err))
		session.UpdateCart(func(cart *entity.Cart) {
			cart.RemoveLine(productID)
		})

		return summarize(session), nil
	}

	session.UpdateCart(func(cart *entity.Cart) {
		if updated == nil {
			cart.RemoveLine(productID)
		} else {
			cart.Reconcile(*updated)
		}
	})

	return summarize(session), nil
}

// Remove deletes the line, leaving the aggregate untouched on failure.
func (srv *cartService) Remove(ctx context.Context, session *state.Session, productID string) (*usecase.CartSummary, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	lines, _, _ := session.CartView()
	if !hasLine(lines, productID) {
		return nil, errors.Wrapf(domainerrors.ErrCartLineNotFound, "product %s", productID)
	}

	if err := srv.carts.Remove(ctx, credential, productID); err != nil {
		return nil, mapGatewayError(err, "failed to remove cart line")
	}

	session.UpdateCart(func(cart *entity.Cart) {
		cart.RemoveLine(productID)
	})
	srv.logger.Info("Cart line removed", slog.String("productID", productID))

	return summarize(session), nil
}

// ApplyCoupon validates the code upstream and stages the discount.
func (srv *cartService) ApplyCoupon(ctx context.Context, session *state.Session, code string) (*usecase.CartSummary, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.Wrap(domainerrors.ErrEmptyCouponCode, "coupon code is empty")
	}
	// At most one active coupon: any apply while one is staged is rejected,
	// whether the code matches or not.
	if current := session.Coupon(); current != nil {
		return nil, errors.Wrapf(domainerrors.ErrCouponAlreadyApplied, "coupon %s is active", current.Code)
	}

	coupon, err := srv.carts.ApplyCoupon(ctx, credential, code)
	if err != nil {
		// A rejection always clears whatever was staged before: the user
		// sees the upstream's reason and an undiscounted total.
		session.UpdateCart(func(cart *entity.Cart) {
			cart.Coupon = nil
		})

		var rejection *gateway.RejectionError
		if errors.As(err, &rejection) {
			return nil, domainerrors.ErrCouponRejected.WithDetails(rejection.Reason)
		}

		return nil, mapGatewayError(err, "failed to apply coupon")
	}

	session.UpdateCart(func(cart *entity.Cart) {
		cart.Coupon = coupon
	})
	srv.logger.Info("Coupon applied", slog.String("code", coupon.Code))

	return summarize(session), nil
}

// mapGatewayError folds gateway failures into the domain error taxonomy.
func mapGatewayError(err error, msg string) error {
	if errors.Is(err, gateway.ErrCredentialRejected) {
		return errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
	}

	var rejection *gateway.RejectionError
	if errors.As(err, &rejection) {
		return domainerrors.ErrUpstreamRejected.WithDetails(rejection.Reason)
	}

	return errors.Wrap(err, msg)
}

func hasLine(lines []entity.CartLine, productID string) bool {
	for _, line := range lines {
		if line.ProductID == productID {
			return true
		}
	}

	return false
}
