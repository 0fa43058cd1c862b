package impl

import (
	"context"
	"log/slog"

	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlists gateway.WishlistGateway
	products  gateway.ProductGateway
	carts     gateway.CartGateway
	sessions  usecase.SessionUsecase
	logger    *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	wishlists gateway.WishlistGateway,
	products gateway.ProductGateway,
	carts gateway.CartGateway,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		wishlists: wishlists,
		products:  products,
		carts:     carts,
		sessions:  sessions,
		logger:    logger,
	}
}

// Lines returns the saved lines.
func (srv *wishlistService) Lines(_ context.Context, session *state.Session) ([]entity.WishlistLine, error) {
	if _, err := requireCredential(session); err != nil {
		return nil, err
	}

	return session.WishlistView(), nil
}

// Add saves the product upstream and appends it locally. The duplicate check
// runs after the round trip; the upstream accepts duplicate adds and the
// aggregate is what enforces uniqueness.
func (srv *wishlistService) Add(ctx context.Context, session *state.Session, productID string) ([]entity.WishlistLine, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	view := srv.sessions.EffectiveView(session)
	product, err := srv.products.Get(ctx, productID, view)
	if err != nil {
		if errors.Is(err, gateway.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrNotFound, "product %s", productID)
		}

		return nil, errors.Wrap(err, "failed to resolve product for wishlist add")
	}

	stored, err := srv.wishlists.Add(ctx, credential, entity.WishlistLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.DiscountPrice,
		ImageURL:    product.ImageURL,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
		}

		return nil, errors.Wrap(err, "failed to add wishlist line")
	}

	var existed bool
	session.UpdateWishlist(func(wishlist *entity.Wishlist) {
		existed = wishlist.Add(*stored)
	})
	if existed {
		return nil, errors.Wrapf(domainerrors.ErrAlreadyInWishlist, "product %s", productID)
	}

	srv.logger.Info("Wishlist line added", slog.String("productID", productID))

	return session.WishlistView(), nil
}

// Remove deletes the line, leaving the aggregate untouched on failure.
func (srv *wishlistService) Remove(ctx context.Context, session *state.Session, productID string) ([]entity.WishlistLine, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	if _, ok := findWishlistLine(session.WishlistView(), productID); !ok {
		return nil, errors.Wrapf(domainerrors.ErrWishlistLineNotFound, "product %s", productID)
	}

	if err := srv.wishlists.Remove(ctx, credential, productID); err != nil {
		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
		}

		return nil, errors.Wrap(err, "failed to remove wishlist line")
	}

	session.UpdateWishlist(func(wishlist *entity.Wishlist) {
		wishlist.RemoveLine(productID)
	})
	srv.logger.Info("Wishlist line removed", slog.String("productID", productID))

	return session.WishlistView(), nil
}

// MoveToCart translates the saved line into a cart add, then removes it from
// the wishlist. Two separate round trips: a removal failure leaves the
// product in both aggregates rather than losing it from both.
func (srv *wishlistService) MoveToCart(ctx context.Context, session *state.Session, productID string) (*usecase.CartSummary, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	line, ok := findWishlistLine(session.WishlistView(), productID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrWishlistLineNotFound, "product %s", productID)
	}

	// The saved snapshot is the payload; the server's line stays the
	// authority on what actually landed in the cart.
	stored, err := srv.carts.Add(ctx, credential, entity.CartLine{
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Price:       line.Price,
		ImageURL:    line.ImageURL,
		Quantity:    1,
	})
	if err != nil {
		return nil, mapGatewayError(err, "failed to move line to cart")
	}

	session.UpdateCart(func(cart *entity.Cart) {
		cart.Reconcile(*stored)
	})

	if _, err := srv.Remove(ctx, session, productID); err != nil {
		srv.logger.Warn("Product moved to cart but wishlist removal failed",
			slog.String("productID", productID), slog.Any("error", err))
	}

	return summarize(session), nil
}

func findWishlistLine(lines []entity.WishlistLine, productID string) (entity.WishlistLine, bool) {
	for _, line := range lines {
		if line.ProductID == productID {
			return line, true
		}
	}

	return entity.WishlistLine{}, false
}
