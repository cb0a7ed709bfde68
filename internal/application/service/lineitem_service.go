package service

import (
	"context"

	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
)

// LineItemService previews booking prices for the storefront. It fetches the
// authoritative listing with the caller's own session credential and runs the
// pricing engine on it; nothing is submitted anywhere.
type LineItemService struct {
	listings repository.ListingAPI
	pricing  *PricingService
}

// NewLineItemService creates a new line item service
func NewLineItemService(listings repository.ListingAPI, pricing *PricingService) *LineItemService {
	return &LineItemService{
		listings: listings,
		pricing:  pricing,
	}
}

// PreviewInput represents a line item preview request
type PreviewInput struct {
	ListingID    string
	IsOwnListing bool
	Booking      entity.Booking
	AccessToken  string
}

// Preview fetches the listing and computes its line items
func (s *LineItemService) Preview(ctx context.Context, input *PreviewInput) ([]entity.LineItem, error) {
	if input.ListingID == "" {
		return nil, apperror.NewBadRequestError("listingId is required")
	}

	var listing *entity.Listing
	var err error
	if input.IsOwnListing {
		listing, err = s.listings.ShowOwnListing(ctx, input.ListingID, input.AccessToken)
	} else {
		listing, err = s.listings.ShowListing(ctx, input.ListingID, input.AccessToken)
	}
	if err != nil {
		return nil, err
	}
	if listing.Deleted {
		return nil, apperror.ErrListingNotFound
	}

	return s.pricing.ComputeLineItems(listing, &input.Booking)
}
