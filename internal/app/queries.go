package app

import (
	"context"
	"fmt"
	"time"

	"hoteldesk/internal/domain"
)

// Quote is the answer to "what would this customer pay for this room type".
// BasePrice is the representative price of the first room of the kind.
type Quote struct {
	Kind            domain.RoomKind
	CustomerKind    domain.CustomerKind
	DiscountPercent float64
	BasePrice       float64
	FinalPrice      float64
}

type QueryService struct {
	hotel           *domain.Hotel
	cache           domain.Cache
	cacheTTL        time.Duration
	regularPhones   map[string]struct{}
	regularDiscount float64
}

// NewQueryService wires the read side. cache may be nil; quoting then skips
// the cache entirely.
func NewQueryService(h *domain.Hotel, c domain.Cache, ttl time.Duration, regularPhones map[string]struct{}, regularDiscount float64) *QueryService {
	return &QueryService{hotel: h, cache: c, cacheTTL: ttl, regularPhones: regularPhones, regularDiscount: regularDiscount}
}

// Classify builds a customer from the configured regular-phone set.
func (s *QueryService) Classify(name, address, phone string) domain.Customer {
	return domain.Classify(name, address, phone, s.regularPhones, s.regularDiscount)
}

// ListAvailable returns the available rooms, optionally filtered by kind.
func (s *QueryService) ListAvailable(kind *domain.RoomKind) []domain.Room {
	return s.hotel.ListAvailable(kind)
}

// QuotePrice resolves the representative price for the kind and applies the
// customer's discount. Quotes are cached per kind and customer kind; price
// changes evict those keys (see BookingService.ChangePrice).
func (s *QueryService) QuotePrice(ctx context.Context, kind domain.RoomKind, c domain.Customer) (Quote, error) {
	key := quoteKey(kind, c.Kind)
	var q Quote
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &q); ok {
			return q, nil
		}
	}
	base, err := s.hotel.PriceForType(kind)
	if err != nil {
		return Quote{}, err
	}
	q = Quote{
		Kind:            kind,
		CustomerKind:    c.Kind,
		DiscountPercent: c.DiscountPercent,
		BasePrice:       base,
		FinalPrice:      domain.FinalPrice(base, c),
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, q, int(s.cacheTTL.Seconds()))
	}
	return q, nil
}

func quoteKey(kind domain.RoomKind, ck domain.CustomerKind) string {
	return fmt.Sprintf("quote:%s:%s", kind, ck)
}
