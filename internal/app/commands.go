package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hoteldesk/internal/adapters/observability"
	"hoteldesk/internal/domain"
)

type BookingService struct {
	hotel *domain.Hotel
	cache domain.Cache
}

// NewBookingService wires the write side. cache may be nil; price changes
// then skip quote eviction.
func NewBookingService(h *domain.Hotel, c domain.Cache) *BookingService {
	return &BookingService{hotel: h, cache: c}
}

// Reserve books the room and records the outcome. ErrRoomUnavailable is an
// expected domain condition, reported but not escalated.
func (s *BookingService) Reserve(ctx context.Context, number int, c domain.Customer, checkIn time.Time, nights int) (domain.Reservation, error) {
	res, err := s.hotel.Reserve(number, c, checkIn, nights)
	if err != nil {
		observability.ObserveReservation("rejected")
		log.Warn().Int("room", number).Str("customer_kind", string(c.Kind)).Msg("reservation rejected")
		return domain.Reservation{}, err
	}
	observability.ObserveReservation("confirmed")
	log.Info().
		Str("id", res.ID).
		Int("room", res.RoomNumber).
		Int("nights", res.Nights).
		Str("customer_kind", string(c.Kind)).
		Msg("reservation confirmed")
	return res, nil
}

// ChangePrice updates every room of the kind and returns the count. Cached
// quotes for the kind are evicted for both customer kinds so the next quote
// reflects the new price.
func (s *BookingService) ChangePrice(ctx context.Context, kind domain.RoomKind, newPrice float64) int {
	n := s.hotel.ChangePriceForType(kind, newPrice)
	observability.ObservePriceChange(string(kind), n)
	if s.cache != nil {
		s.invalidateQuotes(ctx, kind)
	}
	log.Info().Str("kind", string(kind)).Float64("price", newPrice).Int("rooms", n).Msg("price changed")
	return n
}

func (s *BookingService) invalidateQuotes(ctx context.Context, kind domain.RoomKind) {
	for _, ck := range []domain.CustomerKind{domain.Regular, domain.Occasional} {
		_ = s.cache.Del(ctx, quoteKey(kind, ck))
	}
}
