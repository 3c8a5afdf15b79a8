package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Reservation binds a customer to a room for a stay. The room is referenced
// by its stable number, not by a second mutable handle; room state stays
// owned by the catalog. RoomPrice is the base price captured at booking time.
type Reservation struct {
	ID         string
	RoomNumber int
	RoomPrice  float64
	Customer   Customer
	CheckIn    time.Time
	Nights     int
}

// Hotel owns the room catalog and the reservation ledger. Both sequences
// keep insertion order. Operations hold the aggregate mutex so concurrent
// drivers cannot lose updates on the availability flag.
type Hotel struct {
	Name  string
	Stars int

	mu           sync.Mutex
	rooms        []Room
	reservations []Reservation
}

func New(name string, stars int) *Hotel {
	return &Hotel{Name: name, Stars: stars}
}

// AddRoom appends to the catalog. Number uniqueness is the caller's
// responsibility; duplicates are accepted and only the first available
// instance of a number is ever reachable through Reserve.
func (h *Hotel) AddRoom(r Room) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rooms = append(h.rooms, r)
}

// ListAvailable returns the available rooms in insertion order, optionally
// narrowed to one kind. An empty result is valid, never an error.
func (h *Hotel) ListAvailable(kind *RoomKind) []Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []Room
	for _, r := range h.rooms {
		if !r.Available {
			continue
		}
		if kind != nil && r.Kind != *kind {
			continue
		}
		out = append(out, r)
	}
	return out
}

// PriceForType returns the price of the first room of the given kind in
// insertion order. Rooms of one kind may carry different prices; this is a
// representative price, not an aggregate.
func (h *Hotel) PriceForType(kind RoomKind) (float64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.rooms {
		if r.Kind == kind {
			return r.Price, nil
		}
	}
	return 0, ErrTypeNotFound
}

// ChangePriceForType sets newPrice on every room of the given kind and
// returns how many rooms changed. Zero is a trivial success. The price is
// not validated; a negative value is accepted and propagated.
func (h *Hotel) ChangePriceForType(kind RoomKind, newPrice float64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for i := range h.rooms {
		if h.rooms[i].Kind == kind {
			h.rooms[i].Price = newPrice
			n++
		}
	}
	return n
}

// Reserve selects the first room in insertion order whose number matches
// and which is still available, marks it unavailable and appends a
// reservation. ErrRoomUnavailable covers both a wrong number and a room
// already reserved. A room never transitions back to available.
func (h *Hotel) Reserve(number int, c Customer, checkIn time.Time, nights int) (Reservation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.rooms {
		if h.rooms[i].Number != number || !h.rooms[i].Available {
			continue
		}
		h.rooms[i].Available = false
		res := Reservation{
			ID:         uuid.NewString(),
			RoomNumber: h.rooms[i].Number,
			RoomPrice:  h.rooms[i].Price,
			Customer:   c,
			CheckIn:    checkIn,
			Nights:     nights,
		}
		h.reservations = append(h.reservations, res)
		return res, nil
	}
	return Reservation{}, ErrRoomUnavailable
}

// Rooms returns a copy of the catalog in insertion order.
func (h *Hotel) Rooms() []Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Room, len(h.rooms))
	copy(out, h.rooms)
	return out
}

// Reservations returns a copy of the ledger in creation order.
func (h *Hotel) Reservations() []Reservation {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Reservation, len(h.reservations))
	copy(out, h.reservations)
	return out
}
