package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"hoteldesk/internal/app"
	"hoteldesk/internal/domain"
)

type Handlers struct {
	Q            *app.QueryService
	B            *app.BookingService
	ReserveLimit *rate.Limiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/rooms", h.listRooms)
	s.mux.Get("/v1/rooms/price", h.quotePrice)
	s.mux.Put("/v1/rooms/price", h.changePrice)
	if h.ReserveLimit != nil {
		s.mux.With(RateLimit(h.ReserveLimit)).Post("/v1/reservations", h.reserve)
	} else {
		s.mux.Post("/v1/reservations", h.reserve)
	}
}

// parseKind resolves a room-type tag from text. The domain layer only ever
// sees the resolved tag.
func parseKind(s string) (domain.RoomKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return domain.KindSingle, true
	case "double":
		return domain.KindDouble, true
	case "suite":
		return domain.KindSuite, true
	}
	return "", false
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// ---- views ----

type roomView struct {
	Number   int     `json:"number"`
	Kind     string  `json:"kind"`
	Price    float64 `json:"price"`
	PhotoRef string  `json:"photoRef,omitempty"`
	Exterior *bool   `json:"exterior,omitempty"`
	Bed      *string `json:"bedType,omitempty"`
	Bathtub  *bool   `json:"bathtub,omitempty"`
	Sauna    *bool   `json:"sauna,omitempty"`
	View     *bool   `json:"view,omitempty"`
}

func toRoomView(r domain.Room) roomView {
	v := roomView{Number: r.Number, Kind: string(r.Kind), Price: r.Price, PhotoRef: r.PhotoRef}
	switch r.Kind {
	case domain.KindSingle:
		ext := r.Exterior
		v.Exterior = &ext
	case domain.KindDouble:
		bed := string(r.Bed)
		v.Bed = &bed
	case domain.KindSuite:
		bt, sa, vw := r.Bathtub, r.Sauna, r.View
		v.Bathtub, v.Sauna, v.View = &bt, &sa, &vw
	}
	return v
}

type quoteView struct {
	Kind            string  `json:"kind"`
	CustomerKind    string  `json:"customerKind"`
	DiscountPercent float64 `json:"discountPercent"`
	BasePrice       float64 `json:"basePrice"`
	FinalPrice      float64 `json:"finalPrice"`
}

type reservationView struct {
	ID           string    `json:"id"`
	RoomNumber   int       `json:"roomNumber"`
	CheckIn      time.Time `json:"checkIn"`
	Nights       int       `json:"nights"`
	CustomerName string    `json:"customerName"`
	CustomerKind string    `json:"customerKind"`
	BasePrice    float64   `json:"basePrice"`
	FinalPrice   float64   `json:"finalPrice"`
}

// ---- handlers ----

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	var kind *domain.RoomKind
	if ks := r.URL.Query().Get("kind"); ks != "" {
		k, ok := parseKind(ks)
		if !ok {
			writeProblem(w, http.StatusBadRequest, "Invalid kind", "kind must be single, double or suite")
			return
		}
		kind = &k
	}
	rooms := h.Q.ListAvailable(kind)
	out := make([]roomView, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, toRoomView(rm))
	}
	writeJSON(w, http.StatusOK, struct {
		Items []roomView `json:"items"`
	}{Items: out})
}

func (h *Handlers) quotePrice(w http.ResponseWriter, r *http.Request) {
	k, ok := parseKind(r.URL.Query().Get("kind"))
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid kind", "kind must be single, double or suite")
		return
	}
	customer := h.Q.Classify("", "", r.URL.Query().Get("phone"))
	q, err := h.Q.QuotePrice(r.Context(), k, customer)
	if err != nil {
		if errors.Is(err, domain.ErrTypeNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "no rooms of that type")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, quoteView{
		Kind:            string(q.Kind),
		CustomerKind:    string(q.CustomerKind),
		DiscountPercent: q.DiscountPercent,
		BasePrice:       q.BasePrice,
		FinalPrice:      q.FinalPrice,
	})
}

func (h *Handlers) reserve(w http.ResponseWriter, r *http.Request) {
	var in struct {
		RoomNumber int    `json:"roomNumber"`
		Nights     int    `json:"nights"`
		Name       string `json:"name"`
		Address    string `json:"address"`
		Phone      string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be valid JSON")
		return
	}
	if in.RoomNumber <= 0 || in.Nights <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid reservation", "roomNumber and nights must be positive")
		return
	}
	customer := h.Q.Classify(in.Name, in.Address, in.Phone)
	res, err := h.B.Reserve(r.Context(), in.RoomNumber, customer, time.Now().UTC(), in.Nights)
	if err != nil {
		if errors.Is(err, domain.ErrRoomUnavailable) {
			writeProblem(w, http.StatusConflict, "Room Unavailable", "room number invalid or already reserved")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, reservationView{
		ID:           res.ID,
		RoomNumber:   res.RoomNumber,
		CheckIn:      res.CheckIn,
		Nights:       res.Nights,
		CustomerName: res.Customer.Name,
		CustomerKind: string(res.Customer.Kind),
		BasePrice:    res.RoomPrice,
		FinalPrice:   domain.FinalPrice(res.RoomPrice, res.Customer),
	})
}

func (h *Handlers) changePrice(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Kind  string  `json:"kind"`
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be valid JSON")
		return
	}
	k, ok := parseKind(in.Kind)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid kind", "kind must be single, double or suite")
		return
	}
	n := h.B.ChangePrice(r.Context(), k, in.Price)
	writeJSON(w, http.StatusOK, struct {
		Kind    string  `json:"kind"`
		Price   float64 `json:"price"`
		Updated int     `json:"updated"`
	}{Kind: string(k), Price: in.Price, Updated: n})
}
