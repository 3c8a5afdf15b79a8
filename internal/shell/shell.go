// Package shell is the interactive front desk. It owns every prompt, every
// parse of user keystrokes and all currency formatting; the core services
// only ever see validated, typed arguments.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hoteldesk/internal/app"
	"hoteldesk/internal/domain"
)

type Shell struct {
	q   *app.QueryService
	b   *app.BookingService
	in  *bufio.Scanner
	out io.Writer

	hotelName string
}

func New(q *app.QueryService, b *app.BookingService, hotelName string, in io.Reader, out io.Writer) *Shell {
	return &Shell{q: q, b: b, in: bufio.NewScanner(in), out: out, hotelName: hotelName}
}

// Run loops the menu until option 0 or EOF on input.
func (s *Shell) Run(ctx context.Context) {
	for {
		fmt.Fprintf(s.out, "\n=== Front Desk — %s ===\n", s.hotelName)
		fmt.Fprintln(s.out, "1) List available rooms by type")
		fmt.Fprintln(s.out, "2) Quote price for a type (regular/occasional aware)")
		fmt.Fprintln(s.out, "3) Reserve a room by number")
		fmt.Fprintln(s.out, "4) Change price by type")
		fmt.Fprintln(s.out, "0) Exit")

		opt, ok := s.prompt("Option: ")
		if !ok {
			return
		}
		switch opt {
		case "0":
			fmt.Fprintln(s.out, "Goodbye!")
			return
		case "1":
			s.listByType()
		case "2":
			s.quote(ctx)
		case "3":
			s.reserve(ctx)
		case "4":
			s.changePrice(ctx)
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// chooseKind resolves a room-type tag from text; nil means invalid input.
func (s *Shell) chooseKind() *domain.RoomKind {
	fmt.Fprintln(s.out, "\nTypes: single / double / suite")
	t, ok := s.prompt("Room type: ")
	if !ok {
		return nil
	}
	var k domain.RoomKind
	switch strings.ToLower(t) {
	case "single":
		k = domain.KindSingle
	case "double":
		k = domain.KindDouble
	case "suite":
		k = domain.KindSuite
	default:
		fmt.Fprintln(s.out, "Invalid type.")
		return nil
	}
	return &k
}

// readCustomer collects customer data and announces the classification,
// like the desk clerk would.
func (s *Shell) readCustomer() (domain.Customer, bool) {
	fmt.Fprintln(s.out, "\n=== Customer details ===")
	name, ok := s.prompt("Name: ")
	if !ok {
		return domain.Customer{}, false
	}
	address, ok := s.prompt("Address: ")
	if !ok {
		return domain.Customer{}, false
	}
	phone, ok := s.prompt("Phone: ")
	if !ok {
		return domain.Customer{}, false
	}
	c := s.q.Classify(name, address, phone)
	if c.Kind == domain.Regular {
		fmt.Fprintln(s.out, "Regular customer detected.")
	} else {
		fmt.Fprintln(s.out, "Occasional customer, let them know about current promotions.")
	}
	return c, true
}

func (s *Shell) listByType() {
	kind := s.chooseKind()
	if kind == nil {
		return
	}
	rooms := s.q.ListAvailable(kind)
	if len(rooms) == 0 {
		fmt.Fprintln(s.out, "No rooms available for that criteria.")
		return
	}
	fmt.Fprintln(s.out, "\nAvailable:")
	for _, r := range rooms {
		fmt.Fprintf(s.out, "- %s #%d — price: %s — AVAILABLE\n", r.Kind, r.Number, FormatPrice(r.Price))
	}
}

func (s *Shell) quote(ctx context.Context) {
	customer, ok := s.readCustomer()
	if !ok {
		return
	}
	kind := s.chooseKind()
	if kind == nil {
		return
	}
	q, err := s.q.QuotePrice(ctx, *kind, customer)
	if err != nil {
		if errors.Is(err, domain.ErrTypeNotFound) {
			fmt.Fprintln(s.out, "No rooms of that type in the system.")
			return
		}
		fmt.Fprintln(s.out, "Could not quote:", err)
		return
	}
	if customer.Kind == domain.Regular {
		fmt.Fprintf(s.out, "Base price for %s: %s\n", *kind, FormatPrice(q.BasePrice))
		fmt.Fprintf(s.out, "Regular customer with %g%% discount => final price: %s\n", q.DiscountPercent, FormatPrice(q.FinalPrice))
	} else {
		fmt.Fprintf(s.out, "Price for %s: %s\n", *kind, FormatPrice(q.BasePrice))
	}
}

func (s *Shell) reserve(ctx context.Context) {
	customer, ok := s.readCustomer()
	if !ok {
		return
	}
	numberTxt, ok := s.prompt("Room number to reserve: ")
	if !ok {
		return
	}
	nightsTxt, ok := s.prompt("Number of nights: ")
	if !ok {
		return
	}
	number, err1 := strconv.Atoi(numberTxt)
	nights, err2 := strconv.Atoi(nightsTxt)
	if err1 != nil || err2 != nil || number <= 0 || nights <= 0 {
		fmt.Fprintln(s.out, "Invalid input.")
		return
	}

	res, err := s.b.Reserve(ctx, number, customer, today(), nights)
	if err != nil {
		fmt.Fprintln(s.out, "Could not reserve: invalid number or not available.")
		return
	}

	fmt.Fprintf(s.out, "Reservation confirmed for %s in room #%d for %d night(s).\n", customer.Name, res.RoomNumber, res.Nights)
	if customer.Kind == domain.Regular {
		final := domain.FinalPrice(res.RoomPrice, customer)
		fmt.Fprintf(s.out, "Base price: %s => discount %g%% => final price: %s\n",
			FormatPrice(res.RoomPrice), customer.DiscountPercent, FormatPrice(final))
	} else {
		fmt.Fprintf(s.out, "Price: %s\n", FormatPrice(res.RoomPrice))
	}
}

func (s *Shell) changePrice(ctx context.Context) {
	kind := s.chooseKind()
	if kind == nil {
		return
	}
	priceTxt, ok := s.prompt("New price: ")
	if !ok {
		return
	}
	price, err := strconv.ParseFloat(priceTxt, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid price.")
		return
	}
	n := s.b.ChangePrice(ctx, *kind, price)
	if n == 0 {
		fmt.Fprintln(s.out, "No rooms of that type to update.")
		return
	}
	fmt.Fprintf(s.out, "Price updated for %d %s room(s) to %s\n", n, *kind, FormatPrice(price))
}

// today is the reservation check-in date, at midnight UTC.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatPrice renders whole currency with thousand separators, e.g. $150,000.
func FormatPrice(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := strconv.FormatFloat(v, 'f', 0, 64)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
