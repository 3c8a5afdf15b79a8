package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"hoteldesk/internal/adapters/observability"
	"hoteldesk/internal/app"
	"hoteldesk/internal/shared"
	"hoteldesk/internal/shell"
)

// desk runs the interactive front-desk menu on stdin/stdout. It drives the
// same services as the API but without cache or metrics servers; logs go to
// stderr so they stay out of the menu stream.
func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLoggerTo("dev", os.Stderr)

	hotel := shared.SeedHotel()
	q := app.NewQueryService(hotel, nil, 0, cfg.RegularPhones, cfg.RegularDiscount)
	b := app.NewBookingService(hotel, nil)

	sh := shell.New(q, b, hotel.Name, os.Stdin, os.Stdout)
	sh.Run(context.Background())
}
