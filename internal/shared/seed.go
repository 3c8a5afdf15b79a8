package shared

import "hoteldesk/internal/domain"

// DefaultRegularPhones is the known repeat-customer phone list.
var DefaultRegularPhones = []string{"3001234567", "3210000000", "3111111111"}

// DefaultRegularDiscount is the percentage granted to classified regulars.
const DefaultRegularDiscount = 12.0

// SeedHotel builds the default catalog the binaries start with.
func SeedHotel() *domain.Hotel {
	h := domain.New("Hotel Cacique Toné", 4)

	h.AddRoom(domain.NewSingle(101, 150000, "foto101.jpg", true))
	h.AddRoom(domain.NewSingle(102, 145000, "foto102.jpg", false))

	h.AddRoom(domain.NewDouble(201, 240000, "foto201.jpg", domain.BedMatrimonial))
	h.AddRoom(domain.NewDouble(202, 230000, "foto202.jpg", domain.BedMixed))

	h.AddRoom(domain.NewSuite(301, 420000, "foto301.jpg", true, false, true))
	h.AddRoom(domain.NewSuite(302, 450000, "foto302.jpg", true, true, false))

	return h
}
