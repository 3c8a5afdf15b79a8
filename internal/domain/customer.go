package domain

// CustomerKind tags a customer variant. A customer never changes kind
// after construction.
type CustomerKind string

const (
	Regular    CustomerKind = "regular"
	Occasional CustomerKind = "occasional"
)

// DefaultRegularDiscount is applied when a regular customer is built
// directly rather than through Classify.
const DefaultRegularDiscount = 10.0

type Customer struct {
	Name    string
	Address string
	Phone   string
	Kind    CustomerKind

	// regular
	DiscountPercent float64
	// occasional
	WantsOffers bool
}

func NewRegular(name, address, phone string) Customer {
	return Customer{Name: name, Address: address, Phone: phone, Kind: Regular, DiscountPercent: DefaultRegularDiscount}
}

func NewOccasional(name, address, phone string, wantsOffers bool) Customer {
	return Customer{Name: name, Address: address, Phone: phone, Kind: Occasional, WantsOffers: wantsOffers}
}

// Classify decides the customer kind from phone membership in the known
// regular set. Regulars get regularDiscount; everyone else is occasional
// and always flagged for offers.
func Classify(name, address, phone string, knownRegularPhones map[string]struct{}, regularDiscount float64) Customer {
	if _, ok := knownRegularPhones[phone]; ok {
		c := NewRegular(name, address, phone)
		c.DiscountPercent = regularDiscount
		return c
	}
	return NewOccasional(name, address, phone, true)
}
