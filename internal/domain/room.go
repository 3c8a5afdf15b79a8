package domain

// RoomKind tags a room variant. Filtering "by type" anywhere in the
// system is a tag comparison on this value.
type RoomKind string

const (
	KindSingle RoomKind = "single"
	KindDouble RoomKind = "double"
	KindSuite  RoomKind = "suite"
)

// BedType applies to double rooms only.
type BedType string

const (
	BedMatrimonial BedType = "matrimonial"
	BedMixed       BedType = "mixed"
)

// Room is a single catalog entry. Only the option fields matching Kind
// are meaningful; the rest stay at their zero value.
type Room struct {
	Number    int
	Kind      RoomKind
	Price     float64
	PhotoRef  string
	Available bool

	// single
	Exterior bool
	// double
	Bed BedType
	// suite
	Bathtub bool
	Sauna   bool
	View    bool
}

func NewSingle(number int, price float64, photoRef string, exterior bool) Room {
	return Room{Number: number, Kind: KindSingle, Price: price, PhotoRef: photoRef, Available: true, Exterior: exterior}
}

func NewDouble(number int, price float64, photoRef string, bed BedType) Room {
	return Room{Number: number, Kind: KindDouble, Price: price, PhotoRef: photoRef, Available: true, Bed: bed}
}

func NewSuite(number int, price float64, photoRef string, bathtub, sauna, view bool) Room {
	return Room{Number: number, Kind: KindSuite, Price: price, PhotoRef: photoRef, Available: true, Bathtub: bathtub, Sauna: sauna, View: view}
}
