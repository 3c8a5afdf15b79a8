package domain

import "errors"

var (
	// ErrTypeNotFound signals that no room of the requested kind exists.
	ErrTypeNotFound = errors.New("hoteldesk: no room of that type")
	// ErrRoomUnavailable signals that the requested room number does not
	// exist or is already reserved.
	ErrRoomUnavailable = errors.New("hoteldesk: room unavailable")
)
