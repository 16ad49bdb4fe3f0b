package models

import (
	"time"
)

type Ticket struct {
	ID         string
	Session    *Session
	SeatNumber int

	// IssuedAt and QRCode are runtime bookkeeping; neither is persisted
	// in the ticket file.
	IssuedAt time.Time
	QRCode   []byte
}
