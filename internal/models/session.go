package models

import (
	"time"
)

// ShowingTimeLayout is the wire format for showing times in the session
// file, equivalent to dd/MM/yyyy HH:mm. Seconds are not representable.
const ShowingTimeLayout = "02/01/2006 15:04"

type Session struct {
	ID             string
	Movie          *Movie
	ShowingTime    time.Time
	AvailableSeats []int
}
