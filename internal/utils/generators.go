package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateTicketID returns a fresh ticket identifier. The prefix keeps
// ticket ids recognizable next to the caller-supplied movie and
// session ids in the flat files.
func GenerateTicketID() string {
	return fmt.Sprintf("tkt_%s", uuid.New().String())
}
