package csvstore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cinema-manager/internal/models"
)

// SessionLookup resolves a session reference while ticket records
// decode. *repository.SessionRepository satisfies it.
type SessionLookup interface {
	GetByID(id string) (*models.Session, bool)
}

// DecodeTickets parses ticket records: id,sessionId,seatNumber. A
// ticket naming an unknown session aborts the decode, the same policy
// sessions apply to their movie references.
func DecodeTickets(r io.Reader, sessions SessionLookup) ([]*models.Ticket, []SkippedRecord, error) {
	var tickets []*models.Ticket
	var skipped []SkippedRecord

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		fields := strings.Split(text, fieldSep)
		if len(fields) != 3 {
			skipped = append(skipped, SkippedRecord{line, fmt.Sprintf("expected 3 fields, got %d", len(fields))})
			continue
		}
		session, ok := sessions.GetByID(fields[1])
		if !ok {
			return nil, skipped, fmt.Errorf("tickets line %d: %w: session %q", line, ErrUnknownReference, fields[1])
		}
		seat, err := strconv.Atoi(fields[2])
		if err != nil {
			skipped = append(skipped, SkippedRecord{line, fmt.Sprintf("invalid seat number %q", fields[2])})
			continue
		}
		tickets = append(tickets, &models.Ticket{
			ID:         fields[0],
			Session:    session,
			SeatNumber: seat,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read tickets: %w", err)
	}
	return tickets, skipped, nil
}

func EncodeTickets(w io.Writer, tickets []*models.Ticket) error {
	for _, t := range tickets {
		for _, f := range []string{t.ID, t.Session.ID} {
			if err := checkField(f); err != nil {
				return fmt.Errorf("ticket %s: %w", t.ID, err)
			}
		}
		_, err := fmt.Fprintf(w, "%s,%s,%d\n", t.ID, t.Session.ID, t.SeatNumber)
		if err != nil {
			return fmt.Errorf("write ticket %s: %w", t.ID, err)
		}
	}
	return nil
}

func (s *Store) ReadTickets(path string, sessions SessionLookup) ([]*models.Ticket, []SkippedRecord, error) {
	f, err := openIfExists(path)
	if err != nil || f == nil {
		return nil, nil, err
	}
	defer f.Close()
	return DecodeTickets(f, sessions)
}

func (s *Store) WriteTickets(path string, tickets []*models.Ticket) error {
	var b strings.Builder
	if err := EncodeTickets(&b, tickets); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
