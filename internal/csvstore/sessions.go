package csvstore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"cinema-manager/internal/models"
)

// MovieLookup resolves a movie reference while session records decode.
// *repository.MovieRepository satisfies it.
type MovieLookup interface {
	GetByID(id string) (*models.Movie, bool)
}

// DecodeSessions parses session records: id,movieId,showingTime,seats.
// The showing time uses models.ShowingTimeLayout and the seat list is
// semicolon-joined. Movie references must resolve against an already
// populated movie collection; a dangling reference aborts the decode
// with ErrUnknownReference since sessions are meaningless without
// their movie.
func DecodeSessions(r io.Reader, movies MovieLookup) ([]*models.Session, []SkippedRecord, error) {
	var sessions []*models.Session
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
		if len(fields) != 4 {
			skipped = append(skipped, SkippedRecord{line, fmt.Sprintf("expected 4 fields, got %d", len(fields))})
			continue
		}
		movie, ok := movies.GetByID(fields[1])
		if !ok {
			return nil, skipped, fmt.Errorf("sessions line %d: %w: movie %q", line, ErrUnknownReference, fields[1])
		}
		showingTime, err := time.Parse(models.ShowingTimeLayout, fields[2])
		if err != nil {
			skipped = append(skipped, SkippedRecord{line, fmt.Sprintf("invalid showing time %q", fields[2])})
			continue
		}
		seats, err := parseSeats(fields[3])
		if err != nil {
			skipped = append(skipped, SkippedRecord{line, fmt.Sprintf("invalid seat list %q", fields[3])})
			continue
		}
		sessions = append(sessions, &models.Session{
			ID:             fields[0],
			Movie:          movie,
			ShowingTime:    showingTime,
			AvailableSeats: seats,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read sessions: %w", err)
	}
	return sessions, skipped, nil
}

// EncodeSessions writes one line per session in collection order.
func EncodeSessions(w io.Writer, sessions []*models.Session) error {
	for _, s := range sessions {
		for _, f := range []string{s.ID, s.Movie.ID} {
			if err := checkField(f); err != nil {
				return fmt.Errorf("session %s: %w", s.ID, err)
			}
		}
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s\n",
			s.ID, s.Movie.ID,
			s.ShowingTime.Format(models.ShowingTimeLayout),
			formatSeats(s.AvailableSeats))
		if err != nil {
			return fmt.Errorf("write session %s: %w", s.ID, err)
		}
	}
	return nil
}

func parseSeats(field string) ([]int, error) {
	if field == "" {
		return nil, nil
	}
	parts := strings.Split(field, seatSep)
	seats := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		seats = append(seats, n)
	}
	return seats, nil
}

func formatSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, n := range seats {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, seatSep)
}

func (s *Store) ReadSessions(path string, movies MovieLookup) ([]*models.Session, []SkippedRecord, error) {
	f, err := openIfExists(path)
	if err != nil || f == nil {
		return nil, nil, err
	}
	defer f.Close()
	return DecodeSessions(f, movies)
}

func (s *Store) WriteSessions(path string, sessions []*models.Session) error {
	var b strings.Builder
	if err := EncodeSessions(&b, sessions); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
