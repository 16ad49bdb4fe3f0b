// Package cinema orchestrates the movie, session and ticket
// repositories behind the use cases the menu exposes.
package cinema

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"cinema-manager/internal/cinema/qr"
	"cinema-manager/internal/csvstore"
	"cinema-manager/internal/logger"
	"cinema-manager/internal/models"
	"cinema-manager/internal/repository"
	"cinema-manager/internal/utils"
)

// FileStore is the slice of the codec the service needs. csvstore.Store
// implements it; tests swap in a mock.
type FileStore interface {
	ReadMovies(path string) ([]*models.Movie, []csvstore.SkippedRecord, error)
	ReadSessions(path string, movies csvstore.MovieLookup) ([]*models.Session, []csvstore.SkippedRecord, error)
	ReadTickets(path string, sessions csvstore.SessionLookup) ([]*models.Ticket, []csvstore.SkippedRecord, error)
	WriteMovies(path string, movies []*models.Movie) error
	WriteSessions(path string, sessions []*models.Session) error
	WriteTickets(path string, tickets []*models.Ticket) error
}

type CinemaService struct {
	Movies   *repository.MovieRepository
	Sessions *repository.SessionRepository
	Tickets  *repository.TicketRepository
	Store    FileStore
	Logger   *logger.Logger

	validate *validator.Validate
	qrGen    *qr.Generator
	qrDir    string
}

func NewCinemaService(movies *repository.MovieRepository, sessions *repository.SessionRepository,
	tickets *repository.TicketRepository, store FileStore, log *logger.Logger) *CinemaService {
	return &CinemaService{
		Movies:   movies,
		Sessions: sessions,
		Tickets:  tickets,
		Store:    store,
		Logger:   log,
		validate: validator.New(),
	}
}

// EnableQR turns on QR image generation for sold tickets. Images land
// under dir, one per ticket.
func (s *CinemaService) EnableQR(secret, dir string) {
	s.qrGen = qr.NewGenerator(secret)
	s.qrDir = dir
}

// SellTicket books the given seat on a session. The seat leaves the
// session's available list and the returned ticket references it; both
// happen together or not at all.
func (s *CinemaService) SellTicket(sessionID string, seat int) (*models.Ticket, error) {
	session, ok := s.Sessions.GetByID(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, repository.ErrNotFound)
	}
	if !s.Sessions.RemoveSeat(sessionID, seat) {
		return nil, fmt.Errorf("seat %d on session %s: %w", seat, sessionID, repository.ErrSeatNotAvailable)
	}

	ticket := &models.Ticket{
		ID:         utils.GenerateTicketID(),
		Session:    session,
		SeatNumber: seat,
		IssuedAt:   time.Now(),
	}

	if s.qrGen != nil {
		png, err := s.qrGen.EncryptedPNG(ticket)
		if err != nil {
			// The sale still goes through; the ticket just has no image.
			s.warnf("failed to generate QR for ticket %s: %v", ticket.ID, err)
		} else {
			ticket.QRCode = png
			if _, err := s.qrGen.WritePNG(s.qrDir, ticket); err != nil {
				s.warnf("failed to write QR for ticket %s: %v", ticket.ID, err)
			}
		}
	}

	s.Tickets.Add(ticket)
	if s.Logger != nil {
		s.Logger.LogTicket("SELL", ticket.ID, fmt.Sprintf("seat %d on session %s", seat, sessionID))
	}
	return ticket, nil
}

// RefundTicket removes the ticket and puts its seat back at the end of
// the owning session's available list.
func (s *CinemaService) RefundTicket(ticketID string) error {
	ticket := s.Tickets.RemoveByID(ticketID)
	if ticket == nil {
		return fmt.Errorf("ticket %s: %w", ticketID, repository.ErrNotFound)
	}
	s.Sessions.AddSeatBack(ticket.Session.ID, ticket.SeatNumber)
	if s.Logger != nil {
		s.Logger.LogTicket("REFUND", ticket.ID, fmt.Sprintf("seat %d on session %s", ticket.SeatNumber, ticket.Session.ID))
	}
	return nil
}

// EditMovie replaces the four mutable fields of a movie. The candidate
// record is validated before anything mutates, so a bad duration never
// touches the repository.
func (s *CinemaService) EditMovie(id, title, mtype string, duration int, description string) error {
	candidate := models.Movie{
		ID:          id,
		Title:       title,
		Type:        mtype,
		Duration:    duration,
		Description: description,
	}
	if err := s.validate.Struct(candidate); err != nil {
		return fmt.Errorf("invalid movie: %w", err)
	}
	if !s.Movies.Update(id, title, mtype, duration, description) {
		return fmt.Errorf("movie %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

// EditSession replaces the movie reference, showing time and seat list
// of a session. Fails without mutating when either the session or the
// referenced movie is unknown.
func (s *CinemaService) EditSession(id, movieID string, showingTime time.Time, seats []int) error {
	movie, ok := s.Movies.GetByID(movieID)
	if !ok {
		return fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}
	if !s.Sessions.Update(id, movie, showingTime, seats) {
		return fmt.Errorf("session %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (s *CinemaService) GetMovies() []*models.Movie {
	return s.Movies.GetAll()
}

func (s *CinemaService) GetSessionsByMovieID(movieID string) []*models.Session {
	return s.Sessions.GetByMovieID(movieID)
}

func (s *CinemaService) AvailableSeats(sessionID string) ([]int, error) {
	session, ok := s.Sessions.GetByID(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, repository.ErrNotFound)
	}
	return session.AvailableSeats, nil
}

// ImportData loads the three collections in dependency order: sessions
// resolve movies, tickets resolve sessions. Malformed records are
// logged and dropped; a broken cross-reference fails the import.
func (s *CinemaService) ImportData(moviesPath, sessionsPath, ticketsPath string) error {
	movies, skipped, err := s.Store.ReadMovies(moviesPath)
	if err != nil {
		return fmt.Errorf("import movies: %w", err)
	}
	s.logSkipped(moviesPath, skipped)
	for _, m := range movies {
		s.Movies.Add(m)
	}

	sessions, skipped, err := s.Store.ReadSessions(sessionsPath, s.Movies)
	if err != nil {
		return fmt.Errorf("import sessions: %w", err)
	}
	s.logSkipped(sessionsPath, skipped)
	for _, sess := range sessions {
		s.Sessions.Add(sess)
	}

	tickets, skipped, err := s.Store.ReadTickets(ticketsPath, s.Sessions)
	if err != nil {
		return fmt.Errorf("import tickets: %w", err)
	}
	s.logSkipped(ticketsPath, skipped)
	for _, t := range tickets {
		s.Tickets.Add(t)
	}

	if s.Logger != nil {
		s.Logger.LogImport(moviesPath, fmt.Sprintf("loaded %d movies, %d sessions, %d tickets",
			len(movies), len(sessions), len(tickets)))
	}
	return nil
}

// ExportData persists all three collections back to their files.
func (s *CinemaService) ExportData(moviesPath, sessionsPath, ticketsPath string) error {
	if err := s.Store.WriteMovies(moviesPath, s.Movies.GetAll()); err != nil {
		return fmt.Errorf("export movies: %w", err)
	}
	if err := s.Store.WriteSessions(sessionsPath, s.Sessions.GetAll()); err != nil {
		return fmt.Errorf("export sessions: %w", err)
	}
	if err := s.Store.WriteTickets(ticketsPath, s.Tickets.GetAll()); err != nil {
		return fmt.Errorf("export tickets: %w", err)
	}
	return nil
}

func (s *CinemaService) logSkipped(path string, skipped []csvstore.SkippedRecord) {
	if s.Logger == nil {
		return
	}
	for _, rec := range skipped {
		s.Logger.Warn("IMPORT", fmt.Sprintf("%s: skipped %s", path, rec))
	}
}

func (s *CinemaService) warnf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Warn("TICKET", fmt.Sprintf(format, args...))
	}
}
