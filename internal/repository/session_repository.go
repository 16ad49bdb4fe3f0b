package repository

import (
	"time"

	"cinema-manager/internal/models"
)

type SessionRepository struct {
	byID  map[string]*models.Session
	order []*models.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{byID: make(map[string]*models.Session)}
}

func (r *SessionRepository) Add(s *models.Session) {
	if old, ok := r.byID[s.ID]; ok {
		for i, e := range r.order {
			if e == old {
				r.order[i] = s
				break
			}
		}
		r.byID[s.ID] = s
		return
	}
	r.byID[s.ID] = s
	r.order = append(r.order, s)
}

func (r *SessionRepository) GetByID(id string) (*models.Session, bool) {
	s, ok := r.byID[id]
	return s, ok
}

func (r *SessionRepository) GetAll() []*models.Session {
	out := make([]*models.Session, len(r.order))
	copy(out, r.order)
	return out
}

// GetByMovieID returns all sessions showing the given movie, in
// insertion order. The result is empty when the movie has no sessions.
func (r *SessionRepository) GetByMovieID(movieID string) []*models.Session {
	var out []*models.Session
	for _, s := range r.order {
		if s.Movie != nil && s.Movie.ID == movieID {
			out = append(out, s)
		}
	}
	return out
}

// Update replaces the movie reference, showing time and seat list of
// the session wholesale.
func (r *SessionRepository) Update(id string, movie *models.Movie, showingTime time.Time, seats []int) bool {
	s, ok := r.byID[id]
	if !ok {
		return false
	}
	s.Movie = movie
	s.ShowingTime = showingTime
	s.AvailableSeats = seats
	return true
}

// RemoveSeat takes a single seat out of the session's available list.
// It returns false when the session is unknown or the seat is not in
// the list.
func (r *SessionRepository) RemoveSeat(sessionID string, seat int) bool {
	s, ok := r.byID[sessionID]
	if !ok {
		return false
	}
	for i, n := range s.AvailableSeats {
		if n == seat {
			s.AvailableSeats = append(s.AvailableSeats[:i], s.AvailableSeats[i+1:]...)
			return true
		}
	}
	return false
}

// AddSeatBack appends a seat to the end of the session's available
// list. The list is not re-sorted; a refunded seat shows up last.
func (r *SessionRepository) AddSeatBack(sessionID string, seat int) bool {
	s, ok := r.byID[sessionID]
	if !ok {
		return false
	}
	s.AvailableSeats = append(s.AvailableSeats, seat)
	return true
}
