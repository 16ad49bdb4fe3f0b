package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cinema-manager/internal/models"
	"cinema-manager/internal/repository"
)

func TestMovieRepositoryAddAndGet(t *testing.T) {
	repo := repository.NewMovieRepository()

	repo.Add(&models.Movie{ID: "M1", Title: "Inception", Type: "SciFi", Duration: 148})
	repo.Add(&models.Movie{ID: "M2", Title: "Up", Type: "Animation", Duration: 96})

	m, ok := repo.GetByID("M1")
	assert.True(t, ok)
	assert.Equal(t, "Inception", m.Title)

	_, ok = repo.GetByID("M3")
	assert.False(t, ok)

	all := repo.GetAll()
	assert.Len(t, all, 2)
	assert.Equal(t, "M1", all[0].ID)
	assert.Equal(t, "M2", all[1].ID)
}

func TestMovieRepositoryAddOverwritesSameID(t *testing.T) {
	repo := repository.NewMovieRepository()

	repo.Add(&models.Movie{ID: "M1", Title: "Inception", Duration: 148})
	repo.Add(&models.Movie{ID: "M2", Title: "Up", Duration: 96})
	repo.Add(&models.Movie{ID: "M1", Title: "Inception Director's Cut", Duration: 155})

	all := repo.GetAll()
	assert.Len(t, all, 2)
	// The replacement keeps the original position.
	assert.Equal(t, "M1", all[0].ID)
	assert.Equal(t, "Inception Director's Cut", all[0].Title)
}

func TestMovieRepositoryUpdate(t *testing.T) {
	repo := repository.NewMovieRepository()
	repo.Add(&models.Movie{ID: "M1", Title: "Inception", Type: "SciFi", Duration: 148, Description: "A dream"})

	ok := repo.Update("M1", "Inception", "Thriller", 150, "A dream within a dream")
	assert.True(t, ok)

	m, _ := repo.GetByID("M1")
	assert.Equal(t, "Thriller", m.Type)
	assert.Equal(t, 150, m.Duration)

	assert.False(t, repo.Update("M9", "x", "y", 1, "z"))
}

func TestSessionRepositoryGetByMovieID(t *testing.T) {
	movies := repository.NewMovieRepository()
	sessions := repository.NewSessionRepository()

	m1 := &models.Movie{ID: "M1", Title: "Inception", Duration: 148}
	m2 := &models.Movie{ID: "M2", Title: "Up", Duration: 96}
	movies.Add(m1)
	movies.Add(m2)

	sessions.Add(&models.Session{ID: "S1", Movie: m1, AvailableSeats: []int{1, 2}})
	sessions.Add(&models.Session{ID: "S2", Movie: m2, AvailableSeats: []int{1}})
	sessions.Add(&models.Session{ID: "S3", Movie: m1, AvailableSeats: []int{3}})

	got := sessions.GetByMovieID("M1")
	assert.Len(t, got, 2)
	assert.Equal(t, "S1", got[0].ID)
	assert.Equal(t, "S3", got[1].ID)

	assert.Empty(t, sessions.GetByMovieID("M9"))
}

func TestSessionRepositorySeatOperations(t *testing.T) {
	sessions := repository.NewSessionRepository()
	sessions.Add(&models.Session{ID: "S1", AvailableSeats: []int{1, 2, 3}})

	assert.True(t, sessions.RemoveSeat("S1", 2))
	s, _ := sessions.GetByID("S1")
	assert.Equal(t, []int{1, 3}, s.AvailableSeats)

	// Seat already gone.
	assert.False(t, sessions.RemoveSeat("S1", 2))
	// Unknown session.
	assert.False(t, sessions.RemoveSeat("S9", 1))

	// Restored seats go to the end of the list, not back in order.
	assert.True(t, sessions.AddSeatBack("S1", 2))
	assert.Equal(t, []int{1, 3, 2}, s.AvailableSeats)

	assert.False(t, sessions.AddSeatBack("S9", 1))
}

func TestSessionRepositoryUpdate(t *testing.T) {
	sessions := repository.NewSessionRepository()
	m1 := &models.Movie{ID: "M1", Duration: 148}
	m2 := &models.Movie{ID: "M2", Duration: 96}
	when := time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC)
	sessions.Add(&models.Session{ID: "S1", Movie: m1, ShowingTime: when, AvailableSeats: []int{1, 2}})

	later := when.Add(2 * time.Hour)
	assert.True(t, sessions.Update("S1", m2, later, []int{5, 6, 7}))

	s, _ := sessions.GetByID("S1")
	assert.Equal(t, "M2", s.Movie.ID)
	assert.Equal(t, later, s.ShowingTime)
	assert.Equal(t, []int{5, 6, 7}, s.AvailableSeats)

	assert.False(t, sessions.Update("S9", m1, later, nil))
}

func TestTicketRepositoryRemoveByID(t *testing.T) {
	tickets := repository.NewTicketRepository()
	session := &models.Session{ID: "S1"}

	tickets.Add(&models.Ticket{ID: "T1", Session: session, SeatNumber: 5})
	tickets.Add(&models.Ticket{ID: "T2", Session: session, SeatNumber: 6})

	removed := tickets.RemoveByID("T1")
	assert.NotNil(t, removed)
	assert.Equal(t, 5, removed.SeatNumber)

	_, ok := tickets.GetByID("T1")
	assert.False(t, ok)
	assert.Len(t, tickets.GetAll(), 1)

	assert.Nil(t, tickets.RemoveByID("T1"))
}

func TestUserRepositoryRejectsDuplicates(t *testing.T) {
	repo := repository.NewUserRepository()

	assert.NoError(t, repo.Add(&models.User{Username: "alice", Password: "secret"}))
	err := repo.Add(&models.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, repository.ErrUserExists)

	u, ok := repo.GetByUsername("alice")
	assert.True(t, ok)
	assert.Equal(t, "secret", u.Password)
	assert.Len(t, repo.GetAll(), 1)
}
