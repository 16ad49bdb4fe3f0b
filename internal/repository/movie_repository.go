package repository

import (
	"cinema-manager/internal/models"
)

type MovieRepository struct {
	byID  map[string]*models.Movie
	order []*models.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{byID: make(map[string]*models.Movie)}
}

// Add inserts a movie keyed by its ID. An existing movie with the same
// ID is replaced in place, keeping its original position.
func (r *MovieRepository) Add(m *models.Movie) {
	if old, ok := r.byID[m.ID]; ok {
		for i, e := range r.order {
			if e == old {
				r.order[i] = m
				break
			}
		}
		r.byID[m.ID] = m
		return
	}
	r.byID[m.ID] = m
	r.order = append(r.order, m)
}

func (r *MovieRepository) GetByID(id string) (*models.Movie, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// GetAll returns the movies in insertion order.
func (r *MovieRepository) GetAll() []*models.Movie {
	out := make([]*models.Movie, len(r.order))
	copy(out, r.order)
	return out
}

// Update replaces the mutable fields of the movie with the given ID.
// The ID itself never changes.
func (r *MovieRepository) Update(id, title, mtype string, duration int, description string) bool {
	m, ok := r.byID[id]
	if !ok {
		return false
	}
	m.Title = title
	m.Type = mtype
	m.Duration = duration
	m.Description = description
	return true
}
