package repository

import (
	"cinema-manager/internal/models"
)

type UserRepository struct {
	byName map[string]*models.User
	order  []*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byName: make(map[string]*models.User)}
}

// Add stores a credential pair. Registering a username that already
// exists is rejected with ErrUserExists.
func (r *UserRepository) Add(u *models.User) error {
	if _, ok := r.byName[u.Username]; ok {
		return ErrUserExists
	}
	r.byName[u.Username] = u
	r.order = append(r.order, u)
	return nil
}

func (r *UserRepository) GetByUsername(name string) (*models.User, bool) {
	u, ok := r.byName[name]
	return u, ok
}

func (r *UserRepository) GetAll() []*models.User {
	out := make([]*models.User, len(r.order))
	copy(out, r.order)
	return out
}
