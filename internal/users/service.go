// Package users is the credential subsystem. It is deliberately
// separate from the cinema service: the two share nothing but the file
// format.
package users

import (
	"fmt"

	"cinema-manager/internal/csvstore"
	"cinema-manager/internal/logger"
	"cinema-manager/internal/models"
	"cinema-manager/internal/repository"
)

// FileStore is the slice of the codec the user service needs.
type FileStore interface {
	ReadUsers(path string) ([]*models.User, []csvstore.SkippedRecord, error)
	WriteUsers(path string, users []*models.User) error
}

type UserService struct {
	Users  *repository.UserRepository
	Store  FileStore
	Logger *logger.Logger
}

func NewUserService(users *repository.UserRepository, store FileStore, log *logger.Logger) *UserService {
	return &UserService{Users: users, Store: store, Logger: log}
}

// Authenticate checks the given pair against the stored credentials.
// Exact match only; no normalization of either value.
func (s *UserService) Authenticate(username, password string) bool {
	u, ok := s.Users.GetByUsername(username)
	if !ok {
		return false
	}
	return u.Password == password
}

// Register adds a new credential pair. Duplicate usernames and empty
// fields are rejected.
func (s *UserService) Register(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	if err := s.Users.Add(&models.User{Username: username, Password: password}); err != nil {
		return fmt.Errorf("register %s: %w", username, err)
	}
	if s.Logger != nil {
		s.Logger.LogUser("REGISTER", username)
	}
	return nil
}

func (s *UserService) ImportUsers(path string) error {
	users, skipped, err := s.Store.ReadUsers(path)
	if err != nil {
		return fmt.Errorf("import users: %w", err)
	}
	for _, rec := range skipped {
		if s.Logger != nil {
			s.Logger.Warn("IMPORT", fmt.Sprintf("%s: skipped %s", path, rec))
		}
	}
	for _, u := range users {
		// Later duplicates in the file lose to the first occurrence.
		if err := s.Users.Add(u); err != nil && s.Logger != nil {
			s.Logger.Warn("IMPORT", fmt.Sprintf("%s: duplicate username %s dropped", path, u.Username))
		}
	}
	return nil
}

func (s *UserService) ExportUsers(path string) error {
	if err := s.Store.WriteUsers(path, s.Users.GetAll()); err != nil {
		return fmt.Errorf("export users: %w", err)
	}
	return nil
}
