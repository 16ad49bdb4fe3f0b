package csvstore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"cinema-manager/internal/models"
)

// DecodeUsers parses credential records: username,password.
func DecodeUsers(r io.Reader) ([]*models.User, []SkippedRecord, error) {
	var users []*models.User
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
		if len(fields) != 2 {
			skipped = append(skipped, SkippedRecord{line, fmt.Sprintf("expected 2 fields, got %d", len(fields))})
			continue
		}
		users = append(users, &models.User{Username: fields[0], Password: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read users: %w", err)
	}
	return users, skipped, nil
}

func EncodeUsers(w io.Writer, users []*models.User) error {
	for _, u := range users {
		for _, f := range []string{u.Username, u.Password} {
			if err := checkField(f); err != nil {
				return fmt.Errorf("user %s: %w", u.Username, err)
			}
		}
		if _, err := fmt.Fprintf(w, "%s,%s\n", u.Username, u.Password); err != nil {
			return fmt.Errorf("write user %s: %w", u.Username, err)
		}
	}
	return nil
}

func (s *Store) ReadUsers(path string) ([]*models.User, []SkippedRecord, error) {
	f, err := openIfExists(path)
	if err != nil || f == nil {
		return nil, nil, err
	}
	defer f.Close()
	return DecodeUsers(f)
}

func (s *Store) WriteUsers(path string, users []*models.User) error {
	var b strings.Builder
	if err := EncodeUsers(&b, users); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
