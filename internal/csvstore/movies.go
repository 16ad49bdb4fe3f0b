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

// DecodeMovies parses movie records: id,title,type,duration,description.
// Malformed lines are skipped and reported, not fatal.
func DecodeMovies(r io.Reader) ([]*models.Movie, []SkippedRecord, error) {
	var movies []*models.Movie
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
		if len(fields) != 5 {
			skipped = append(skipped, SkippedRecord{line, fmt.Sprintf("expected 5 fields, got %d", len(fields))})
			continue
		}
		duration, err := strconv.Atoi(fields[3])
		if err != nil {
			skipped = append(skipped, SkippedRecord{line, fmt.Sprintf("invalid duration %q", fields[3])})
			continue
		}
		movies = append(movies, &models.Movie{
			ID:          fields[0],
			Title:       fields[1],
			Type:        fields[2],
			Duration:    duration,
			Description: fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read movies: %w", err)
	}
	return movies, skipped, nil
}

// EncodeMovies writes one line per movie in collection order, fields in
// the same order the decoder expects.
func EncodeMovies(w io.Writer, movies []*models.Movie) error {
	for _, m := range movies {
		for _, f := range []string{m.ID, m.Title, m.Type, m.Description} {
			if err := checkField(f); err != nil {
				return fmt.Errorf("movie %s: %w", m.ID, err)
			}
		}
		_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%s\n", m.ID, m.Title, m.Type, m.Duration, m.Description)
		if err != nil {
			return fmt.Errorf("write movie %s: %w", m.ID, err)
		}
	}
	return nil
}

func (s *Store) ReadMovies(path string) ([]*models.Movie, []SkippedRecord, error) {
	f, err := openIfExists(path)
	if err != nil || f == nil {
		return nil, nil, err
	}
	defer f.Close()
	return DecodeMovies(f)
}

func (s *Store) WriteMovies(path string, movies []*models.Movie) error {
	var b strings.Builder
	if err := EncodeMovies(&b, movies); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
