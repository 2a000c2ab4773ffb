// Package csvdemo reads the community demo schedule CSV.
//
// The first row is a sentinel holding the youtube watch URL in its first
// column; every later row is [title, nick, "MM:SS" offset, optional version].
package csvdemo

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmbouter/pulp-demos/internal/domain"
)

// Ensure Reader implements domain.ScheduleReader.
var _ domain.ScheduleReader = (*Reader)(nil)

// Reader reads demo schedules from the file system.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadSchedule parses the demo schedule at path.
func (*Reader) ReadSchedule(path string) (slug string, demos []domain.Demo, err error) {
	return ReadFile(path)
}

// ReadFile parses the demo schedule at path.
func ReadFile(path string) (slug string, demos []domain.Demo, err error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the --filename flag
	if err != nil {
		return "", nil, fmt.Errorf("open demo file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// Read parses a demo schedule from r.
func Read(r io.Reader) (slug string, demos []domain.Demo, err error) {
	reader := csv.NewReader(r)
	// Rows have 3 or 4 columns; let each record decide.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return "", nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return "", nil, domain.ErrMissingVideoLink
	}

	slug, err = videoSlug(rows[0][0])
	if err != nil {
		return "", nil, err
	}

	for i, row := range rows[1:] {
		demo, err := parseRow(row)
		if err != nil {
			// Row numbers are 1-based and include the sentinel row.
			return "", nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		demos = append(demos, demo)
	}
	return slug, demos, nil
}

// videoSlug extracts the video identifier after "?v=" from a watch URL.
func videoSlug(link string) (string, error) {
	_, slug, ok := strings.Cut(link, "?v=")
	if !ok || slug == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrMissingVideoLink, link)
	}
	return slug, nil
}

func parseRow(row []string) (domain.Demo, error) {
	if len(row) < 3 {
		return domain.Demo{}, domain.ErrMalformedRow
	}
	min, sec, err := domain.ParseDuration(row[2])
	if err != nil {
		return domain.Demo{}, err
	}
	demo := domain.Demo{
		Title: row[0],
		Nick:  row[1],
		Min:   min,
		Sec:   sec,
	}
	if len(row) > 3 {
		demo.Version = row[3]
	}
	return demo, nil
}
