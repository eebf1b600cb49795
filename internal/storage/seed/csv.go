// Package seed loads the boot-time review collection from a tabular file.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/github-code-quality-study/review-api-P03/internal/domain"
)

// LoadCSV reads reviews from a header-mapped CSV file. Location,
// Timestamp and ReviewBody columns are required; ReviewId is optional
// and generated when absent. Rows keep file order, which becomes the
// store's insertion order.
func LoadCSV(path string) ([]domain.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	header, err := rd.Read()
	if err != nil {
		return nil, fmt.Errorf("seed %s: read header: %w", path, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Location", "Timestamp", "ReviewBody"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("seed %s: missing column %q", path, required)
		}
	}
	idCol, hasID := col["ReviewId"]

	var out []domain.Review
	for line := 2; ; line++ {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("seed %s: line %d: %w", path, line, err)
		}
		r := domain.Review{
			Location:   row[col["Location"]],
			Timestamp:  row[col["Timestamp"]],
			ReviewBody: row[col["ReviewBody"]],
		}
		if hasID && row[idCol] != "" {
			r.ReviewID = row[idCol]
		} else {
			r.ReviewID = uuid.NewString()
		}
		out = append(out, r)
	}
	return out, nil
}
