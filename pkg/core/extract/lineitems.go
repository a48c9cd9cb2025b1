package extract

import (
	"fmt"
	"strings"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

// ExtractLineItems matches row descriptions against the ordered pattern
// table for the sheet's classification and pulls the matched rows' numeric
// values, exactly n per field. Each field is recorded at most once: a later
// row matching an already-populated field does not overwrite it. Rows whose
// values are all zero are treated as noise and discarded.
//
// The returned log lines describe what matched, for upload-detail display.
func ExtractLineItems(sheet RawSheet, class Classification, n int) (map[models.CanonicalField][]float64, []string) {
	fields := make(map[models.CanonicalField][]float64)
	var log []string
	if n <= 0 {
		return fields, log
	}

	patterns := patternsFor(class)

	for _, row := range sheet.Rows {
		if len(row) < 2 {
			continue
		}
		desc := strings.ToLower(strings.TrimSpace(row[0]))
		if desc == "" {
			continue
		}

		for _, p := range patterns {
			if !p.re.MatchString(desc) {
				continue
			}
			if _, taken := fields[p.field]; taken {
				break // first match per field wins
			}

			values := NormalizeRow(row[1:], n)
			if allZero(values) {
				break
			}

			fields[p.field] = values
			log = append(log, fmt.Sprintf("matched %q -> %s", strings.TrimSpace(row[0]), p.field))
			break
		}
	}

	return fields, log
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v > 0 {
			return false
		}
	}
	return true
}
