package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// yearHeaderScanDepth limits the year search to the top of the sheet where
// column headers live.
const yearHeaderScanDepth = 10

// Decade-bounded heuristic: years before 2000 or after 2099 are not
// recognized.
var yearTokenRe = regexp.MustCompile(`\b20\d{2}\b`)

// LocateYears scans the first rows of a sheet for 4-digit year tokens and
// returns the ascending de-duplicated years of the first row that has any.
// Returns an empty slice when nothing is found; the caller substitutes a
// default labeling axis via DefaultYears.
func LocateYears(sheet RawSheet) []int {
	depth := yearHeaderScanDepth
	if len(sheet.Rows) < depth {
		depth = len(sheet.Rows)
	}

	for i := 0; i < depth; i++ {
		text := strings.Join(sheet.Rows[i], " ")
		tokens := yearTokenRe.FindAllString(text, -1)
		if len(tokens) == 0 {
			continue
		}

		seen := make(map[int]struct{}, len(tokens))
		years := make([]int, 0, len(tokens))
		for _, tok := range tokens {
			y, err := strconv.Atoi(tok)
			if err != nil {
				continue
			}
			if _, dup := seen[y]; dup {
				continue
			}
			seen[y] = struct{}{}
			years = append(years, y)
		}
		sort.Ints(years)
		return years
	}

	return []int{}
}

// DefaultYears labels a sheet with the current year and the two preceding
// ones when no year header was found. This is a labeling fallback only: it
// does not assert the data actually belongs to those years.
func DefaultYears(now time.Time) []int {
	y := now.Year()
	return []int{y - 2, y - 1, y}
}
