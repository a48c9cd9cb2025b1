package extract

import (
	"fmt"
	"time"
)

// Extractor runs the synchronous per-upload pipeline:
// classify -> locate years -> line items -> assemble -> sample fallback.
// The wall clock is injected so default year labeling is deterministic in
// tests.
type Extractor struct {
	Now func() time.Time
}

// NewExtractor returns an extractor on the system clock.
func NewExtractor() *Extractor {
	return &Extractor{Now: time.Now}
}

// ExtractWorkbook processes one uploaded file end to end. A parse failure of
// the container format is the only hard error; everything past that degrades
// locally (unknown sheets, zero cells, missing years) and, when nothing
// usable comes out, the result carries the sample series marked
// StatusSampleFallback instead of failing the request.
func (e *Extractor) ExtractWorkbook(filename string, data []byte) (*Result, error) {
	sheets, err := ReadWorkbook(filename, data)
	if err != nil {
		return nil, err
	}
	return e.ExtractSheets(filename, sheets), nil
}

// ExtractSheets runs the pipeline over already-parsed sheets.
func (e *Extractor) ExtractSheets(filename string, sheets []RawSheet) *Result {
	extracts, log := e.scanSheets(sheets)

	result := &Result{
		Status: StatusExtracted,
		Sheets: extracts,
		Log:    log,
		Series: Assemble(extracts),
	}

	if result.Series.IsEmpty() {
		result.Series = SampleSeries(filename, e.Now())
		result.Status = StatusSampleFallback
		result.Log = append(result.Log, fmt.Sprintf("no usable data in %s, substituting sample statement", filename))
	}

	return result
}

// ExtractFiles processes multiple uploads as one combined analysis. Each
// file extracts independently; sheet results merge in request order so the
// last file's values win deterministically for overlapping fields. The
// sample fallback triggers only when the combined result is empty.
func (e *Extractor) ExtractFiles(names []string, payloads [][]byte) (*Result, error) {
	combined := &Result{Status: StatusExtracted}

	var readable int
	for i, data := range payloads {
		sheets, err := ReadWorkbook(names[i], data)
		if err != nil {
			combined.Log = append(combined.Log, fmt.Sprintf("skipping %s: %v", names[i], err))
			continue
		}
		readable++
		extracts, log := e.scanSheets(sheets)
		combined.Sheets = append(combined.Sheets, extracts...)
		combined.Log = append(combined.Log, log...)
	}

	if readable == 0 {
		return nil, fmt.Errorf("none of the %d uploaded files could be parsed", len(payloads))
	}

	combined.Series = Assemble(combined.Sheets)
	if combined.Series.IsEmpty() {
		combined.Series = SampleSeries(names[0], e.Now())
		combined.Status = StatusSampleFallback
		combined.Log = append(combined.Log, "no usable data in any upload, substituting sample statement")
	}

	return combined, nil
}

// scanSheets classifies and extracts each sheet without assembling.
func (e *Extractor) scanSheets(sheets []RawSheet) ([]SheetExtract, []string) {
	var extracts []SheetExtract
	var log []string

	for _, sheet := range sheets {
		class := Classify(sheet)
		years := LocateYears(sheet)
		defaulted := false
		if len(years) == 0 {
			years = DefaultYears(e.Now())
			defaulted = true
		}

		fields, matches := ExtractLineItems(sheet, class, len(years))

		log = append(log, fmt.Sprintf("sheet %q: class=%s years=%v fields=%d", sheet.Name, class, years, len(fields)))
		log = append(log, matches...)

		extracts = append(extracts, SheetExtract{
			SheetName:      sheet.Name,
			Class:          class,
			Years:          years,
			Fields:         fields,
			YearsDefaulted: defaulted,
		})
	}

	return extracts, log
}
