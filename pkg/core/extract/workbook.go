package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook parses uploaded file bytes into raw sheets. Format detection
// is try-in-order: modern xlsx via excelize, then legacy xls, then csv.
// Corrupt or unreadable sheets inside an otherwise valid workbook are
// skipped, not fatal.
func ReadWorkbook(filename string, data []byte) ([]RawSheet, error) {
	if f, err := excelize.OpenReader(bytes.NewReader(data)); err == nil {
		defer f.Close()
		var sheets []RawSheet
		for _, sheetName := range f.GetSheetList() {
			rows, err := f.GetRows(sheetName)
			if err != nil {
				continue
			}
			sheets = append(sheets, RawSheet{Name: sheetName, Rows: rows})
		}
		if len(sheets) > 0 {
			return sheets, nil
		}
		return nil, fmt.Errorf("workbook %s contains no readable sheets", filename)
	}

	if sheets, err := readLegacyXLS(filename, data); err == nil {
		return sheets, nil
	}

	if sheets, err := readCSV(filename, data); err == nil {
		return sheets, nil
	}

	return nil, fmt.Errorf("unsupported or corrupt spreadsheet: %s", filename)
}

// readLegacyXLS parses pre-2007 Excel files. xlsReader works with file
// paths, so the upload is staged through a temp file.
func readLegacyXLS(filename string, data []byte) ([]RawSheet, error) {
	tmp, err := os.CreateTemp("", "upload-*.xls")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	book, err := xls.OpenFile(tmp.Name())
	if err != nil {
		return nil, err
	}

	var sheets []RawSheet
	for i := 0; i < book.GetNumberSheets(); i++ {
		sheet, err := book.GetSheet(i)
		if err != nil {
			continue
		}
		var rows [][]string
		for _, xlsRow := range sheet.GetRows() {
			var cells []string
			for _, col := range xlsRow.GetCols() {
				cells = append(cells, col.GetString())
			}
			rows = append(rows, cells)
		}
		sheets = append(sheets, RawSheet{Name: sheet.GetName(), Rows: rows})
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xls %s contains no readable sheets", filename)
	}
	return sheets, nil
}

func readCSV(filename string, data []byte) ([]RawSheet, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv %s is empty", filename)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return []RawSheet{{Name: name, Rows: rows}}, nil
}
