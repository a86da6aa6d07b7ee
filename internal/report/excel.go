package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"StockRadar/internal/model"
)

// WriteError indicates the spreadsheet could not be produced. It is fatal to
// the run: a report is either written in full or not at all.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

const sheetName = "Stock Data"

var headers = []string{
	"Symbol", "Company", "Current Price",
	"52W High", "52W Low", "52W Position %",
	"3M High", "3M Low", "3M Position %",
	"1M High", "1M Low", "1M Position %",
	"Current vs All %", "Source",
}

// WriteExcel writes one row per successful outcome to a timestamped xlsx file
// in dir and returns its path. Failed symbols are excluded.
func WriteExcel(outcomes []model.Outcome, dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("Stock_Analysis_Report_%s.xlsx", now.Format("20060102_150405")))

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if err := writeTitle(f, now); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	if err := writeHeader(f); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	row := 4
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		if err := writeRow(f, row, o.Result); err != nil {
			return "", &WriteError{Path: path, Err: err}
		}
		row++
	}

	if err := styleData(f, row-1); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if err := f.SaveAs(path); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}

func writeTitle(f *excelize.File, now time.Time) error {
	title := fmt.Sprintf("Stock Analysis Report - %s", now.Format("02 January 2006, 03:04 PM"))
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(sheetName, "A1", "N1"); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "N1", style); err != nil {
		return err
	}
	return f.SetRowHeight(sheetName, 1, 30)
}

func writeHeader(f *excelize.File) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A3", "N3", style); err != nil {
		return err
	}
	if err := f.SetRowHeight(sheetName, 3, 40); err != nil {
		return err
	}
	// Column widths: ticker and company wider than the numeric columns.
	if err := f.SetColWidth(sheetName, "A", "A", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "M", 12); err != nil {
		return err
	}
	return f.SetColWidth(sheetName, "N", "N", 10)
}

func writeRow(f *excelize.File, row int, r *model.AnalysisResult) error {
	values := []interface{}{
		r.Symbol, r.Name, r.CurrentPrice,
		r.Week52.High, r.Week52.Low, r.Week52.PositionPct,
		r.Month3.High, r.Month3.Low, r.Month3.PositionPct,
		r.Month1.High, r.Month1.Low, r.Month1.PositionPct,
		r.AvgPositionPct, r.Source,
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// styleData applies borders, alignment, and number formats to the data rows.
func styleData(f *excelize.File, lastRow int) error {
	if lastRow < 4 {
		return nil
	}
	border := []excelize.Border{
		{Type: "left", Color: "D3D3D3", Style: 1},
		{Type: "right", Color: "D3D3D3", Style: 1},
		{Type: "top", Color: "D3D3D3", Style: 1},
		{Type: "bottom", Color: "D3D3D3", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	priceFmt := "#,##0.00"
	priceStyle, err := f.NewStyle(&excelize.Style{Border: border, Alignment: center, CustomNumFmt: &priceFmt})
	if err != nil {
		return err
	}
	pctFmt := "#,##0.0"
	pctStyle, err := f.NewStyle(&excelize.Style{Border: border, Alignment: center, CustomNumFmt: &pctFmt})
	if err != nil {
		return err
	}
	textStyle, err := f.NewStyle(&excelize.Style{Border: border, Alignment: center})
	if err != nil {
		return err
	}

	// Text, price, and percentage column groups.
	groups := []struct {
		from, to string
		style    int
	}{
		{"A", "B", textStyle},
		{"C", "E", priceStyle},
		{"F", "F", pctStyle},
		{"G", "H", priceStyle},
		{"I", "I", pctStyle},
		{"J", "K", priceStyle},
		{"L", "M", pctStyle},
		{"N", "N", textStyle},
	}
	for _, g := range groups {
		top := fmt.Sprintf("%s4", g.from)
		bottom := fmt.Sprintf("%s%d", g.to, lastRow)
		if err := f.SetCellStyle(sheetName, top, bottom, g.style); err != nil {
			return err
		}
	}
	return nil
}
