// Package sheet 以 excelize 輸出單一工作表的 .xlsx 報表
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Table 標題列、資料列與可選的合計列
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
	Totals  []any
}

// Write 標題列粗體並凍結第一列，回傳檔案內容
func Write(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, err
	}

	if err := writeRow(f, sheet, 1, toAny(table.Headers)); err != nil {
		return nil, err
	}
	if len(table.Headers) > 0 {
		lastCol, _ := excelize.CoordinatesToCellName(len(table.Headers), 1)
		if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range table.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if len(table.Totals) > 0 {
		totalRow := len(table.Rows) + 2
		if err := writeRow(f, sheet, totalRow, table.Totals); err != nil {
			return nil, err
		}
		totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, err
		}
		first, _ := excelize.CoordinatesToCellName(1, totalRow)
		last, _ := excelize.CoordinatesToCellName(len(table.Totals), totalRow)
		if err := f.SetCellStyle(sheet, first, last, totalStyle); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}
	if len(table.Headers) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(table.Headers))
		_ = f.SetColWidth(sheet, "A", lastCol, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
