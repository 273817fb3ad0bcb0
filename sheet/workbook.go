package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound 는 워크북 안에 요청한 이름의 시트가 없을 때 반환된다.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook 은 메모리에 로드된 XLSX 워크북이다.
// 원격 스토리지 왕복은 워크북 오브젝트를 통째로 한 번 가져오는 것뿐이고,
// 이후의 셀 접근은 전부 메모리 안에서 일어난다.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook parses an XLSX workbook from raw bytes.
func OpenWorkbook(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheet resolves a sheet by name. Returns ErrSheetNotFound when absent.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	idx, err := w.f.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sheet %q: %w", name, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return &Sheet{f: w.f, name: name}, nil
}

// Sheet 은 워크북 내 단일 시트에 대한 읽기 핸들이다.
type Sheet struct {
	f    *excelize.File
	name string
}

func (s *Sheet) Name() string {
	return s.name
}

// LastRow returns the 1-based index of the last populated row, 0 for an
// entirely empty sheet.
func (s *Sheet) LastRow() (int, error) {
	rows, err := s.f.GetRows(s.name)
	if err != nil {
		return 0, fmt.Errorf("failed to scan rows of %q: %w", s.name, err)
	}
	return len(rows), nil
}

// ReadRange reads the rectangular block rows r1..r2 x columns c1..c2
// (1-based, inclusive) as typed cells. Cells outside the populated area come
// back as KindEmpty.
func (s *Sheet) ReadRange(r1, c1, r2, c2 int) ([][]Cell, error) {
	if r2 < r1 || c2 < c1 {
		return nil, fmt.Errorf("invalid range (%d,%d)-(%d,%d)", r1, c1, r2, c2)
	}

	grid := make([][]Cell, 0, r2-r1+1)
	for row := r1; row <= r2; row++ {
		line := make([]Cell, 0, c2-c1+1)
		for col := c1; col <= c2; col++ {
			cell, err := s.readCell(col, row)
			if err != nil {
				return nil, err
			}
			line = append(line, cell)
		}
		grid = append(grid, line)
	}
	return grid, nil
}

func (s *Sheet) readCell(col, row int) (Cell, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, fmt.Errorf("bad coordinates (%d,%d): %w", col, row, err)
	}

	text, err := s.f.GetCellValue(s.name, axis)
	if err != nil {
		return Cell{}, fmt.Errorf("failed to read cell %s: %w", axis, err)
	}
	if text == "" {
		return Cell{Kind: KindEmpty}, nil
	}

	cellType, err := s.f.GetCellType(s.name, axis)
	if err != nil {
		return Cell{}, fmt.Errorf("failed to read type of cell %s: %w", axis, err)
	}

	switch cellType {
	case excelize.CellTypeBool:
		return Cell{Kind: KindBool, Text: text, Bool: strings.EqualFold(text, "TRUE")}, nil

	case excelize.CellTypeDate:
		// t="d" 셀은 드물지만 규격상 존재한다. 시리얼 변환 경로와 동일하게 다룬다.
		if t, err := s.cellTime(axis); err == nil {
			return Cell{Kind: KindTime, Text: text, Time: t}, nil
		}
		return Cell{Kind: KindString, Text: text}, nil

	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		raw, err := s.f.GetCellValue(s.name, axis, excelize.Options{RawCellValue: true})
		if err != nil {
			return Cell{}, fmt.Errorf("failed to read raw cell %s: %w", axis, err)
		}
		num, parseErr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if parseErr != nil {
			// 숫자 타입인데 숫자가 아니면 문자열로 취급한다.
			return Cell{Kind: KindString, Text: text}, nil
		}
		if isDate, err := s.hasDateFormat(axis); err == nil && isDate {
			if t, err := excelize.ExcelDateToTime(num, false); err == nil {
				return Cell{Kind: KindTime, Text: text, Time: t}, nil
			}
		}
		return Cell{Kind: KindNumber, Text: text, Number: num}, nil

	default:
		return Cell{Kind: KindString, Text: text}, nil
	}
}

// cellTime converts the cell's raw serial value into a time.
func (s *Sheet) cellTime(axis string) (time.Time, error) {
	raw, err := s.f.GetCellValue(s.name, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return time.Time{}, err
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return time.Time{}, err
	}
	return excelize.ExcelDateToTime(num, false)
}

// builtin date number formats per ECMA-376. Custom formats are matched by
// the presence of date tokens.
func (s *Sheet) hasDateFormat(axis string) (bool, error) {
	styleID, err := s.f.GetCellStyle(s.name, axis)
	if err != nil {
		return false, err
	}
	style, err := s.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}

	switch {
	case style.NumFmt >= 14 && style.NumFmt <= 22:
		return true, nil
	case style.NumFmt >= 45 && style.NumFmt <= 47:
		return true, nil
	}

	if style.CustomNumFmt != nil {
		return containsDateToken(*style.CustomNumFmt), nil
	}
	return false, nil
}

func containsDateToken(format string) bool {
	lower := strings.ToLower(format)
	for _, token := range []string{"yy", "mm", "dd", "h:", ":s"} {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
