package sheet

import "time"

// CellKind 는 셀 값의 대략적인 타입이다. 날짜 셀과 문자열 셀을 구분하는 것이
// 핵심 목적이고, 나머지는 문자열화된 값으로 충분하다.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

// Cell is one spreadsheet cell with enough type information preserved to
// tell a real date value apart from a date-looking string.
type Cell struct {
	Kind CellKind

	// Text is the formatted value as the spreadsheet UI would show it.
	// Valid for every kind; empty for KindEmpty.
	Text string

	// Number is set for KindNumber.
	Number float64

	// Bool is set for KindBool.
	Bool bool

	// Time is set for KindTime.
	Time time.Time
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}
