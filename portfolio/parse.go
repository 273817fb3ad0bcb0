package portfolio

import (
	"strings"
	"time"

	"portfolio-api/sheet"
)

// CoerceString collapses a cell to a plain string the blunt way: empty
// cells, false booleans and zero numbers all become "". Existing clients
// depend on this truthiness-style collapse for every base field, so it is
// part of the wire contract.
func CoerceString(c sheet.Cell) string {
	switch c.Kind {
	case sheet.KindEmpty:
		return ""
	case sheet.KindBool:
		if !c.Bool {
			return ""
		}
		return "true"
	case sheet.KindNumber:
		if c.Number == 0 {
			return ""
		}
		return c.Text
	default:
		return c.Text
	}
}

// FormatDate renders a date cell as yyyy-MM-dd in the given zone. Non-date
// cells pass through CoerceString unchanged, so a hand-typed "2023.01" stays
// as-is. 워크북의 시간값은 설정된 타임존의 벽시계 시간으로 취급한다.
func FormatDate(c sheet.Cell, loc *time.Location) string {
	if c.Kind != sheet.KindTime {
		return CoerceString(c)
	}
	t := c.Time
	local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	return local.Format("2006-01-02")
}

// ParseTags splits a comma separated tag cell. Pieces are trimmed and empty
// pieces are dropped: "React, TypeScript,  , GAS" -> [React TypeScript GAS].
// Always returns a non-nil slice so the JSON form is [] rather than null.
func ParseTags(s string) []string {
	tags := []string{}
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		tags = append(tags, piece)
	}
	return tags
}

// ParseBool coerces a cell to a boolean. A native boolean passes through.
// Empty cells and zero numbers are false. Anything else is stringified and
// lowercase-trimmed; only "true", "1" and "yes" count as true.
func ParseBool(c sheet.Cell) bool {
	switch c.Kind {
	case sheet.KindBool:
		return c.Bool
	case sheet.KindEmpty:
		return false
	case sheet.KindNumber:
		if c.Number == 0 {
			return false
		}
		return ParseBoolString(c.Text)
	default:
		return ParseBoolString(c.Text)
	}
}

// ParseBoolString applies the string half of ParseBool.
func ParseBoolString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
