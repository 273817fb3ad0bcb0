package portfolio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio-api/portfolio"
	"portfolio-api/sheet"
)

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"React", "TypeScript", "GAS"}, portfolio.ParseTags("React, TypeScript,  , GAS"))
	assert.Equal(t, []string{}, portfolio.ParseTags(""))
	assert.Equal(t, []string{"a", "b"}, portfolio.ParseTags("a,,b"))
	assert.Equal(t, []string{"solo"}, portfolio.ParseTags("  solo  "))
}

func TestParseTagsIdempotent(t *testing.T) {
	// 포맷 후 재파싱해도 결과가 같아야 한다.
	first := portfolio.ParseTags("React, TypeScript, GAS")
	second := portfolio.ParseTags("React,TypeScript,GAS")
	assert.Equal(t, first, second)
}

func TestParseBoolString(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		" True": true,
		"1":     true,
		"yes":   true,
		"YES ":  true,
		"no":    false,
		"false": false,
		"2":     false,
		"":      false,
		"maybe": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, portfolio.ParseBoolString(in), "input %q", in)
	}
}

func TestParseBool(t *testing.T) {
	assert.True(t, portfolio.ParseBool(sheet.Cell{Kind: sheet.KindBool, Bool: true}))
	assert.False(t, portfolio.ParseBool(sheet.Cell{Kind: sheet.KindBool, Bool: false}))
	assert.False(t, portfolio.ParseBool(sheet.Cell{Kind: sheet.KindEmpty}))
	assert.False(t, portfolio.ParseBool(sheet.Cell{Kind: sheet.KindNumber, Number: 0, Text: "0"}))
	assert.True(t, portfolio.ParseBool(sheet.Cell{Kind: sheet.KindNumber, Number: 1, Text: "1"}))
	assert.True(t, portfolio.ParseBool(sheet.Cell{Kind: sheet.KindString, Text: "TRUE"}))
	assert.False(t, portfolio.ParseBool(sheet.Cell{Kind: sheet.KindString, Text: "no"}))
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "", portfolio.CoerceString(sheet.Cell{Kind: sheet.KindEmpty}))
	assert.Equal(t, "hello", portfolio.CoerceString(sheet.Cell{Kind: sheet.KindString, Text: "hello"}))
	// 무딘 변환: false 와 0 은 빈 문자열로 무너진다.
	assert.Equal(t, "", portfolio.CoerceString(sheet.Cell{Kind: sheet.KindBool, Bool: false}))
	assert.Equal(t, "true", portfolio.CoerceString(sheet.Cell{Kind: sheet.KindBool, Bool: true}))
	assert.Equal(t, "", portfolio.CoerceString(sheet.Cell{Kind: sheet.KindNumber, Number: 0, Text: "0"}))
	assert.Equal(t, "42", portfolio.CoerceString(sheet.Cell{Kind: sheet.KindNumber, Number: 42, Text: "42"}))
}

func TestFormatDate(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	dateCell := sheet.Cell{
		Kind: sheet.KindTime,
		Text: "1/5/24",
		Time: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "2024-01-05", portfolio.FormatDate(dateCell, tokyo))

	// 문자열 셀은 그대로 통과한다.
	strCell := sheet.Cell{Kind: sheet.KindString, Text: "2023.01"}
	assert.Equal(t, "2023.01", portfolio.FormatDate(strCell, tokyo))

	// 빈 셀은 빈 문자열이다.
	assert.Equal(t, "", portfolio.FormatDate(sheet.Cell{Kind: sheet.KindEmpty}, tokyo))
}
