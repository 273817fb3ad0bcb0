package portfolio

import (
	"time"

	"portfolio-api/sheet"
)

// BuildItems maps a rectangular cell grid (data rows only, header excluded)
// onto portfolio items. Rows whose title coerces to "" are dropped entirely
// and do not consume an id slot; ids are contiguous from 0 in source order.
func BuildItems(rows [][]sheet.Cell, layout Layout, loc *time.Location) []Item {
	items := make([]Item, 0, len(rows))

	for _, row := range rows {
		title := CoerceString(cellAt(row, layout.TitleCol))
		if title == "" {
			continue
		}

		item := Item{
			ID:          len(items),
			Title:       title,
			Description: CoerceString(cellAt(row, layout.DescCol)),
			ImageURL:    CoerceString(cellAt(row, layout.ImageURLCol)),
			Tags:        ParseTags(CoerceString(cellAt(row, layout.TagsCol))),
			IsCommision: ParseBool(cellAt(row, layout.CommisionCol)),
			Links:       []Link{},
		}
		if layout.DateCol > 0 {
			item.Date = FormatDate(cellAt(row, layout.DateCol), loc)
		}

		// 링크 컬럼은 고정 순서대로 돌고, url 이 빈 항목은 내보내지 않는다.
		for _, lc := range layout.LinkCols {
			url := CoerceString(cellAt(row, lc.Col))
			if url == "" {
				continue
			}
			item.Links = append(item.Links, Link{Label: lc.Label, URL: url})
		}

		items = append(items, item)
	}

	return items
}

// cellAt returns the cell at a 1-based column, or an empty cell when the row
// is shorter than the layout.
func cellAt(row []sheet.Cell, col int) sheet.Cell {
	idx := col - 1
	if idx < 0 || idx >= len(row) {
		return sheet.Cell{Kind: sheet.KindEmpty}
	}
	return row[idx]
}
