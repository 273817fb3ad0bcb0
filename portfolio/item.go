package portfolio

// Link is one external link of a portfolio item.
type Link struct {
	Label string
	URL   string
}

// Item is one portfolio project row after coercion and filtering.
// ID is the zero-based rank among retained rows, not the spreadsheet row
// number. Rows whose title coerces to "" are dropped before ranking.
type Item struct {
	ID          int
	Date        string
	Title       string
	Description string
	ImageURL    string
	Tags        []string
	Links       []Link
	IsCommision bool
}
