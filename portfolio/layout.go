package portfolio

// LinkColumn is one named link column at a fixed 1-based position.
type LinkColumn struct {
	Label string
	Col   int
}

// Layout 은 시트 컬럼 배치 계약이다. 런타임에 헤더를 탐색하지 않고
// 빌드 타임에 고정된 오프셋을 쓴다. 변형은 선두 date 컬럼 유무 하나뿐이다.
type Layout struct {
	// DateCol is 0 when the layout has no date column.
	DateCol      int
	TitleCol     int
	DescCol      int
	ImageURLCol  int
	TagsCol      int
	CommisionCol int
	LinkCols     []LinkColumn

	columnCount int
}

// linkLabels is the fixed, ordered set of link columns that follow the base
// columns. Order here is order on the wire.
var linkLabels = []string{"store", "website", "video", "source", "article"}

// NewLayout builds the column layout for the chosen sheet variant.
func NewLayout(hasDateColumn bool) Layout {
	offset := 0
	l := Layout{}
	if hasDateColumn {
		l.DateCol = 1
		offset = 1
	}
	l.TitleCol = offset + 1
	l.DescCol = offset + 2
	l.ImageURLCol = offset + 3
	l.TagsCol = offset + 4
	l.CommisionCol = offset + 5

	for i, label := range linkLabels {
		l.LinkCols = append(l.LinkCols, LinkColumn{Label: label, Col: offset + 6 + i})
	}
	l.columnCount = offset + 5 + len(linkLabels)
	return l
}

// ColumnCount is the total width of the rectangular read.
func (l Layout) ColumnCount() int {
	return l.columnCount
}
