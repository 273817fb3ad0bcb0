package services

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/config"
	"portfolio-api/portfolio"
	"portfolio-api/sheet"
	"portfolio-api/storage"
)

// PortfolioService encapsulates the items action: fetch the workbook object,
// read the configured sheet as one rectangular block and map rows to DTOs.
//
// - store: 워크북 오브젝트를 한 번의 GET 으로 가져온다. (원격 왕복 최소화)
type PortfolioService struct {
	store       storage.ObjectStore
	workbookKey string
	sheetName   string
	layout      portfolio.Layout
	loc         *time.Location
}

func NewPortfolioService(store storage.ObjectStore, sheetCfg config.SheetConfig, storageCfg config.StorageConfig) (*PortfolioService, error) {
	loc, err := time.LoadLocation(sheetCfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet timezone %q: %w", sheetCfg.Timezone, err)
	}

	return &PortfolioService{
		store:       store,
		workbookKey: storageCfg.WorkbookKey,
		sheetName:   sheetCfg.Name,
		layout:      portfolio.NewLayout(sheetCfg.HasDateColumn),
		loc:         loc,
	}, nil
}

// List returns every retained portfolio row in source order.
// A header-only or empty sheet yields an empty slice, not an error.
func (s *PortfolioService) List(ctx context.Context) ([]dto.PortfolioItemDTO, error) {
	obj, err := tracedGet(ctx, s.store, s.workbookKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workbook %s: %w", s.workbookKey, err)
	}

	wb, err := sheet.OpenWorkbook(obj.Data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sh, err := wb.Sheet(s.sheetName)
	if err != nil {
		return nil, err
	}

	lastRow, err := sh.LastRow()
	if err != nil {
		return nil, err
	}
	if lastRow <= 1 {
		// 헤더만 있거나 빈 시트는 정상적인 빈 결과다.
		return []dto.PortfolioItemDTO{}, nil
	}

	rows, err := sh.ReadRange(2, 1, lastRow, s.layout.ColumnCount())
	if err != nil {
		return nil, err
	}

	items := portfolio.BuildItems(rows, s.layout, s.loc)

	out := make([]dto.PortfolioItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, mapItem(it))
	}
	return out, nil
}

// mapItem converts a domain item into the public DTO.
func mapItem(it portfolio.Item) dto.PortfolioItemDTO {
	links := make([]dto.LinkDTO, 0, len(it.Links))
	for _, l := range it.Links {
		links = append(links, dto.LinkDTO{Label: l.Label, URL: l.URL})
	}
	return dto.PortfolioItemDTO{
		ID:          it.ID,
		Date:        it.Date,
		Title:       it.Title,
		Description: it.Description,
		ImageURL:    it.ImageURL,
		Tags:        it.Tags,
		Links:       links,
		IsCommision: it.IsCommision,
	}
}
