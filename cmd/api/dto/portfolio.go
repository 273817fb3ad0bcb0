package dto

// PortfolioItemDTO exposes one portfolio project row to API consumers.
// Field names (including the isCommision spelling) are a published wire
// contract and must not be renamed.
type PortfolioItemDTO struct {
	ID          int       `json:"id"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Tags        []string  `json:"tags"`
	Links       []LinkDTO `json:"links"`
	IsCommision bool      `json:"isCommision"`
}

// LinkDTO is one external link of a portfolio item.
type LinkDTO struct {
	Label string `json:"label" example:"website"`
	URL   string `json:"url" example:"https://example.com"`
}

// ImageFileDTO is one base64-encoded image from the gallery folder.
type ImageFileDTO struct {
	Name     string `json:"name" example:"images/cover.png"`
	MimeType string `json:"mimeType" example:"image/png"`
	Data     string `json:"data"`
}
