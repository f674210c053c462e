package newsapi

import (
	"bytes"
	"encoding/json"
	"errors"

	"hpa-news-api/internal/models"
)

// upstreamItem mirrors one element of the news API response. The keys are
// the literal field names published by the upstream.
type upstreamItem struct {
	Title        string                `json:"標題"`
	Content      string                `json:"內容"`
	URL          string                `json:"連結網址"`
	Attachments  []*upstreamAttachment `json:"附加檔案"`
	PublishDate  string                `json:"發布日期"`
	ModifiedDate string                `json:"修改日期"`
}

type upstreamAttachment struct {
	Filename    string `json:"檔案名稱"`
	Description string `json:"檔案說明"`
	URL         string `json:"連結位置"`
}

var errNotArray = errors.New("expected a JSON array of news items")

// MapNewsItems decodes a news API response body into news items. Missing or
// null fields become empty values; unknown fields are ignored.
func MapNewsItems(data []byte) ([]models.NewsItem, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}

	var raw []*upstreamItem
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, mapItem(r))
	}
	return items, nil
}

func mapItem(r *upstreamItem) models.NewsItem {
	if r == nil {
		return models.NewsItem{AttachmentFiles: []models.AttachmentFile{}}
	}

	files := make([]models.AttachmentFile, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		if a == nil {
			files = append(files, models.AttachmentFile{})
			continue
		}
		files = append(files, models.AttachmentFile{
			Filename:        a.Filename,
			FileDescription: a.Description,
			FileURL:         a.URL,
		})
	}

	return models.NewsItem{
		Title:           r.Title,
		Content:         r.Content,
		URL:             r.URL,
		AttachmentFiles: files,
		PublishDate:     r.PublishDate,
		ModifiedDate:    r.ModifiedDate,
	}
}
