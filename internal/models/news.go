package models

// AttachmentFile represents a file attached to a news article
type AttachmentFile struct {
	Filename        string `json:"filename"`
	FileDescription string `json:"file_description"`
	FileURL         string `json:"file_url"`
}

// NewsItem represents one normalized news article
type NewsItem struct {
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	URL             string           `json:"url"`
	AttachmentFiles []AttachmentFile `json:"attachment_files"`
	PublishDate     string           `json:"publish_date"`
	ModifiedDate    string           `json:"modified_date"`
}

// NewsResult is the body returned to callers. ErrorMessage is serialized as
// null when unset and is never set together with a non-empty NewsItems.
type NewsResult struct {
	NewsItems    []NewsItem `json:"news_items"`
	ErrorMessage *string    `json:"error_message"`
}

// NewNewsResult creates a successful result holding items in upstream order
func NewNewsResult(items []NewsItem) *NewsResult {
	normalized := make([]NewsItem, len(items))
	for i, item := range items {
		if item.AttachmentFiles == nil {
			item.AttachmentFiles = []AttachmentFile{}
		}
		normalized[i] = item
	}

	return &NewsResult{
		NewsItems: normalized,
	}
}

// NewErrorResult creates a failed result with no items
func NewErrorResult(message string) *NewsResult {
	return &NewsResult{
		NewsItems:    []NewsItem{},
		ErrorMessage: &message,
	}
}

// HasError reports whether the result carries an error message
func (r *NewsResult) HasError() bool {
	return r.ErrorMessage != nil
}

// Message returns the error message, or an empty string on success
func (r *NewsResult) Message() string {
	if r.ErrorMessage == nil {
		return ""
	}
	return *r.ErrorMessage
}
