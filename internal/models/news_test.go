package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsResultJSON(t *testing.T) {
	t.Run("EmptySuccessHasNullError", func(t *testing.T) {
		data, err := json.Marshal(NewNewsResult(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"news_items": [], "error_message": null}`, string(data))
	})

	t.Run("ErrorResultHasNoItems", func(t *testing.T) {
		result := NewErrorResult("unable to fetch news: 503")

		assert.True(t, result.HasError())
		assert.Empty(t, result.NewsItems)

		data, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{"news_items": [], "error_message": "unable to fetch news: 503"}`, string(data))
	})

	t.Run("ItemFieldNames", func(t *testing.T) {
		result := NewNewsResult([]NewsItem{{
			Title:        "標題",
			Content:      "<p>內容</p>",
			URL:          "https://example.com/1",
			PublishDate:  "2025-01-22",
			ModifiedDate: "2025-01-23",
			AttachmentFiles: []AttachmentFile{
				{Filename: "a.png", FileDescription: "a", FileURL: "https://example.com/a.png"},
			},
		}, {
			Title: "no attachments",
		}})

		assert.False(t, result.HasError())
		assert.Equal(t, "", result.Message())

		_, isError := interface{}(result).(error)
		assert.False(t, isError)

		data, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"news_items": [
				{
					"title": "標題",
					"content": "<p>內容</p>",
					"url": "https://example.com/1",
					"attachment_files": [
						{"filename": "a.png", "file_description": "a", "file_url": "https://example.com/a.png"}
					],
					"publish_date": "2025-01-22",
					"modified_date": "2025-01-23"
				},
				{
					"title": "no attachments",
					"content": "",
					"url": "",
					"attachment_files": [],
					"publish_date": "",
					"modified_date": ""
				}
			],
			"error_message": null
		}`, string(data))
	})
}
