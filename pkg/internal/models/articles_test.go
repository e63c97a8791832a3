package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleListItemJSON(t *testing.T) {
	item := ArticleListItem{
		Article: Article{
			BaseModel: BaseModel{ID: 7, UpdatedAt: time.Now().Add(-(3*24 + 1) * time.Hour)},
			Title:     "Hello",
		},
		CategoryName: "Notes",
		Tags:         []string{"go"},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "3 days ago", out["updated_at_human"])
	assert.Equal(t, "Hello", out["title"])
	assert.Equal(t, "Notes", out["category_name"])
	assert.EqualValues(t, 7, out["id"])
	assert.Equal(t, []any{"go"}, out["tags"])

	var decoded ArticleListItem
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Hello", decoded.Title)
	assert.Equal(t, []string{"go"}, decoded.Tags)
}
