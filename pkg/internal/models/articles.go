package models

import (
	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/datatypes"
)

const DefaultArticleCover = "uploads/article/default.jpg"

type Article struct {
	BaseModel

	Title       string                      `json:"title"`
	Author      string                      `json:"author"`
	Keywords    string                      `json:"keywords"`
	Markdown    string                      `json:"markdown"`
	HTML        string                      `json:"html"`
	Description string                      `json:"description" gorm:"size:255"`
	Cover       string                      `json:"cover"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Language    string                      `json:"language"`
	IsTop       bool                        `json:"is_top"`
	Click       int64                       `json:"click"`
	CategoryID  uint                        `json:"category_id" gorm:"index"`
}

// ArticleListItem is an article row joined with its category name and
// decorated with the names of its tags.
type ArticleListItem struct {
	Article

	CategoryName string   `json:"category_name"`
	Tags         []string `json:"tags" gorm:"-"`
}

// MarshalJSON adds a relative form of the update time, like "3 days ago".
func (v ArticleListItem) MarshalJSON() ([]byte, error) {
	type alias ArticleListItem
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(struct {
		alias
		UpdatedAtHuman string `json:"updated_at_human"`
	}{
		alias:          alias(v),
		UpdatedAtHuman: humanize.Time(v.UpdatedAt),
	})
}
