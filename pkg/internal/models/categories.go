package models

import "time"

type Category struct {
	BaseModel

	Name        string `json:"name"`
	Keywords    string `json:"keywords"`
	Description string `json:"description"`
	Sort        int    `json:"sort"`
}

type Tag struct {
	BaseModel

	Name string `json:"name" gorm:"uniqueIndex"`
}

// ArticleTag links an article to a tag. Rows are never updated in place,
// changing the tags of an article deletes and recreates its links.
// Position keeps the order the tags were given in.
type ArticleTag struct {
	ArticleID uint      `json:"article_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint      `json:"tag_id" gorm:"primaryKey;autoIncrement:false;index"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
