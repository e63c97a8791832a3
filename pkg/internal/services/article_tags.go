package services

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ListTagNamesByArticleIDs maps each article id to the names of its tags, in
// the order they were linked. Articles without any tag are absent from the result.
func ListTagNamesByArticleIDs(ids []uint) (map[uint][]string, error) {
	mapping := make(map[uint][]string)
	if len(ids) == 0 {
		return mapping, nil
	}

	var rows []struct {
		ArticleID uint
		Name      string
	}
	if err := database.C.Model(&models.ArticleTag{}).
		Select("article_tags.article_id, tags.name").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("article_tags.article_id IN ?", lo.Uniq(ids)).
		Where("tags.deleted_at IS NULL").
		Order("article_tags.position ASC").
		Scan(&rows).Error; err != nil {
		return mapping, err
	}

	for _, row := range rows {
		mapping[row.ArticleID] = append(mapping[row.ArticleID], row.Name)
	}

	return mapping, nil
}

func AddArticleTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	tagIDs = lo.Uniq(tagIDs)
	if len(tagIDs) == 0 {
		return nil
	}

	links := lo.Map(tagIDs, func(item uint, idx int) models.ArticleTag {
		return models.ArticleTag{ArticleID: articleID, TagID: item, Position: idx}
	})

	return tx.Create(&links).Error
}

func ReplaceArticleTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
		return err
	}
	return AddArticleTags(tx, articleID, tagIDs)
}
