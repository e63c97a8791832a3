package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidArticle wraps every rejection caused by the caller's input.
var ErrInvalidArticle = errors.New("invalid article")

// InitialClickPolicy decides the click count a new article starts with.
type InitialClickPolicy struct {
	Min int64
	Max int64
}

func (v InitialClickPolicy) Next() int64 {
	if v.Max <= v.Min {
		return v.Min
	}
	return v.Min + rand.Int64N(v.Max-v.Min+1)
}

var ArticleClickPolicy = InitialClickPolicy{Min: 10, Max: 25}

func ReadArticleConfig() {
	if viper.IsSet("articles.initial_click_min") {
		ArticleClickPolicy.Min = viper.GetInt64("articles.initial_click_min")
	}
	if viper.IsSet("articles.initial_click_max") {
		ArticleClickPolicy.Max = viper.GetInt64("articles.initial_click_max")
	}
	log.Info().
		Int64("min", ArticleClickPolicy.Min).
		Int64("max", ArticleClickPolicy.Max).
		Msg("Loaded article initial click policy!")
}

// ArticleInput holds the fields a caller supplies when writing an article.
// Description is optional, everything else stored on the article is derived.
type ArticleInput struct {
	Title       string `json:"title" validate:"required,max=1024"`
	Author      string `json:"author" validate:"max=255"`
	Keywords    string `json:"keywords" validate:"max=255"`
	Markdown    string `json:"markdown" validate:"required"`
	Description string `json:"description" validate:"max=200"`
	CategoryID  uint   `json:"category_id" validate:"required"`
	TagIDs      []uint `json:"tag_ids"`
	IsTop       bool   `json:"is_top"`
}

type ArticleWriteResult struct {
	ID      uint           `json:"id"`
	Message string         `json:"message"`
	Article models.Article `json:"article"`
	Cover   CoverResult    `json:"cover"`
}

func EnsureArticleReferences(categoryID uint, tagIDs []uint) error {
	var count int64
	if err := database.C.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return err
	} else if count == 0 {
		return fmt.Errorf("category %d does not exist", categoryID)
	}

	tagIDs = lo.Uniq(tagIDs)
	if len(tagIDs) == 0 {
		return nil
	}
	if err := database.C.Model(&models.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return err
	} else if int(count) != len(tagIDs) {
		return fmt.Errorf("some of the tags do not exist")
	}

	return nil
}

func composeArticle(item models.Article, input ArticleInput, except ...string) (models.Article, CoverResult, error) {
	item.Title = input.Title
	item.Author = input.Author
	item.Keywords = input.Keywords
	item.Markdown = input.Markdown
	item.CategoryID = input.CategoryID
	item.IsTop = input.IsTop

	item.Description = input.Description
	if len(item.Description) == 0 {
		item.Description = ExtractDescription(input.Markdown)
	}

	cover := ResolveCover(input.Markdown, except...)
	item.Cover = cover.Cover
	item.Images = cover.Images

	html, err := RenderMarkdown(input.Markdown)
	if err != nil {
		return item, cover, err
	}
	item.HTML = html
	item.Language = DetectLanguage(item.Description)

	return item, cover, nil
}

// NewArticle derives the description, cover and html of the article, saves it
// and links its tags. Tags are only linked once the article row is saved, there
// is no transaction around the two steps.
func NewArticle(input ArticleInput) (ArticleWriteResult, error) {
	var result ArticleWriteResult
	if err := validation.Struct(input); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidArticle, err)
	}
	if err := EnsureArticleReferences(input.CategoryID, input.TagIDs); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidArticle, err)
	}

	log.Debug().Str("title", input.Title).Msg("Writing an article...")
	start := time.Now()

	item, cover, err := composeArticle(models.Article{}, input)
	if err != nil {
		return result, err
	}
	item.Click = ArticleClickPolicy.Next()

	log.Debug().Msg("Saving article record into database...")
	if err := database.C.Create(&item).Error; err != nil {
		return result, fmt.Errorf("unable to save article: %v", err)
	}

	result = ArticleWriteResult{
		ID:      item.ID,
		Message: "Article created",
		Article: item,
		Cover:   cover,
	}

	if err := AddArticleTags(database.C, item.ID, input.TagIDs); err != nil {
		log.Error().Err(err).Uint("article", item.ID).Msg("An error occurred when linking article tags...")
		return result, fmt.Errorf("article saved but unable to link tags: %v", err)
	}

	log.Debug().Dur("elapsed", time.Since(start)).Uint("id", item.ID).Msg("The article is written.")
	return result, nil
}

// EditArticle rewrites an existing article. Images already present in the
// previous version are not watermarked a second time.
func EditArticle(id uint, input ArticleInput) (ArticleWriteResult, error) {
	var result ArticleWriteResult
	if err := validation.Struct(input); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidArticle, err)
	}
	if err := EnsureArticleReferences(input.CategoryID, input.TagIDs); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidArticle, err)
	}

	var item models.Article
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return result, err
	}

	item, cover, err := composeArticle(item, input, item.Images...)
	if err != nil {
		return result, err
	}

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return ReplaceArticleTags(tx, item.ID, input.TagIDs)
	}); err != nil {
		return result, fmt.Errorf("unable to save article: %v", err)
	}

	return ArticleWriteResult{
		ID:      item.ID,
		Message: "Article updated",
		Article: item,
		Cover:   cover,
	}, nil
}

func DeleteArticle(id uint) error {
	tx := database.C.Delete(&models.Article{}, id)
	if tx.Error != nil {
		return tx.Error
	} else if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func RestoreArticle(id uint) error {
	tx := database.C.Unscoped().
		Model(&models.Article{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if tx.Error != nil {
		return tx.Error
	} else if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func ForceDeleteArticle(id uint) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		result := tx.Unscoped().Delete(&models.Article{}, id)
		if result.Error != nil {
			return result.Error
		} else if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
