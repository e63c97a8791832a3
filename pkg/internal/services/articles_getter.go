package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

const (
	AdminArticlePageSize = 15
	HomeArticlePageSize  = 4
)

type Paginated[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
	Data     []T   `json:"data"`
}

type HomeArticleFilter struct {
	CategoryID *uint
	TagID      *uint
	Keyword    string
}

type ArchiveGroup struct {
	Label    string                   `json:"label"`
	Year     int                      `json:"year"`
	Month    int                      `json:"month"`
	Articles []models.ArticleListItem `json:"articles"`
}

type TagArticleGroup struct {
	Tag      string                   `json:"tag"`
	TagID    uint                     `json:"tag_id"`
	Articles []models.ArticleListItem `json:"articles"`
}

func joinArticleCategory(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.Article{}).
		Joins("JOIN categories AS c ON articles.category_id = c.id")
}

func FilterArticleWithCategory(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where("articles.category_id = ?", id)
}

func FilterArticleWithTag(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where(
		"articles.id IN (?)",
		database.C.Model(&models.ArticleTag{}).Select("article_id").Where("tag_id = ?", id),
	)
}

func FilterArticleWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + probe + "%"
	return tx.Where("articles.title LIKE ? OR articles.description LIKE ?", probe, probe)
}

func paginateArticles(tx *gorm.DB, columns string, page, perPage int, order ...string) (Paginated[models.ArticleListItem], error) {
	if page < 1 {
		page = 1
	}
	result := Paginated[models.ArticleListItem]{Page: page, PerPage: perPage}

	if err := tx.Count(&result.Count).Error; err != nil {
		return result, err
	}
	result.LastPage = max(1, int((result.Count+int64(perPage)-1)/int64(perPage)))

	tx = tx.Select(columns + ", c.name AS category_name")
	for _, item := range order {
		tx = tx.Order(item)
	}
	if err := tx.
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&result.Data).Error; err != nil {
		return result, err
	}

	return result, nil
}

// CompleteArticleTags attaches the tag names to each article row, articles
// without tags get an empty list.
func CompleteArticleTags(items []models.ArticleListItem) ([]models.ArticleListItem, error) {
	if len(items) == 0 {
		return items, nil
	}

	idx := lo.Map(items, func(item models.ArticleListItem, _ int) uint {
		return item.ID
	})
	mapping, err := ListTagNamesByArticleIDs(idx)
	if err != nil {
		return items, err
	}

	for i := range items {
		if tags, ok := mapping[items[i].ID]; ok {
			items[i].Tags = tags
		} else {
			items[i].Tags = []string{}
		}
	}

	return items, nil
}

// ListAdminArticles lists every article, deleted ones included.
func ListAdminArticles(page int) (Paginated[models.ArticleListItem], error) {
	tx := joinArticleCategory(database.C.Unscoped())
	return paginateArticles(tx, "articles.*", page, AdminArticlePageSize, "articles.created_at DESC")
}

func ListHomeArticles(filter HomeArticleFilter, page int) (Paginated[models.ArticleListItem], error) {
	tx := joinArticleCategory(database.C)
	if filter.CategoryID != nil {
		tx = FilterArticleWithCategory(tx, *filter.CategoryID)
	}
	if filter.TagID != nil {
		tx = FilterArticleWithTag(tx, *filter.TagID)
	}
	tx = FilterArticleWithFuzzySearch(tx, filter.Keyword)

	out, err := paginateArticles(
		tx,
		"articles.id, articles.title, articles.cover, articles.author, articles.description, articles.category_id, articles.is_top, articles.click, articles.created_at",
		page,
		HomeArticlePageSize,
		"articles.created_at DESC",
	)
	if err != nil {
		return out, err
	}

	out.Data, err = CompleteArticleTags(out.Data)
	return out, err
}

func GetArchiveLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// ListArchiveArticles groups the articles by the year and month they were
// created in. Groups are ordered by their earliest article, newest first.
func ListArchiveArticles() ([]ArchiveGroup, error) {
	var items []models.ArticleListItem
	if err := joinArticleCategory(database.C).
		Select("articles.id, articles.title, articles.created_at, articles.category_id, c.name AS category_name").
		Order("articles.created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	items, err := CompleteArticleTags(items)
	if err != nil {
		return nil, err
	}

	var groups []ArchiveGroup
	earliest := make(map[string]time.Time)
	position := make(map[string]int)
	for _, item := range items {
		year, month := item.CreatedAt.Year(), item.CreatedAt.Month()
		key := GetArchiveLabel(year, month)
		if idx, ok := position[key]; ok {
			groups[idx].Articles = append(groups[idx].Articles, item)
		} else {
			position[key] = len(groups)
			groups = append(groups, ArchiveGroup{
				Label:    key,
				Year:     year,
				Month:    int(month),
				Articles: []models.ArticleListItem{item},
			})
		}
		if at, ok := earliest[key]; !ok || item.CreatedAt.Before(at) {
			earliest[key] = item.CreatedAt
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return earliest[groups[i].Label].After(earliest[groups[j].Label])
	})

	return groups, nil
}

// ListTagArticles lists the articles of each tag, in the order the tags are
// given. Tags without any article are left out.
func ListTagArticles(tags []models.Tag) ([]TagArticleGroup, error) {
	groups := make([]TagArticleGroup, 0, len(tags))
	for _, tag := range tags {
		var items []models.ArticleListItem
		if err := FilterArticleWithTag(joinArticleCategory(database.C), tag.ID).
			Select("articles.id, articles.title, articles.created_at, articles.category_id, c.name AS category_name").
			Order("articles.created_at DESC").
			Find(&items).Error; err != nil {
			return groups, err
		}
		if len(items) == 0 {
			continue
		}

		items, err := CompleteArticleTags(items)
		if err != nil {
			return groups, err
		}

		groups = append(groups, TagArticleGroup{
			Tag:      tag.Name,
			TagID:    tag.ID,
			Articles: items,
		})
	}

	return groups, nil
}

// GetArticle looks up an article by id, deleted articles included.
// A nil article with a nil error means there is no such article.
func GetArticle(id uint) (*models.ArticleListItem, error) {
	var item models.ArticleListItem
	if err := joinArticleCategory(database.C.Unscoped()).
		Select("articles.*, c.name AS category_name").
		Where("articles.id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	mapping, err := ListTagNamesByArticleIDs([]uint{id})
	if err != nil {
		return nil, err
	}
	item.Tags = lo.ValueOr(mapping, id, []string{})

	return &item, nil
}
