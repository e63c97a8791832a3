package services

import (
	"errors"
	"fmt"
	"strings"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"gorm.io/gorm"
)

func ListCategory() ([]models.Category, error) {
	var categories []models.Category
	err := database.C.Order("sort ASC").Order("id ASC").Find(&categories).Error

	return categories, err
}

func GetCategory(id uint) (models.Category, error) {
	var category models.Category
	if err := database.C.Where("id = ?", id).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func NewCategory(category models.Category) (models.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if len(category.Name) == 0 {
		return category, fmt.Errorf("category name is required")
	}

	err := database.C.Create(&category).Error

	return category, err
}

func EditCategory(category models.Category, name, keywords, description string, sort int) (models.Category, error) {
	category.Name = strings.TrimSpace(name)
	category.Keywords = keywords
	category.Description = description
	category.Sort = sort

	err := database.C.Save(&category).Error

	return category, err
}

// DeleteCategory refuses to remove a category still referenced by articles,
// deleted articles included, since they can be restored.
func DeleteCategory(category models.Category) error {
	var count int64
	if err := database.C.Unscoped().
		Model(&models.Article{}).
		Where("category_id = ?", category.ID).
		Count(&count).Error; err != nil {
		return err
	} else if count > 0 {
		return fmt.Errorf("category still has %d articles", count)
	}

	return database.C.Delete(&category).Error
}

func ListTag() ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Order("id ASC").Find(&tags).Error

	return tags, err
}

func ListTagWithIDs(ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Where("id IN ?", ids).Order("id ASC").Find(&tags).Error

	return tags, err
}

func GetTag(id uint) (models.Tag, error) {
	var tag models.Tag
	if err := database.C.Where("id = ?", id).First(&tag).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

func GetTagOrCreate(name string) (models.Tag, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return models.Tag{}, fmt.Errorf("tag name is required")
	}

	var tag models.Tag
	if err := database.C.Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			err := database.C.Create(&tag).Error
			return tag, err
		}
		return tag, err
	}
	return tag, nil
}

func EditTag(tag models.Tag, name string) (models.Tag, error) {
	tag.Name = strings.TrimSpace(name)
	if len(tag.Name) == 0 {
		return tag, fmt.Errorf("tag name is required")
	}

	err := database.C.Save(&tag).Error

	return tag, err
}

// DeleteTag removes the tag together with its article links. The row is
// removed for good so the name can be used again.
func DeleteTag(tag models.Tag) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&tag).Error
	})
}
