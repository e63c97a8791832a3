package database

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Category{},
	&models.Tag{},
	&models.Article{},
	&models.ArticleTag{},
	&models.Config{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
