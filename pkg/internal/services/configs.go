package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	localCache "git.solsynth.dev/hypernet/journal/pkg/internal/cache"
	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

func GetConfigCacheKey(name string) string {
	return fmt.Sprintf("config#%s", name)
}

// GetConfigValue reads a site config entry, falling back to the given value
// when the entry does not exist.
func GetConfigValue(name string, fallback string) string {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if val, err := marshal.Get(ctx, GetConfigCacheKey(name), new(string)); err == nil {
		return *val.(*string)
	}

	var config models.Config
	if err := database.C.Where("name = ?", name).First(&config).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("name", name).Msg("Unable to load config, using fallback value...")
		}
		return fallback
	}

	_ = marshal.Set(
		ctx,
		GetConfigCacheKey(name),
		config.Value,
		store.WithExpiration(10*time.Minute),
		store.WithTags([]string{"configs"}),
	)

	return config.Value
}

func GetWatermarkText() string {
	return GetConfigValue(models.ConfigKeyWatermarkText, viper.GetString("watermark.text"))
}

func ListConfigs() ([]models.Config, error) {
	var configs []models.Config
	err := database.C.Order("name ASC").Find(&configs).Error

	return configs, err
}

func SetConfigValue(name, value string) (models.Config, error) {
	var config models.Config
	if err := database.C.Where("name = ?", name).First(&config).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return config, err
		}
		config = models.Config{Name: name}
	}

	config.Value = value
	if err := database.C.Save(&config).Error; err != nil {
		return config, err
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	_ = marshal.Delete(context.Background(), GetConfigCacheKey(name))

	return config, nil
}
