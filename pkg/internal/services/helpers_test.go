package services

import (
	"testing"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

type recordingWatermarker struct {
	files []string
	texts []string
	err   error
}

func (v *recordingWatermarker) Watermark(file string, text string) error {
	v.files = append(v.files, file)
	v.texts = append(v.texts, text)
	return v.err
}

func useWatermarker(t *testing.T, watermarker Watermarker) {
	t.Helper()
	previous := ImageWatermarker
	ImageWatermarker = watermarker
	t.Cleanup(func() {
		ImageWatermarker = previous
	})
}

func usePublicPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	viper.Set("uploads.public_path", dir)
	t.Cleanup(func() {
		viper.Set("uploads.public_path", "")
	})
	return dir
}

func seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, database.C.Create(&category).Error)
	return category
}

func seedTag(t *testing.T, name string) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name}
	require.NoError(t, database.C.Create(&tag).Error)
	return tag
}

func seedArticle(t *testing.T, title string, category models.Category, createdAt time.Time, tags ...models.Tag) models.Article {
	t.Helper()
	article := models.Article{
		BaseModel:   models.BaseModel{CreatedAt: createdAt, UpdatedAt: createdAt},
		Title:       title,
		Markdown:    title,
		Description: title,
		Cover:       models.DefaultArticleCover,
		CategoryID:  category.ID,
	}
	require.NoError(t, database.C.Create(&article).Error)

	var idx []uint
	for _, tag := range tags {
		idx = append(idx, tag.ID)
	}
	require.NoError(t, AddArticleTags(database.C, article.ID, idx))

	return article
}

func testTime(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
