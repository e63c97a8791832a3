package services

import (
	"testing"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/database/dbtest"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushArticleClicks(t *testing.T) {
	dbtest.Setup(t)
	category := seedCategory(t, "Notes")
	article := seedArticle(t, "Popular", category, testTime(2024, 1, 1))
	require.NoError(t, database.C.Model(&article).UpdateColumn("click", 12).Error)

	AddArticleClick(article.ID)
	AddArticleClick(article.ID)
	AddArticleClick(article.ID)
	FlushArticleClicks()

	var item models.Article
	require.NoError(t, database.C.First(&item, article.ID).Error)
	assert.EqualValues(t, 15, item.Click)
	assert.True(t, item.UpdatedAt.Equal(testTime(2024, 1, 1)))

	// Nothing queued, nothing changes
	FlushArticleClicks()
	require.NoError(t, database.C.First(&item, article.ID).Error)
	assert.EqualValues(t, 15, item.Click)
}
