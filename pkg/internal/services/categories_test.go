package services

import (
	"testing"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/database/dbtest"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	dbtest.Setup(t)

	_, err := NewCategory(models.Category{Name: "  "})
	assert.Error(t, err)

	second, err := NewCategory(models.Category{Name: "Essays", Sort: 2})
	require.NoError(t, err)
	first, err := NewCategory(models.Category{Name: " Notes ", Sort: 1})
	require.NoError(t, err)
	assert.Equal(t, "Notes", first.Name)

	categories, err := ListCategory()
	require.NoError(t, err)
	assert.Equal(t, []string{"Notes", "Essays"}, lo.Map(categories, func(item models.Category, _ int) string {
		return item.Name
	}))

	edited, err := EditCategory(second, "Long reads", "essay", "Longer articles", 0)
	require.NoError(t, err)
	fetched, err := GetCategory(edited.ID)
	require.NoError(t, err)
	assert.Equal(t, "Long reads", fetched.Name)
	assert.Equal(t, "Longer articles", fetched.Description)

	article := seedArticle(t, "Still here", first, testTime(2024, 1, 1))
	require.NoError(t, DeleteArticle(article.ID))
	assert.Error(t, DeleteCategory(first))

	require.NoError(t, DeleteCategory(edited))
	_, err = GetCategory(edited.ID)
	assert.Error(t, err)
}

func TestTagLifecycle(t *testing.T) {
	dbtest.Setup(t)
	category := seedCategory(t, "Notes")

	tag, err := GetTagOrCreate(" go ")
	require.NoError(t, err)
	again, err := GetTagOrCreate("go")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, again.ID)

	_, err = GetTagOrCreate("")
	assert.Error(t, err)

	other := seedTag(t, "web")
	tags, err := ListTagWithIDs([]uint{other.ID})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "web", tags[0].Name)

	renamed, err := EditTag(tag, "golang")
	require.NoError(t, err)
	assert.Equal(t, "golang", renamed.Name)

	article := seedArticle(t, "Tagged", category, testTime(2024, 1, 1), renamed, other)
	require.NoError(t, DeleteTag(renamed))

	item, err := GetArticle(article.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, item.Tags)

	var links int64
	require.NoError(t, database.C.Model(&models.ArticleTag{}).Where("tag_id = ?", renamed.ID).Count(&links).Error)
	assert.Zero(t, links)
}

func TestDeletedTagNameIsReusable(t *testing.T) {
	dbtest.Setup(t)

	tag := seedTag(t, "go")
	require.NoError(t, DeleteTag(tag))

	recreated, err := GetTagOrCreate("go")
	require.NoError(t, err)
	assert.Equal(t, "go", recreated.Name)

	tags, err := ListTag()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, recreated.ID, tags[0].ID)
}
