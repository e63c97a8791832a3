package api

import (
	"strconv"
	"strings"

	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func listArticles(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	filter := services.HomeArticleFilter{
		Keyword: c.Query("probe"),
	}
	if id := c.QueryInt("categoryId", 0); id > 0 {
		filter.CategoryID = lo.ToPtr(uint(id))
	}
	if id := c.QueryInt("tagId", 0); id > 0 {
		filter.TagID = lo.ToPtr(uint(id))
	}

	items, err := services.ListHomeArticles(filter, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func listArchiveArticles(c *fiber.Ctx) error {
	groups, err := services.ListArchiveArticles()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func listTagArticles(c *fiber.Ctx) error {
	var tags []models.Tag
	var err error
	if raw := c.Query("tags"); len(raw) > 0 {
		var idx []uint
		for _, segment := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(segment))
			if err != nil || id <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "tags must be a comma separated list of tag ids")
			}
			idx = append(idx, uint(id))
		}
		tags, err = services.ListTagWithIDs(idx)
	} else {
		tags, err = services.ListTag()
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	groups, err := services.ListTagArticles(tags)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func getArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)

	item, err := services.GetArticle(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else if item == nil || item.DeletedAt.Valid {
		return fiber.NewError(fiber.StatusNotFound, "article not found")
	}

	services.AddArticleClick(item.ID)

	return c.JSON(item)
}
