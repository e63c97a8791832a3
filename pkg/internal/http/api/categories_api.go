package api

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listCategories(c *fiber.Ctx) error {
	categories, err := services.ListCategory()
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(categories)
}

func listTags(c *fiber.Ctx) error {
	tags, err := services.ListTag()
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(tags)
}
