package admin

import (
	"errors"

	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func listArticles(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	items, err := services.ListAdminArticles(page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func getArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)

	item, err := services.GetArticle(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else if item == nil {
		return fiber.NewError(fiber.StatusNotFound, "article not found")
	}

	return c.JSON(item)
}

func createArticle(c *fiber.Ctx) error {
	var data services.ArticleInput
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	result, err := services.NewArticle(data)
	if err != nil {
		if result.ID > 0 {
			log.Warn().Err(err).Uint("article", result.ID).Msg("Article created with incomplete tags...")
			return c.Status(fiber.StatusCreated).JSON(result)
		} else if errors.Is(err, services.ErrInvalidArticle) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func editArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)

	var data services.ArticleInput
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	result, err := services.EditArticle(uint(id), data)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if errors.Is(err, services.ErrInvalidArticle) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

func deleteArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)

	if err := services.DeleteArticle(uint(id)); errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func restoreArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)

	if err := services.RestoreArticle(uint(id)); errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func forceDeleteArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)

	if err := services.ForceDeleteArticle(uint(id)); errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
