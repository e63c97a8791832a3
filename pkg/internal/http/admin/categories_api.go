package admin

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func createCategory(c *fiber.Ctx) error {
	var data struct {
		Name        string `json:"name" validate:"required,max=255"`
		Keywords    string `json:"keywords"`
		Description string `json:"description"`
		Sort        int    `json:"sort"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.NewCategory(models.Category{
		Name:        data.Name,
		Keywords:    data.Keywords,
		Description: data.Description,
		Sort:        data.Sort,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(category)
}

func editCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("categoryId", 0)

	var data struct {
		Name        string `json:"name" validate:"required,max=255"`
		Keywords    string `json:"keywords"`
		Description string `json:"description"`
		Sort        int    `json:"sort"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.GetCategory(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	category, err = services.EditCategory(category, data.Name, data.Keywords, data.Description, data.Sort)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(category)
}

func deleteCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("categoryId", 0)

	category, err := services.GetCategory(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteCategory(category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func createTag(c *fiber.Ctx) error {
	var data struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tag, err := services.GetTagOrCreate(data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(tag)
}

func editTag(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("tagId", 0)

	var data struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tag, err := services.GetTag(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tag, err = services.EditTag(tag, data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(tag)
}

func deleteTag(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("tagId", 0)

	tag, err := services.GetTag(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteTag(tag); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
