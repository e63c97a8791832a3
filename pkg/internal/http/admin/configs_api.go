package admin

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listConfigs(c *fiber.Ctx) error {
	configs, err := services.ListConfigs()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(configs)
}

func setConfig(c *fiber.Ctx) error {
	name := c.Params("name")

	var data struct {
		Value string `json:"value"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	config, err := services.SetConfigValue(name, data.Value)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(config)
}

func uploadArticleImage(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer file.Close()

	path, err := services.SaveArticleImage(header.Filename, file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"path": path,
	})
}
