package admin

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL, exts.EnsureAdmin).Name("Admin")
	{
		articles := admin.Group("/articles").Name("Articles Admin")
		{
			articles.Get("/", listArticles)
			articles.Post("/", createArticle)
			articles.Get("/:articleId", getArticle)
			articles.Put("/:articleId", editArticle)
			articles.Delete("/:articleId", deleteArticle)
			articles.Post("/:articleId/restore", restoreArticle)
			articles.Delete("/:articleId/force", forceDeleteArticle)
		}

		categories := admin.Group("/categories").Name("Categories Admin")
		{
			categories.Post("/", createCategory)
			categories.Put("/:categoryId", editCategory)
			categories.Delete("/:categoryId", deleteCategory)
		}

		tags := admin.Group("/tags").Name("Tags Admin")
		{
			tags.Post("/", createTag)
			tags.Put("/:tagId", editTag)
			tags.Delete("/:tagId", deleteTag)
		}

		admin.Get("/configs", listConfigs)
		admin.Put("/configs/:name", setConfig)
		admin.Post("/uploads", uploadArticleImage)
	}
}
