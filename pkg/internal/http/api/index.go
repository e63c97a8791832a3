package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		articles := api.Group("/articles").Name("Articles API")
		{
			articles.Get("/", listArticles)
			articles.Get("/archives", listArchiveArticles)
			articles.Get("/tags", listTagArticles)
			articles.Get("/:articleId", getArticle)
		}

		api.Get("/categories", listCategories)
		api.Get("/tags", listTags)
	}
}
