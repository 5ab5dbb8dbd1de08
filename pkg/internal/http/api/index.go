package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		api.Post("/register", doRegister)
		api.Post("/login", doLogin)

		categories := api.Group("/categories").Name("Categories API")
		{
			categories.Get("/", listCategories)
			categories.Get("/:categoryId", getCategory)
			categories.Post("/", createCategory)
			categories.Put("/:categoryId", editCategory)
			categories.Delete("/:categoryId", deleteCategory)
		}

		tags := api.Group("/tags").Name("Tags API")
		{
			tags.Get("/", listTags)
			tags.Get("/:tagId", getTag)
			tags.Post("/", createTag)
			tags.Put("/:tagId", editTag)
			tags.Delete("/:tagId", deleteTag)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", listPosts)
			// Must be mapped before the id route.
			posts.Get("/unapproved", listUnapprovedPosts)
			posts.Get("/:postId", getPost)
			posts.Post("/", createPost)
			posts.Put("/:postId", editPost)
			posts.Put("/:postId/approve", approvePost)
			posts.Delete("/:postId", deletePost)
		}

		comments := api.Group("/comments").Name("Comments API")
		{
			comments.Get("/", listComments)
			comments.Get("/:commentId", getComment)
			comments.Post("/", createComment)
			comments.Put("/:commentId", editComment)
			comments.Delete("/:commentId", deleteComment)
		}

		users := api.Group("/rareusers").Name("RareUsers API")
		{
			users.Get("/", listRareUsers)
			users.Get("/profile", getMyProfile)
			users.Put("/profile", editMyProfile)
			users.Get("/:userId", getRareUser)
			users.Post("/:userId/subscription", subscribeToUser)
			users.Delete("/:userId/subscription", unsubscribeFromUser)
		}
	}
}
