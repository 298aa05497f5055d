package routes

import (
	"mediamate-backend/internal/handlers"
	"mediamate-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Handlers bundles the wired handler set for route registration.
type Handlers struct {
	Catalog   *handlers.CatalogHandler
	Search    *handlers.SearchHandler
	Auth      *handlers.AuthHandler
	Community *handlers.CommunityHandler
	Favorite  *handlers.FavoriteHandler
	Request   *handlers.RequestHandler
	Contact   *handlers.ContactHandler
	Upload    *handlers.UploadHandler
}

func Setup(app *fiber.App, store *session.Store, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.Post("/logout", h.Auth.Logout)
		auth.Get("/me", middleware.RequireAuth(store), h.Auth.Me)
	}

	// Profile routes
	users := v1.Group("/users")
	{
		users.Put("/me", middleware.RequireAuth(store), h.Auth.UpdateProfile)
	}

	// Search routes - unified cross-type search
	v1.Get("/search", h.Search.Search)
	v1.Post("/search", h.Search.SubmitSearch)

	// Community routes
	communities := v1.Group("/communities")
	{
		communities.Get("/", middleware.LoadSession(store), h.Community.List)
		communities.Post("/search-redirect", h.Community.SubmitSearch)
		communities.Post("/", middleware.RequireAuth(store), h.Community.Create)
		communities.Get("/:id", middleware.RequireAuth(store), h.Community.Room)
		communities.Get("/:id/messages", middleware.RequireAuth(store), h.Community.Messages)
		communities.Post("/:id/messages", middleware.RequireAuth(store), h.Community.PostMessage)
	}

	// Favorite routes
	favorites := v1.Group("/favorites", middleware.RequireAuth(store))
	{
		favorites.Get("/", h.Favorite.List)
		favorites.Post("/", h.Favorite.Toggle)
	}

	// Request routes - user submissions
	requests := v1.Group("/requests", middleware.RequireAuth(store))
	{
		requests.Get("/", h.Request.ListOwn)
		requests.Post("/", h.Request.Create)
	}

	// Admin routes
	admin := v1.Group("/admin", middleware.RequireAdmin(store))
	{
		admin.Get("/requests", h.Request.AdminList)
		admin.Get("/requests/:id", h.Request.AdminDetail)
		admin.Post("/requests/:id/decision", h.Request.Decide)
		admin.Post("/content", h.Request.PublishDirect)
	}

	// Contact form
	v1.Post("/contact", h.Contact.Submit)

	// Upload presigning
	upload := v1.Group("/upload", middleware.RequireAuth(store))
	{
		upload.Get("/presign", h.Upload.PresignUpload)
	}

	// Catalog routes: /:type matches books, movies and games.
	v1.Get("/home", h.Catalog.Home)
	v1.Get("/genres", h.Catalog.Genres)
	category := v1.Group("/category")
	{
		category.Get("/:type", h.Catalog.Category)
		category.Get("/:type/:id", middleware.LoadSession(store), h.Catalog.Detail)
		category.Post("/:type/:id/review", middleware.RequireAuth(store), h.Catalog.SubmitReview)
	}
}
