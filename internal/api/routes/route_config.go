package routes

import (
	"recipebox/internal/api/handlers"
	"recipebox/internal/middleware"
	"recipebox/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	ReviewHandler       handlers.ReviewHandler
	AnnouncementHandler handlers.AnnouncementHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.SessionMiddleware(c.JWTService))
	c.GuestRoute()
	c.User()
	c.Recipe()
	c.Review()
	c.Announcement()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", c.RecipeHandler.Index)
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (c *Config) User() {
	c.App.Get("/login_page", c.UserHandler.LoginPage)
	c.App.Post("/login", c.UserHandler.Login)
	c.App.Get("/logout", c.UserHandler.Logout)
	c.App.Get("/registration_page", c.UserHandler.RegistrationPage)
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Get("/login/home", c.Middleware.AuthMiddleware(), c.UserHandler.Home)
}

func (c *Config) Recipe() {
	c.App.Get("/new_recipe", c.RecipeHandler.NewRecipePage)
	c.App.Post("/add_recipe", c.RecipeHandler.AddRecipe)
	c.App.Get("/recipes", c.RecipeHandler.GetRecipes)
	c.App.Get("/categories", c.RecipeHandler.GetCategories)
	c.App.Get("/category/:id/recipes", c.RecipeHandler.GetCategoryRecipes)

	auth := c.Middleware.AuthMiddleware()
	c.App.Post("/user_new_recipe", auth, c.RecipeHandler.AddUserRecipe)
	c.App.Get("/loggedin_user_all_recipes", auth, c.RecipeHandler.GetAllRecipes)
	c.App.Get("/loggedin_user_saves", auth, c.RecipeHandler.GetSavedRecipes)
	{
		c.App.Get("/save_recipe/:recipe_id", auth, c.RecipeHandler.SaveRecipe)
		c.App.Post("/save_recipe/:recipe_id", auth, c.RecipeHandler.SaveRecipe)
		c.App.Get("/delete_saved_recipe/:recipe_id", auth, c.RecipeHandler.RemoveSave)
		c.App.Post("/delete_saved_recipe/:recipe_id", auth, c.RecipeHandler.RemoveSave)
	}
}

func (c *Config) Review() {
	auth := c.Middleware.AuthMiddleware()
	c.App.Get("/review_page/:recipe_id", auth, c.ReviewHandler.ReviewPage)
	c.App.Post("/review_page/:recipe_id", auth, c.ReviewHandler.ReviewPage)
	c.App.Get("/add_review/:recipe_id", auth, c.ReviewHandler.AddReview)
	c.App.Post("/add_review/:recipe_id", auth, c.ReviewHandler.AddReview)
}

func (c *Config) Announcement() {
	auth := c.Middleware.AuthMiddleware()
	c.App.Get("/announcement", auth, c.AnnouncementHandler.AnnouncementPage)
	c.App.Post("/user_new_announcement", auth, c.AnnouncementHandler.PostAnnouncement)
}
