package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kSpets25/expire/internal/api/handlers"
	"github.com/kSpets25/expire/internal/middleware"
	"github.com/kSpets25/expire/pkg/jwt"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	FoodHandler   handlers.FoodHandler
	LookupHandler handlers.LookupHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Foods()
	c.Products()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Post("", c.FoodHandler.SaveFood)
	foods.Get("", c.FoodHandler.GetSavedFoods)
	foods.Get("/expiring", c.FoodHandler.GetExpiringFoods)
	foods.Delete("/:id", c.FoodHandler.DeleteFood)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	products.Get("/search", c.LookupHandler.SearchProducts)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
