package routes

import (
	"ansh-apparels/controllers"
	"ansh-apparels/handler"
	"ansh-apparels/middleware"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Services struct {
	Auth       *services.AuthService
	Users      *services.UserService
	Products   *services.ProductService
	Carts      *services.CartService
	Contacts   *services.ContactService
	Files      *services.FileService
	Production bool
}

func SetupRoutes(router *gin.Engine, svc Services) {
	healthCtrl := &controllers.HealthController{}
	authCtrl := &controllers.AuthController{Auth: svc.Auth, Production: svc.Production}
	userCtrl := &controllers.UserController{Users: svc.Users}
	productCtrl := &controllers.ProductController{Products: svc.Products}
	cartCtrl := &controllers.CartController{Carts: svc.Carts}
	contactCtrl := &controllers.ContactController{Contacts: svc.Contacts}
	fileCtrl := &controllers.FileController{Files: svc.Files}

	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", healthCtrl.Health)
	api.GET("/docs/openapi.json", healthCtrl.OpenAPI)
	api.GET("/products", productCtrl.List)
	api.GET("/products/:slug", productCtrl.GetBySlug)
	api.GET("/files/:id", fileCtrl.Serve)
	api.POST("/contact", contactCtrl.Submit)

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authCtrl.Signup)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/logout", authCtrl.Logout)
		auth.GET("/me", middleware.UserMiddleware(svc.Auth), authCtrl.Me)
	}

	cart := api.Group("/cart")
	cart.Use(middleware.SessionMiddleware(svc.Auth))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.AddItem)
		cart.PATCH("", cartCtrl.UpdateQuantity)
		cart.DELETE("", cartCtrl.Clear)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.POST("/merge", cartCtrl.Merge)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.UserMiddleware(svc.Auth), middleware.AdminMiddleware())
	{
		admin.GET("/verify", authCtrl.VerifyAdmin)

		admin.GET("/products", productCtrl.AdminList)
		admin.POST("/products", productCtrl.Create)
		admin.DELETE("/products", productCtrl.DeleteAll)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/users", userCtrl.List)
		admin.PATCH("/users/:id", userCtrl.UpdateRole)

		admin.GET("/contacts", contactCtrl.List)
		admin.DELETE("/contacts/:id", contactCtrl.Delete)

		admin.POST("/upload", fileCtrl.Upload)
	}
}
