package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vd437/quick-cash-control/controllers"
	"github.com/vd437/quick-cash-control/middleware"
	"github.com/vd437/quick-cash-control/models"
)

// Controllers bundles the handler set main wires up.
type Controllers struct {
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	Sales     *controllers.SalesController
	Dashboard *controllers.DashboardController
}

func InitializeRoutes(router *gin.Engine, c Controllers, uploadDir string) {
	router.POST("/login", c.Auth.Login)
	router.POST("/register", c.Auth.Register)
	router.POST("/forgot-password", c.Auth.RequestPasswordReset)
	router.POST("/verify-code", c.Auth.VerifyCode)
	router.POST("/reset-password", c.Auth.ResetPassword)
	router.Static("/uploads", uploadDir)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(models.RoleAdmin))
	{
		admin.GET("/dashboard", c.Dashboard.Dashboard)

		admin.GET("/products", c.Products.List)
		admin.POST("/products", c.Products.Create)
		admin.GET("/products/lowstock", c.Products.LowStock)
		admin.GET("/products/:id", c.Products.Get)
		admin.PUT("/products/:id", c.Products.Update)
		admin.DELETE("/products/:id", c.Products.Delete)
		admin.POST("/products/:id/photo", c.Products.UploadPhoto)

		admin.GET("/sales", c.Sales.List)
		admin.GET("/sales/range", c.Sales.DateRange)
		admin.GET("/sales/summary", c.Sales.Summary)
		admin.GET("/sales/top", c.Sales.Top)
		admin.GET("/sales/export", c.Sales.ExportCSV)
		admin.GET("/sales/:id", c.Sales.Get)
		admin.GET("/sales/:id/receipt", c.Sales.Receipt)
	}

	// Admins can run the register too.
	cashier := router.Group("/cashier")
	cashier.Use(middleware.AuthMiddleware(models.RoleCashier, models.RoleAdmin))
	{
		cashier.GET("/products", c.Products.List)
		cashier.POST("/sales", c.Sales.Create)
		cashier.GET("/sales", c.Sales.List)
		cashier.GET("/sales/:id", c.Sales.Get)
		cashier.GET("/sales/:id/receipt", c.Sales.Receipt)
	}
}
