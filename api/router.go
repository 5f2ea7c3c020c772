package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/internal/auth"
	"evparts_admin/internal/categories"
	"evparts_admin/internal/groups"
	"evparts_admin/internal/ledger"
	"evparts_admin/internal/media"
	"evparts_admin/internal/products"
	"evparts_admin/internal/reports"
	"evparts_admin/internal/sales"
	"evparts_admin/internal/users"
)

// Services bundles everything the routes need.
type Services struct {
	Tokens     *auth.Manager
	Users      *users.Service
	Groups     *groups.Service
	Categories *categories.Service
	Products   *products.Service
	Sales      *sales.Service
	Media      *media.Service
	Reports    *reports.Service
	Ledger     *ledger.Ledger
	Logger     *zap.Logger
}

// InitRoutes registers every endpoint on the given Gin engine. All
// /api routes except login sit behind the bearer-token middleware;
// per-route level gates follow, lower level meaning broader access.
func InitRoutes(e *gin.Engine, s Services) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	authH := newAuthHandler(s.Users, s.Tokens, logger)
	usersH := newUsersHandler(s.Users, logger)
	groupsH := newGroupsHandler(s.Groups, logger)
	categoriesH := newCategoriesHandler(s.Categories, logger)
	productsH := newProductsHandler(s.Products, s.Reports, logger)
	salesH := newSalesHandler(s.Sales, logger)
	mediaH := newMediaHandler(s.Media, logger)
	reportsH := newReportsHandler(s.Reports, logger)

	e.POST("/api/auth/login", authH.handleLogin)

	protected := e.Group("/api", Protect(s.Tokens))

	usersG := protected.Group("/users")
	usersG.GET("", RequireLevel(auth.LevelManager), usersH.handleList)
	usersG.POST("", RequireLevel(auth.LevelAdmin), usersH.handleCreate)
	usersG.PUT("/:id", RequireLevel(auth.LevelAdmin), usersH.handleUpdate)
	usersG.DELETE("/:id", RequireLevel(auth.LevelAdmin), usersH.handleDelete)

	groupsG := protected.Group("/groups")
	groupsG.GET("", RequireLevel(auth.LevelManager), groupsH.handleList)
	groupsG.POST("", RequireLevel(auth.LevelAdmin), groupsH.handleCreate)
	groupsG.PUT("/:id", RequireLevel(auth.LevelAdmin), groupsH.handleUpdate)

	categoriesG := protected.Group("/categories")
	categoriesG.GET("", RequireLevel(auth.LevelStaff), categoriesH.handleList)
	categoriesG.POST("", RequireLevel(auth.LevelManager), categoriesH.handleCreate)
	categoriesG.PUT("/:id", RequireLevel(auth.LevelManager), categoriesH.handleUpdate)
	categoriesG.DELETE("/:id", RequireLevel(auth.LevelManager), categoriesH.handleDelete)

	productsG := protected.Group("/products")
	productsG.GET("", RequireLevel(auth.LevelStaff), productsH.handleList)
	productsG.GET("/top", RequireLevel(auth.LevelStaff), productsH.handleTop)
	productsG.POST("", RequireLevel(auth.LevelManager), productsH.handleCreate)
	productsG.PUT("/:id", RequireLevel(auth.LevelManager), productsH.handleUpdate)
	productsG.DELETE("/:id", RequireLevel(auth.LevelManager), productsH.handleDelete)

	salesG := protected.Group("/sales", RequireLevel(auth.LevelStaff))
	salesG.GET("", salesH.handleList)
	salesG.GET("/recent", salesH.handleRecent)
	salesG.POST("", salesH.handleCreate)
	salesG.PUT("/:id", salesH.handleAttachRef)

	mediaG := protected.Group("/media", RequireLevel(auth.LevelManager))
	mediaG.GET("", mediaH.handleList)
	mediaG.POST("/upload", mediaH.handleUpload)
	mediaG.DELETE("/:id", mediaH.handleDelete)

	reportsG := protected.Group("/reports", RequireLevel(auth.LevelStaff))
	reportsG.GET("/dashboard", reportsH.handleDashboard)
	reportsG.GET("/daily", reportsH.handleDaily)
	reportsG.GET("/monthly", reportsH.handleMonthly)
	reportsG.GET("/range", reportsH.handleRange)

	if s.Ledger != nil {
		RegisterLedgerRoutes(e, s.Ledger, logger)
	}

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
