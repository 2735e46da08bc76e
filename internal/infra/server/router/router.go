// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sendhur-chits/backend/internal/integration/entrypoint/controller"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	groupController      *controller.GroupController
	memberController     *controller.MemberController
	auctionController    *controller.AuctionController
	collectionController *controller.CollectionController
	ledgerController     *controller.LedgerController
	daySheetController   *controller.DaySheetController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	groupController *controller.GroupController,
	memberController *controller.MemberController,
	auctionController *controller.AuctionController,
	collectionController *controller.CollectionController,
	ledgerController *controller.LedgerController,
	daySheetController *controller.DaySheetController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		groupController:      groupController,
		memberController:     memberController,
		auctionController:    auctionController,
		collectionController: collectionController,
		ledgerController:     ledgerController,
		daySheetController:   daySheetController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}

			// Employee registration is admin only
			if r.authMiddleware != nil {
				v1.POST("/auth/register",
					r.authMiddleware.Authenticate(),
					r.authMiddleware.RequireAdmin(),
					r.authController.Register,
				)
			}
		}

		// Group routes (require authentication)
		if r.groupController != nil && r.authMiddleware != nil {
			groups := v1.Group("/groups")
			groups.Use(r.authMiddleware.Authenticate())
			{
				groups.POST("", r.groupController.Create)
				groups.GET("", r.groupController.List)
				groups.GET("/:id", r.groupController.Get)
				groups.POST("/:id/members", r.groupController.AddMember)

				// Auction routes (nested under groups)
				if r.auctionController != nil {
					groups.POST("/:id/auctions", r.auctionController.Start)
					groups.GET("/:id/auctions", r.auctionController.List)
				}

				if r.collectionController != nil {
					groups.GET("/:id/due-sheet", r.collectionController.DueSheet)
				}
			}
		}

		// Member routes (require authentication)
		if r.memberController != nil && r.authMiddleware != nil {
			members := v1.Group("/members")
			members.Use(r.authMiddleware.Authenticate())
			{
				members.POST("", r.memberController.Create)
				members.GET("", r.memberController.List)
				members.GET("/:id", r.memberController.Get)
				members.POST("/:id/reconcile", r.memberController.ReconcileDue)
				members.POST("/:id/remind", r.memberController.SendDueReminder)
			}
		}

		// Collection routes (require authentication)
		if r.collectionController != nil && r.authMiddleware != nil {
			collections := v1.Group("/collections")
			collections.Use(r.authMiddleware.Authenticate())
			{
				collections.POST("", r.collectionController.Record)
				collections.GET("", r.collectionController.List)
			}
		}

		// Ledger routes (require authentication)
		if r.ledgerController != nil && r.authMiddleware != nil {
			ledger := v1.Group("/ledger")
			ledger.Use(r.authMiddleware.Authenticate())
			{
				ledger.POST("/payments", r.ledgerController.RecordPayment)
				ledger.POST("/credits", r.ledgerController.RecordCredit)
				ledger.POST("/expenses", r.ledgerController.RecordExpense)
				ledger.POST("/salaries", r.authMiddleware.RequireAdmin(), r.ledgerController.RecordSalary)
			}
		}

		// Day sheet routes (require authentication)
		if r.daySheetController != nil && r.authMiddleware != nil {
			sheets := v1.Group("")
			sheets.Use(r.authMiddleware.Authenticate())
			{
				sheets.GET("/day-sheet", r.daySheetController.Get)
				sheets.GET("/master-ledger", r.daySheetController.MasterLedger)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
