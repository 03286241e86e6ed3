// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/trip-planner/backend/internal/integration/entrypoint/controller"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	userController    *controller.UserController
	groupController   *controller.GroupController
	tripController    *controller.TripController
	eventController   *controller.EventController
	poiController     *controller.PoiController
	expenseController *controller.ExpenseController
	balanceController *controller.BalanceController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	groupController *controller.GroupController,
	tripController *controller.TripController,
	eventController *controller.EventController,
	poiController *controller.PoiController,
	expenseController *controller.ExpenseController,
	balanceController *controller.BalanceController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		userController:    userController,
		groupController:   groupController,
		tripController:    tripController,
		eventController:   eventController,
		poiController:     poiController,
		expenseController: expenseController,
		balanceController: balanceController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.PUT("/me", r.userController.UpdateProfile)
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
				groups.PUT("/:id", r.groupController.Update)
				groups.DELETE("/:id", r.groupController.Delete)
				groups.POST("/:id/invite", r.groupController.Invite)
				groups.PUT("/:id/members/:member_id/role", r.groupController.ChangeRole)
				groups.DELETE("/:id/members/:member_id", r.groupController.RemoveMember)
				groups.DELETE("/:id/members/me", r.groupController.Leave)
				groups.GET("/:id/external-participants", r.groupController.ListExternalParticipants)

				// Trips live under their group for creation and listing
				if r.tripController != nil {
					groups.POST("/:id/trips", r.tripController.Create)
					groups.GET("/:id/trips", r.tripController.List)
				}

				// Group-wide balance summary
				if r.balanceController != nil {
					groups.GET("/:id/balances", r.balanceController.GetGroupBalances)
				}
			}

			// Invite acceptance route (separate path)
			invites := v1.Group("/groups/invites")
			invites.Use(r.authMiddleware.Authenticate())
			{
				invites.POST("/:token/accept", r.groupController.AcceptInvite)
			}
		}

		// Trip routes (require authentication)
		if r.tripController != nil && r.authMiddleware != nil {
			trips := v1.Group("/trips")
			trips.Use(r.authMiddleware.Authenticate())
			{
				trips.GET("/:id", r.tripController.Get)
				trips.GET("/:id/days", r.tripController.ListDays)
				trips.PUT("/:id", r.tripController.Update)
				trips.PUT("/:id/schedule", r.tripController.ChangeDates)
				trips.DELETE("/:id", r.tripController.Delete)

				// Itinerary events (nested under trips)
				if r.eventController != nil {
					trips.POST("/:id/events", r.eventController.Create)
					trips.GET("/:id/events", r.eventController.List)
				}

				// Points of interest (nested under trips)
				if r.poiController != nil {
					trips.POST("/:id/pois", r.poiController.Create)
					trips.GET("/:id/pois", r.poiController.List)
				}

				// Expenses (nested under trips)
				if r.expenseController != nil {
					trips.POST("/:id/expenses", r.expenseController.Create)
					trips.GET("/:id/expenses", r.expenseController.List)
					trips.POST("/:id/expenses/suggest-category", r.expenseController.SuggestCategory)
				}

				// Trip-scoped balance summary
				if r.balanceController != nil {
					trips.GET("/:id/balances", r.balanceController.GetTripBalances)
				}
			}
		}

		// Event routes addressed by event ID (require authentication)
		if r.eventController != nil && r.authMiddleware != nil {
			events := v1.Group("/events")
			events.Use(r.authMiddleware.Authenticate())
			{
				events.PUT("/:id", r.eventController.Update)
				events.DELETE("/:id", r.eventController.Delete)
			}
		}

		// POI routes addressed by POI ID (require authentication)
		if r.poiController != nil && r.authMiddleware != nil {
			pois := v1.Group("/pois")
			pois.Use(r.authMiddleware.Authenticate())
			{
				pois.PUT("/:id", r.poiController.Update)
				pois.DELETE("/:id", r.poiController.Delete)
			}
		}

		// Expense routes addressed by expense ID (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
