// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/trip-planner/backend/config"
	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/application/usecase/auth"
	"github.com/trip-planner/backend/internal/application/usecase/balance"
	"github.com/trip-planner/backend/internal/application/usecase/event"
	"github.com/trip-planner/backend/internal/application/usecase/expense"
	"github.com/trip-planner/backend/internal/application/usecase/group"
	"github.com/trip-planner/backend/internal/application/usecase/poi"
	"github.com/trip-planner/backend/internal/application/usecase/trip"
	"github.com/trip-planner/backend/internal/infra/server/router"
	"github.com/trip-planner/backend/internal/integration/adapters"
	"github.com/trip-planner/backend/internal/integration/email"
	"github.com/trip-planner/backend/internal/integration/email/templates"
	"github.com/trip-planner/backend/internal/integration/entrypoint/controller"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/trip-planner/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The balance cache is passed in so the caller decides whether Redis backs it.
func NewInjector(cfg *config.Config, db *gorm.DB, balanceCache adapter.BalanceCache) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	groupRepo := persistence.NewGroupRepository(db)
	externalParticipantRepo := persistence.NewExternalParticipantRepository(db)
	tripRepo := persistence.NewTripRepository(db)
	eventRepo := persistence.NewEventRepository(db)
	poiRepo := persistence.NewPoiRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	categoryService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	participantResolver := expense.NewExternalParticipantResolver(externalParticipantRepo)

	// Create the email worker. Queued mail is sent through Resend when an
	// API key is configured, otherwise logged by the mock sender.
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)

	// Create group use cases
	inviteURL := cfg.Email.AppBaseURL + "/invites/accept"
	createGroupUseCase := group.NewCreateGroupUseCase(groupRepo, userRepo)
	listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)
	getGroupUseCase := group.NewGetGroupUseCase(groupRepo)
	updateGroupUseCase := group.NewUpdateGroupUseCase(groupRepo)
	deleteGroupUseCase := group.NewDeleteGroupUseCase(groupRepo, balanceCache)
	inviteMemberUseCase := group.NewInviteMemberUseCase(groupRepo, userRepo, emailService, inviteURL)
	acceptInviteUseCase := group.NewAcceptInviteUseCase(groupRepo, userRepo)
	changeMemberRoleUseCase := group.NewChangeMemberRoleUseCase(groupRepo)
	removeMemberUseCase := group.NewRemoveMemberUseCase(groupRepo)
	leaveGroupUseCase := group.NewLeaveGroupUseCase(groupRepo)
	listExternalParticipantsUseCase := group.NewListExternalParticipantsUseCase(groupRepo, externalParticipantRepo)

	// Create trip use cases
	createTripUseCase := trip.NewCreateTripUseCase(tripRepo, groupRepo)
	listTripsUseCase := trip.NewListTripsUseCase(tripRepo, groupRepo)
	getTripUseCase := trip.NewGetTripUseCase(tripRepo, groupRepo)
	updateTripUseCase := trip.NewUpdateTripUseCase(tripRepo, groupRepo)
	regenerateScheduleUseCase := trip.NewRegenerateScheduleUseCase(tripRepo, groupRepo, userRepo, emailService, balanceCache)
	deleteTripUseCase := trip.NewDeleteTripUseCase(tripRepo, groupRepo, balanceCache)

	// Create event use cases
	createEventUseCase := event.NewCreateEventUseCase(eventRepo, tripRepo, groupRepo)
	listEventsUseCase := event.NewListEventsUseCase(eventRepo, tripRepo, groupRepo)
	updateEventUseCase := event.NewUpdateEventUseCase(eventRepo, tripRepo, groupRepo)
	deleteEventUseCase := event.NewDeleteEventUseCase(eventRepo, tripRepo, groupRepo)

	// Create point-of-interest use cases
	createPoiUseCase := poi.NewCreatePoiUseCase(poiRepo, tripRepo, groupRepo)
	listPoisUseCase := poi.NewListPoisUseCase(poiRepo, tripRepo, groupRepo)
	updatePoiUseCase := poi.NewUpdatePoiUseCase(poiRepo, tripRepo, groupRepo)
	deletePoiUseCase := poi.NewDeletePoiUseCase(poiRepo, tripRepo, groupRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, groupRepo, tripRepo, eventRepo, participantResolver, balanceCache)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo, groupRepo)
	listTripExpensesUseCase := expense.NewListTripExpensesUseCase(expenseRepo, groupRepo, tripRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, groupRepo, tripRepo, eventRepo, participantResolver, balanceCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, groupRepo, balanceCache)
	suggestCategoryUseCase := expense.NewSuggestCategoryUseCase(categoryService, groupRepo, tripRepo)

	// Create balance use cases
	getTripBalancesUseCase := balance.NewGetTripBalancesUseCase(expenseRepo, groupRepo, tripRepo, balanceCache)
	getGroupBalancesUseCase := balance.NewGetGroupBalancesUseCase(expenseRepo, groupRepo, tripRepo, balanceCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		updateProfileUseCase,
	)

	groupController := controller.NewGroupController(
		createGroupUseCase,
		listGroupsUseCase,
		getGroupUseCase,
		updateGroupUseCase,
		deleteGroupUseCase,
		inviteMemberUseCase,
		acceptInviteUseCase,
		changeMemberRoleUseCase,
		removeMemberUseCase,
		leaveGroupUseCase,
		listExternalParticipantsUseCase,
	)

	tripController := controller.NewTripController(
		createTripUseCase,
		listTripsUseCase,
		getTripUseCase,
		updateTripUseCase,
		regenerateScheduleUseCase,
		deleteTripUseCase,
	)

	eventController := controller.NewEventController(
		createEventUseCase,
		listEventsUseCase,
		updateEventUseCase,
		deleteEventUseCase,
	)

	poiController := controller.NewPoiController(
		createPoiUseCase,
		listPoisUseCase,
		updatePoiUseCase,
		deletePoiUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		listTripExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		suggestCategoryUseCase,
		tripRepo,
	)

	balanceController := controller.NewBalanceController(
		getTripBalancesUseCase,
		getGroupBalancesUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		groupController,
		tripController,
		eventController,
		poiController,
		expenseController,
		balanceController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
