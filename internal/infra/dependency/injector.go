// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sendhur-chits/backend/config"
	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/application/usecase/auction"
	"github.com/sendhur-chits/backend/internal/application/usecase/auth"
	"github.com/sendhur-chits/backend/internal/application/usecase/collection"
	"github.com/sendhur-chits/backend/internal/application/usecase/daysheet"
	"github.com/sendhur-chits/backend/internal/application/usecase/group"
	"github.com/sendhur-chits/backend/internal/application/usecase/ledger"
	"github.com/sendhur-chits/backend/internal/application/usecase/member"
	"github.com/sendhur-chits/backend/internal/application/usecase/notification"
	"github.com/sendhur-chits/backend/internal/infra/cache"
	"github.com/sendhur-chits/backend/internal/infra/server/router"
	"github.com/sendhur-chits/backend/internal/integration/adapters"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/controller"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/middleware"
	"github.com/sendhur-chits/backend/internal/integration/notify"
	"github.com/sendhur-chits/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config             *config.Config
	DB                 *gorm.DB
	Router             *router.Router
	NotificationWorker *notify.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	counterRepo := persistence.NewCounterRepository(db)
	memberRepo := persistence.NewMemberRepository(db)
	employeeRepo := persistence.NewEmployeeRepository(db)
	groupRepo := persistence.NewGroupRepository(db)
	auctionRepo := persistence.NewAuctionRepository(db)
	collectionRepo := persistence.NewCollectionRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	notificationQueueRepo := persistence.NewNotificationQueueRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	var reminderGate adapter.ReminderGate
	if redisClient != nil {
		reminderGate = cache.NewReminderGate(redisClient)
	}

	// Create notification delivery clients and worker
	smsSender := notify.NewSMSClient(
		cfg.SMS.GatewayURL,
		cfg.SMS.APIKey,
		cfg.SMS.SenderID,
		cfg.SMS.RequestTimeout,
	)
	emailSender := notify.NewResendClient(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromName,
		cfg.Email.FromEmail,
	)
	notificationWorker := notify.NewWorker(notificationQueueRepo, smsSender, emailSender, notify.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	loginUseCase := auth.NewLoginEmployeeUseCase(employeeRepo, passwordService, tokenService)
	registerUseCase := auth.NewRegisterEmployeeUseCase(employeeRepo, counterRepo, passwordService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(employeeRepo, tokenService)
	logoutUseCase := auth.NewLogoutUseCase(tokenService)

	// Create group use cases
	createGroupUseCase := group.NewCreateGroupUseCase(groupRepo, memberRepo)
	listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)
	getGroupUseCase := group.NewGetGroupUseCase(groupRepo, auctionRepo)
	addMemberUseCase := group.NewAddMemberUseCase(groupRepo, memberRepo)

	// Create member use cases
	createMemberUseCase := member.NewCreateMemberUseCase(memberRepo, counterRepo)
	listMembersUseCase := member.NewListMembersUseCase(memberRepo)
	getMemberUseCase := member.NewGetMemberUseCase(memberRepo, groupRepo)
	reconcileDueUseCase := member.NewReconcileDueUseCase(memberRepo, groupRepo, auctionRepo, collectionRepo)

	// Create auction use cases
	startAuctionUseCase := auction.NewStartAuctionUseCase(groupRepo, auctionRepo)
	listAuctionsUseCase := auction.NewListAuctionsUseCase(groupRepo, auctionRepo)

	// Create collection use cases
	recordCollectionUseCase := collection.NewRecordCollectionUseCase(
		groupRepo,
		memberRepo,
		auctionRepo,
		collectionRepo,
		notificationQueueRepo,
	)
	listCollectionsUseCase := collection.NewListCollectionsUseCase(collectionRepo)
	dueSheetUseCase := collection.NewDueSheetUseCase(groupRepo, memberRepo, auctionRepo, collectionRepo)

	// Create ledger use cases
	recordPaymentUseCase := ledger.NewRecordPaymentUseCase(auctionRepo, ledgerRepo)
	recordEntriesUseCase := ledger.NewRecordEntriesUseCase(ledgerRepo, employeeRepo)

	// Create day sheet use cases
	buildDaySheetUseCase := daysheet.NewBuildDaySheetUseCase(ledgerRepo)
	masterLedgerUseCase := daysheet.NewMasterLedgerUseCase(ledgerRepo)

	// Create notification use cases
	queueDueReminderUseCase := notification.NewQueueDueReminderUseCase(memberRepo, notificationQueueRepo, reminderGate)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		registerUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	groupController := controller.NewGroupController(
		createGroupUseCase,
		listGroupsUseCase,
		getGroupUseCase,
		addMemberUseCase,
	)

	memberController := controller.NewMemberController(
		createMemberUseCase,
		listMembersUseCase,
		getMemberUseCase,
		reconcileDueUseCase,
		queueDueReminderUseCase,
	)

	auctionController := controller.NewAuctionController(
		startAuctionUseCase,
		listAuctionsUseCase,
	)

	collectionController := controller.NewCollectionController(
		recordCollectionUseCase,
		listCollectionsUseCase,
		dueSheetUseCase,
	)

	ledgerController := controller.NewLedgerController(
		recordPaymentUseCase,
		recordEntriesUseCase,
	)

	daySheetController := controller.NewDaySheetController(
		buildDaySheetUseCase,
		masterLedgerUseCase,
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
		groupController,
		memberController,
		auctionController,
		collectionController,
		ledgerController,
		daySheetController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:             cfg,
		DB:                 db,
		Router:             r,
		NotificationWorker: notificationWorker,
	}
}
