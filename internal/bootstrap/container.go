package bootstrap

import (
	"time"

	"helpdesk-chatbot-be/internal/config"
	"helpdesk-chatbot-be/internal/controller"
	"helpdesk-chatbot-be/internal/pkg/logger"
	"helpdesk-chatbot-be/internal/repository/memory"
	"helpdesk-chatbot-be/internal/repository/unitofwork"
	"helpdesk-chatbot-be/internal/service"
	"helpdesk-chatbot-be/pkg/matching"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	ChatController  controller.IChatController
	AgentController controller.IAgentController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	IndexerService service.IIndexerService

	// Exposed for warm-up at startup
	MatchingEngine *matching.Engine

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Matching Engine
	opts := matching.DefaultOptions()
	opts.Threshold = cfg.Matcher.SimilarityThreshold
	opts.MaxFeatures = cfg.Matcher.MaxFeatures
	opts.NgramMin = cfg.Matcher.NgramMin
	opts.NgramMax = cfg.Matcher.NgramMax

	engine := matching.NewEngine(service.NewCorpusLoader(uowFactory), opts)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.KnowledgeChangedTopic, pubSub)
	indexerService := service.NewIndexerService(pubSub, cfg.Keys.KnowledgeChangedTopic, engine, sysLogger)

	authService := service.NewAuthService(uowFactory, cfg.Auth)
	chatService := service.NewChatService(uowFactory, engine, sysLogger)
	agentService := service.NewAgentService(uowFactory, sysLogger)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, sysLogger)

	analyticsCache := memory.NewAnalyticsCache(time.Duration(cfg.Matcher.AnalyticsCacheTTL) * time.Second)
	adminService := service.NewAdminService(uowFactory, analyticsCache, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		ChatController:  controller.NewChatController(chatService),
		AgentController: controller.NewAgentController(agentService),
		AdminController: controller.NewAdminController(adminService, knowledgeService, sysLogger),

		IndexerService: indexerService,
		MatchingEngine: engine,
		Logger:         sysLogger,
	}
}
