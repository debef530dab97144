package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"brightside-be/internal/config"
	"brightside-be/internal/controller"
	"brightside-be/internal/entity"
	"brightside-be/internal/handler"
	"brightside-be/internal/pkg/logger"
	"brightside-be/internal/pkg/mailer"
	"brightside-be/internal/repository/contract"
	"brightside-be/internal/repository/implementation"
	"brightside-be/internal/repository/memory"
	"brightside-be/internal/service"
	"brightside-be/internal/websocket"
	"brightside-be/pkg/llm/factory"
	pktNats "brightside-be/pkg/nats"
	"brightside-be/pkg/realtime"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	EQBotController     controller.IEQBotController
	DebateController    controller.IDebateController
	AnalyticsController controller.IAnalyticsController

	// Background services (exposed for main.go to run)
	AlertConsumerService service.IAlertConsumerService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub

	// In-process fan-out, exposed for tests and extra subscribers
	Broker *realtime.Broker

	NatsPublisher *pktNats.Publisher
	Logger        logger.ILogger
}

// NewContainer wires the application graph. db may be nil, in which case all
// stores run in memory.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// Event bus for the distress-alert pipeline. The buffer keeps a slow email
	// consumer from blocking chat requests.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermillLogger)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.GroqAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)

	// Stores: gorm-backed when a connection string is configured, in-memory
	// otherwise. Topics and conversation state always live in memory.
	var (
		eqRepo     contract.EQSessionRepository
		debateRepo contract.DebateSessionRepository
		userRepo   contract.UserRepository
	)
	if db != nil {
		eqRepo = implementation.NewEQSessionRepository(db)
		debateRepo = implementation.NewDebateSessionRepository(db)
		userRepo = implementation.NewUserRepository(db)
		log.Printf("[INFO] Using postgres session stores")
	} else {
		eqRepo = memory.NewEQSessionRepository()
		debateRepo = memory.NewDebateSessionRepository()
		userRepo = memory.NewUserRepository()
		log.Printf("[INFO] Using in-memory session stores")
	}
	topicRepo := memory.NewDebateTopicRepository(builtinDebateTopics())
	contextRepo := memory.NewContextRepository()
	stateRepo := memory.NewDebateStateRepository()

	// External event export, optional
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	// Cross-instance websocket relay, optional
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, relay disabled: %v", err)
		} else {
			rdb = redis.NewClient(opts)
		}
	}

	broker := realtime.NewBroker()
	hub := websocket.NewHub(rdb, sysLogger)

	// Recorded sessions flow broker -> hub -> connected dashboards.
	broker.Subscribe(realtime.ChannelEQ, func(payload interface{}) {
		if session, ok := payload.(*entity.EQSession); ok {
			hub.Send(session.UserId, "eq_session", session)
		}
	})
	broker.Subscribe(realtime.ChannelDebate, func(payload interface{}) {
		if session, ok := payload.(*entity.DebateSession); ok {
			hub.Send(session.UserId, "debate_session", session)
		}
	})

	authService := service.NewAuthService(userRepo, cfg.Auth.JwtSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	eqBotService := service.NewEQBotService(eqRepo, contextRepo, broker, pubSub,
		cfg.Alert.TopicName, llmProvider, natsPub, sysLogger, cfg.Alert.DistressThreshold)
	debateService := service.NewDebateService(debateRepo, topicRepo, stateRepo,
		broker, llmProvider, natsPub, sysLogger)
	analyticsService := service.NewAnalyticsService(eqRepo, debateRepo)
	alertConsumer := service.NewAlertConsumerService(pubSub, cfg.Alert.TopicName,
		userRepo, emailService, sysLogger)

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		EQBotController:      controller.NewEQBotController(eqBotService),
		DebateController:     controller.NewDebateController(debateService),
		AnalyticsController:  controller.NewAnalyticsController(analyticsService),
		AlertConsumerService: alertConsumer,
		StreamHandler:        handler.NewStreamHandler(hub, sysLogger),
		WebSocketHub:         hub,
		Broker:               broker,
		NatsPublisher:        natsPub,
		Logger:               sysLogger,
	}
}
