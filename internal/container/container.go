package container

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/analytics"
	"github.com/saulo-duarte/neurobridge-lambda/internal/assistant"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/cache"
	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/llm"
	"github.com/saulo-duarte/neurobridge-lambda/internal/notify"
	"github.com/saulo-duarte/neurobridge-lambda/internal/queue"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/remark"
	"github.com/saulo-duarte/neurobridge-lambda/internal/report"
	"github.com/saulo-duarte/neurobridge-lambda/internal/resume"
	"github.com/saulo-duarte/neurobridge-lambda/internal/router"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
)

type Container struct {
	Redis    *redis.Client
	Store    cache.Store
	Broker   queue.Broker
	Hub      *notify.Hub
	Relay    *notify.RedisRelay
	Notifier notify.Notifier

	UserContainer      *user.UserContainer
	CatalogHandler     *catalog.Handler
	AIQuizContainer    *aiquiz.AIQuizContainer
	QuizContainer      *quiz.QuizContainer
	CandidateContainer *candidate.CandidateContainer
	RemarkContainer    *remark.Container
	ReportContainer    *report.Container
	AnalyticsContainer *analytics.Container
	ResumeContainer    *resume.Container
	AssistantContainer *assistant.Container
}

type options struct {
	inlineJobs bool
}

type Option func(*options)

// WithInlineJobs runs queued jobs inside Publish when RabbitMQ is not
// configured, so they finish before the response is returned.
func WithInlineJobs() Option {
	return func(o *options) { o.inlineJobs = true }
}

func New(opts ...Option) *Container {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := migrate(); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	c := &Container{Hub: notify.NewHub()}
	c.Notifier = c.Hub
	c.Store = cache.NewMemoryStore()

	if addr := config.GetEnv("REDIS_ADDR"); addr != "" {
		client, err := cache.NewRedisClient(ctx, addr, config.GetEnv("REDIS_PASSWORD"))
		if err != nil {
			config.Logger.WithError(err).Warn("Redis unavailable, using in-memory cache")
		} else {
			c.Redis = client
			c.Store = cache.NewRedisStore(client, "neurobridge:")
			c.Relay = notify.NewRedisRelay(client, c.Hub)
			c.Notifier = c.Relay
		}
	}

	if o.inlineJobs {
		c.Broker = queue.NewInline()
	} else {
		c.Broker = queue.NewLocal()
	}
	if url := config.GetEnv("RABBITMQ_URL"); url != "" {
		broker, err := queue.NewRabbitMQ(url)
		if err != nil {
			config.Logger.WithError(err).Warn("RabbitMQ unavailable, running jobs in-process")
		} else {
			c.Broker = broker
		}
	}

	llmClient, err := llm.NewClient(ctx, llm.Config{
		Provider:     config.GetEnv("LLM_PROVIDER"),
		BaseURL:      config.GetEnv("LLM_BASE_URL"),
		APIKey:       config.GetEnv("LLM_API_KEY"),
		Model:        config.GetEnv("LLM_MODEL"),
		Referer:      config.GetEnv("LLM_REFERER"),
		AppTitle:     config.GetEnv("LLM_APP_TITLE"),
		GeminiAPIKey: config.GetEnv("GEMINI_API_KEY"),
		GeminiModel:  config.GetEnv("GEMINI_MODEL"),
	})
	if err != nil {
		log.Fatalf("failed to create LLM client: %v", err)
	}
	if !llmClient.Configured() {
		config.Logger.Warn("No LLM credential configured, quiz generation is disabled")
	}

	cat := catalog.MustLoad()
	tokenTTL := time.Duration(config.GetEnvInt("JWT_TTL_HOURS", 24)) * time.Hour

	c.UserContainer = user.NewUserContainer(config.DB, tokenTTL)
	c.CatalogHandler = catalog.NewHandler(cat)
	c.AIQuizContainer = aiquiz.NewAIQuizContainer(llmClient)
	c.QuizContainer = quiz.NewQuizContainer(config.DB, c.Store, cat, c.AIQuizContainer.Service, c.Broker, c.Notifier)
	c.CandidateContainer = candidate.NewCandidateContainer(config.DB, c.UserContainer.Service)
	c.RemarkContainer = remark.NewContainer(config.DB, c.CandidateContainer.Service)
	c.ReportContainer = report.NewContainer(c.CandidateContainer.Service, c.RemarkContainer.Service, c.Broker, c.Notifier)
	c.AnalyticsContainer = analytics.NewContainer(c.CandidateContainer.Service, c.QuizContainer.Service, c.Store)
	c.ResumeContainer = resume.NewContainer(config.DB, c.UserContainer.Service, c.CandidateContainer.Service, c.QuizContainer.Service)
	c.AssistantContainer = assistant.NewContainer()

	return c
}

func migrate() error {
	if err := config.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return config.DB.AutoMigrate(
		&user.Profile{},
		&candidate.CandidateDetails{},
		&remark.ManagerRemark{},
		&quiz.QuizResult{},
		&resume.GeneratedResume{},
	)
}

func (c *Container) Router() router.RouterConfig {
	return router.RouterConfig{
		UserHandler:         c.UserContainer.Handler,
		CatalogHandler:      c.CatalogHandler,
		AIQuizHandler:       c.AIQuizContainer.Handler,
		QuizHandler:         c.QuizContainer.Handler,
		CandidateHandler:    c.CandidateContainer.Handler,
		RemarkHandler:       c.RemarkContainer.Handler,
		ReportHandler:       c.ReportContainer.Handler,
		AnalyticsHandler:    c.AnalyticsContainer.Handler,
		ResumeHandler:       c.ResumeContainer.Handler,
		NotificationHandler: notify.NewHandler(c.Hub),
		AssistantHandler:    c.AssistantContainer.Handler,
		CookieDomain:        config.GetEnv("COOKIE_DOMAIN"),
	}
}

// StartWorkers subscribes the job handlers and, with redis configured, starts
// relaying notifications to this process's sockets until ctx is done.
func (c *Container) StartWorkers(ctx context.Context) error {
	if err := c.Broker.Subscribe(queue.TopicQuizFeedback, c.QuizContainer.Worker.Handle); err != nil {
		return err
	}
	if err := c.Broker.Subscribe(queue.TopicReportShare, c.ReportContainer.Worker.Handle); err != nil {
		return err
	}
	if c.Relay != nil {
		go c.Relay.Run(ctx)
	}
	return nil
}

// InProcessJobs reports whether queued jobs run inside this process.
func (c *Container) InProcessJobs() bool {
	_, ok := c.Broker.(*queue.Local)
	return ok
}

func (c *Container) Close() {
	if err := c.Broker.Close(); err != nil {
		config.Logger.WithError(err).Warn("Failed to close broker")
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
