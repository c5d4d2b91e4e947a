package dependency_container

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/app/apikey"
	"github.com/NeuralTrust/TaskAPI/pkg/app/ratelimit"
	"github.com/NeuralTrust/TaskAPI/pkg/app/seed"
	"github.com/NeuralTrust/TaskAPI/pkg/app/task"
	"github.com/NeuralTrust/TaskAPI/pkg/app/taskcache"
	"github.com/NeuralTrust/TaskAPI/pkg/app/user"
	"github.com/NeuralTrust/TaskAPI/pkg/config"
	domainApikey "github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	domainTask "github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	domainUser "github.com/NeuralTrust/TaskAPI/pkg/domain/user"
	handlers "github.com/NeuralTrust/TaskAPI/pkg/handlers/http"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/breaker"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/database"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/repository"
	"github.com/NeuralTrust/TaskAPI/pkg/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

var ErrMissingDependency = errors.New("missing dependency")

type Container struct {
	TaskRepository      domainTask.Repository
	UserRepository      domainUser.Repository
	ApiKeyRepository    domainApikey.Repository
	TaskCache           taskcache.Cache
	RateLimiter         ratelimit.Limiter
	Seeder              *seed.Seeder
	MiddlewareTransport *middleware.Transport
	HandlerTransport    *handlers.HandlerTransport
}

type ContainerDI struct {
	Cfg       *config.Config
	Logger    *logrus.Logger
	DB        *database.DB
	Redis     *redis.Client
	StartedAt time.Time
}

func NewContainer(di ContainerDI) (*Container, error) {
	if di.Cfg == nil || di.Logger == nil || di.DB == nil || di.Redis == nil {
		return nil, ErrMissingDependency
	}
	development := di.Cfg.Server.IsDevelopment()

	// repository
	taskRepository := repository.NewTaskRepository(di.DB.DB)
	userRepository := repository.NewUserRepository(di.DB.DB)
	apiKeyRepository := repository.NewApiKeyRepository(di.DB.DB)

	// store-backed core
	taskCache := taskcache.NewCache(di.Redis, di.Logger, di.Cfg.Cache.TTLDuration())
	rateLimiter := ratelimit.NewLimiter(di.Redis, di.Logger, ratelimit.Options{
		Max:           di.Cfg.RateLimit.Max,
		WindowSeconds: di.Cfg.RateLimit.WindowSeconds,
		Breaker: breaker.NewCircuitBreaker(
			"rate-limit-store",
			di.Cfg.RateLimit.Breaker.OpenTimeout,
			di.Cfg.RateLimit.Breaker.MaxFailures,
		),
	})

	// service
	apiKeyFinder := apikey.NewFinder(apiKeyRepository, di.Logger)
	userCreator := user.NewCreator(di.Logger, userRepository, apiKeyRepository, nil)
	taskCreator := task.NewCreator(di.Logger, taskRepository, taskCache)
	taskFinder := task.NewFinder(di.Logger, taskRepository, taskCache)
	taskUpdater := task.NewUpdater(di.Logger, taskRepository, taskCache)
	taskDeleter := task.NewDeleter(di.Logger, taskRepository, taskCache)

	middlewareTransport := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger, development),
		CORSMiddleware:         middleware.NewCORSGlobalMiddleware(di.Cfg.CORS),
		RequestLogMiddleware:   middleware.NewRequestLogMiddleware(di.Logger),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(),
		AuthMiddleware:         middleware.NewAuthMiddleware(di.Logger, apiKeyFinder),
		RateLimitMiddleware:    middleware.NewRateLimitMiddleware(rateLimiter, time.Now),
	}

	redisPing := func(ctx context.Context) error {
		return di.Redis.Ping(ctx).Err()
	}

	handlerTransport := &handlers.HandlerTransport{
		HealthHandler:       handlers.NewHealthHandler(di.Logger, di.StartedAt, di.DB.Ping, redisPing, time.Now),
		GetVersionHandler:   handlers.NewGetVersionHandler(),
		CreateUserHandler:   handlers.NewCreateUserHandler(di.Logger, userCreator, development),
		CreateTaskHandler:   handlers.NewCreateTaskHandler(di.Logger, taskCreator, development),
		ListTasksHandler:    handlers.NewListTasksHandler(di.Logger, taskFinder, development),
		UpdateTaskHandler:   handlers.NewUpdateTaskHandler(di.Logger, taskUpdater, development),
		CompleteTaskHandler: handlers.NewCompleteTaskHandler(di.Logger, taskUpdater, development),
		DeleteTaskHandler:   handlers.NewDeleteTaskHandler(di.Logger, taskDeleter, development),
	}

	return &Container{
		TaskRepository:      taskRepository,
		UserRepository:      userRepository,
		ApiKeyRepository:    apiKeyRepository,
		TaskCache:           taskCache,
		RateLimiter:         rateLimiter,
		Seeder:              seed.NewSeeder(di.Logger, userRepository, apiKeyRepository, taskRepository),
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
	}, nil
}
