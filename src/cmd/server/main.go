package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"

	httpadapter "github.com/darshan-rambhia/vamsa-sub006/src/adapters/http"
	"github.com/darshan-rambhia/vamsa-sub006/src/helper/env"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/kafka"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/postgres"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/redis"
	"github.com/darshan-rambhia/vamsa-sub006/src/repositories"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/calendar"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/metrics"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/persons"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/relationships"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/tree"
)

func main() {
	log.SetOutput(os.Stdout)
	log.Println("Starting API server with Uber Fx...")

	app := fx.New(
		// Providers
		fx.Provide(
			newLogger,
			newSQLClient,
			newRedisClient,
			newKafkaClient,
			newEventPublisher,
			newTreeQueryRepository,
			newCachedTreeRepository,
			newPersonRepository,
			newRelationshipRepository,
			newLifeEventRepository,
			newCalendarQueryRepository,
			newPersonService,
			newRelationshipService,
			newTreeService,
			newCalendarService,
			newMetricsService,
			newServer,
		),

		// Invocations
		fx.Invoke(registerServerHooks),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wait for app to exit gracefully
	<-app.Done()
}

func newLogger() *slog.Logger {
	logLevel := env.GetString("LOG_LEVEL", "info")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// newSQLClient configures the read and write pools. Without a dedicated
// replica both hosts default to DB_HOST.
func newSQLClient() (*postgres.ReadWriteClient, error) {
	dbHost := env.MustGetString("DB_HOST")
	dbReadHost := env.GetString("DB_READ_HOST", dbHost)
	dbPort := env.GetString("DB_PORT", "5432")
	dbReadPort := env.GetString("DB_READ_PORT", dbPort)
	dbname := env.MustGetString("DB_NAME")
	dbUser := env.MustGetString("DB_USER")
	dbPassword := env.MustGetString("DB_PASSWORD")
	maxConnections := env.GetInt("DB_MAX_POOL_CONNECTIONS", 25)

	return postgres.NewReadWriteClient(dbReadHost, dbHost, dbReadPort, dbPort, dbname, dbUser, dbPassword, maxConnections)
}

// newRedisClient returns nil when REDIS_ADDR is unset, which disables the
// tree cache without touching the rest of the wiring.
func newRedisClient() *redis.RedisClient {
	redisAddr := env.GetString("REDIS_ADDR", "")
	if redisAddr == "" {
		log.Println("REDIS_ADDR not set, tree cache disabled")
		return nil
	}

	poolSize := env.GetInt("REDIS_POOL_SIZE", 10)
	cacheTTL := time.Duration(env.GetInt("REDIS_CACHE_TTL_SECONDS", 300)) * time.Second

	return redis.NewRedisClient(redisAddr, poolSize, cacheTTL)
}

// newKafkaClient returns nil when KAFKA_BROKERS is unset, which turns the
// domain event publisher into a no-op.
func newKafkaClient() (*kafka.KafkaClient, error) {
	brokers := env.GetString("KAFKA_BROKERS", "")
	if brokers == "" {
		log.Println("KAFKA_BROKERS not set, domain events disabled")
		return nil, nil
	}

	return kafka.NewKafkaClient(brokers)
}

func newEventPublisher(logger *slog.Logger, kafkaClient *kafka.KafkaClient) *events.DomainEventPublisher {
	topic := env.GetString("KAFKA_DOMAIN_EVENTS_TOPIC", "genealogy.domain-events")
	return events.NewDomainEventPublisher(logger, kafkaClient, topic)
}

func newTreeQueryRepository(readWriteClient *postgres.ReadWriteClient) *repositories.TreeQueryRepository {
	return repositories.NewTreeQueryRepository(readWriteClient.GetReadPool())
}

func newCachedTreeRepository(treeQueryRepository *repositories.TreeQueryRepository, redisClient *redis.RedisClient) *repositories.CachedTreeRepository {
	return repositories.NewCachedTreeRepository(treeQueryRepository, redisClient)
}

func newPersonRepository(readWriteClient *postgres.ReadWriteClient, cachedTreeRepository *repositories.CachedTreeRepository) *repositories.PersonRepository {
	return repositories.NewPersonRepository(readWriteClient.GetWritePool(), cachedTreeRepository)
}

func newRelationshipRepository(readWriteClient *postgres.ReadWriteClient, cachedTreeRepository *repositories.CachedTreeRepository) *repositories.RelationshipRepository {
	return repositories.NewRelationshipRepository(readWriteClient.GetWritePool(), cachedTreeRepository)
}

func newLifeEventRepository(readWriteClient *postgres.ReadWriteClient) *repositories.LifeEventRepository {
	return repositories.NewLifeEventRepository(readWriteClient.GetWritePool())
}

func newCalendarQueryRepository(readWriteClient *postgres.ReadWriteClient) *repositories.CalendarQueryRepository {
	return repositories.NewCalendarQueryRepository(readWriteClient.GetReadPool())
}

func newPersonService(
	personRepository *repositories.PersonRepository,
	relationshipRepository *repositories.RelationshipRepository,
	lifeEventRepository *repositories.LifeEventRepository,
	eventPublisher *events.DomainEventPublisher,
) *persons.PersonService {
	return persons.NewPersonService(personRepository, relationshipRepository, lifeEventRepository, eventPublisher)
}

func newRelationshipService(
	relationshipRepository *repositories.RelationshipRepository,
	personRepository *repositories.PersonRepository,
	eventPublisher *events.DomainEventPublisher,
) *relationships.RelationshipService {
	return relationships.NewRelationshipService(relationshipRepository, personRepository, eventPublisher)
}

func newTreeService(cachedTreeRepository *repositories.CachedTreeRepository) *tree.TreeService {
	return tree.NewTreeService(cachedTreeRepository)
}

func newCalendarService(calendarQueryRepository *repositories.CalendarQueryRepository) *calendar.CalendarService {
	return calendar.NewCalendarService(calendarQueryRepository)
}

func newMetricsService(readWriteClient *postgres.ReadWriteClient, redisClient *redis.RedisClient) *metrics.MetricsService {
	return metrics.NewMetricsService(readWriteClient.GetWritePool(), redisClient)
}

func newServer(
	logger *slog.Logger,
	personService *persons.PersonService,
	relationshipService *relationships.RelationshipService,
	treeService *tree.TreeService,
	calendarService *calendar.CalendarService,
	metricsService *metrics.MetricsService,
) *httpadapter.Server {
	port := env.GetInt("SERVER_PORT", 8888)

	return httpadapter.NewServer(logger, port, personService, relationshipService, treeService, calendarService, metricsService)
}

// registerServerHooks registers lifecycle hooks for the HTTP server
func registerServerHooks(
	lc fx.Lifecycle,
	srv *httpadapter.Server,
	readWriteClient *postgres.ReadWriteClient,
	redisClient *redis.RedisClient,
	kafkaClient *kafka.KafkaClient,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Start server in a separate goroutine
			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Create timeout context for graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			log.Println("Shutting down server...")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server forced to shutdown: %v", err)
				return err
			}

			readWriteClient.Close()
			if redisClient != nil {
				if err := redisClient.Close(); err != nil {
					log.Printf("Failed to close redis client: %v", err)
				}
			}
			if kafkaClient != nil {
				if err := kafkaClient.Close(); err != nil {
					log.Printf("Failed to close kafka client: %v", err)
				}
			}

			log.Println("Server exited gracefully")
			return nil
		},
	})
}
