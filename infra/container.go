package infra

import (
	"context"
	"database/sql"
	"time"

	"logiflow/infra/database"
	"logiflow/infra/database/db_dynamodb"
	"logiflow/infra/database/db_postgresql"
	"logiflow/infra/middleware"
	"logiflow/infra/token"
	"logiflow/internal/company"
	"logiflow/internal/dashboard"
	"logiflow/internal/data_sync"
	"logiflow/internal/localstore"
	"logiflow/internal/login"
	"logiflow/internal/order"
	"logiflow/internal/profile"
	"logiflow/internal/records"
	"logiflow/internal/routes"
	"logiflow/internal/session"
	"logiflow/internal/starting_point"
	"logiflow/internal/truck"
	"logiflow/internal/ws"
	"logiflow/pkg/cache"
	"logiflow/pkg/maps"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	directionsCacheTTL = 24 * time.Hour
	remoteDynamoDB     = "dynamodb"
)

type ContainerDI struct {
	Config      Config
	ConnDB      *sql.DB
	Redis       *redis.Client
	LocalStore  *localstore.Store
	SyncRemote  data_sync.Remote
	Directions  maps.DirectionsProvider
	PasetoMaker token.Maker
	Middleware  *middleware.Middleware
	Hub         *ws.Hub

	RepositoryCompany       *company.Repository
	RepositorySession       *session.Repository
	LoginRepository         *login.Repository
	RepositoryProfile       *profile.Repository
	RepositoryTruck         *truck.Repository
	RepositoryOrder         *order.Repository
	RepositoryStartingPoint *starting_point.Repository
	RepositoryRoutes        *routes.Repository
	RepositoryDashboard     *dashboard.Repository

	ServiceCompany       *company.Service
	ServiceSession       *session.Service
	LoginService         *login.Service
	ServiceProfile       *profile.Service
	ServiceTruck         *truck.Service
	ServiceOrder         *order.Service
	ServiceStartingPoint *starting_point.Service
	ServiceRoutes        *routes.Service
	ServiceDashboard     *dashboard.Service
	ServiceRecords       *records.Service
	ServiceSync          *data_sync.Service
	WsService            *ws.Service

	HandlerCompany       *company.Handler
	HandlerSession       *session.Handler
	LoginHandler         *login.Handler
	HandlerProfile       *profile.Handler
	HandlerTruck         *truck.Handler
	HandlerOrder         *order.Handler
	HandlerStartingPoint *starting_point.Handler
	HandlerRoutes        *routes.Handler
	HandlerDashboard     *dashboard.Handler
	HandlerRecords       *records.Handler
	WsHandler            *ws.Handler
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.db()
	container.buildPkg()
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) db() {
	dbConfig := database.Config{
		Host:        c.Config.DBHost,
		Port:        c.Config.DBPort,
		User:        c.Config.DBUser,
		Password:    c.Config.DBPassword,
		Database:    c.Config.DBDatabase,
		SSLMode:     c.Config.DBSSLMode,
		Driver:      c.Config.DBDriver,
		Environment: c.Config.Environment,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig)

	rdb, err := cache.NewRedis(context.Background(), c.Config.RedisUrl)
	if err != nil {
		log.WithError(err).WithField("addr", c.Config.RedisUrl).Fatal("erro ao conectar ao redis")
	}
	c.Redis = rdb

	store, err := localstore.Open(c.Config.LocalStorePath)
	if err != nil {
		log.WithError(err).WithField("path", c.Config.LocalStorePath).Fatal("erro ao abrir armazenamento local")
	}
	c.LocalStore = store

	if c.Config.SyncRemote == remoteDynamoDB {
		client := db_dynamodb.NewClient(&database.DynamoConfig{
			Region:          c.Config.AwsRegion,
			AccessKeyID:     c.Config.AwsAccessKeyID,
			SecretAccessKey: c.Config.AwsSecretAccessKey,
			Endpoint:        c.Config.DynamoEndpoint,
			TablePrefix:     c.Config.DynamoTablePrefix,
		})
		c.SyncRemote = data_sync.NewDynamoRepository(client, c.Config.DynamoTablePrefix)
	} else {
		c.SyncRemote = data_sync.NewSyncRepository(c.ConnDB)
	}
	log.WithField("remote", c.Config.SyncRemote).Info("armazenamento remoto da sincronização configurado")
}

func (c *ContainerDI) buildPkg() {
	maker, err := token.NewPasetoMaker(c.Config.SignatureToken)
	if err != nil {
		log.WithError(err).Fatal("chave de assinatura do token inválida")
	}
	c.PasetoMaker = maker

	var provider maps.DirectionsProvider = maps.NewSimulatedProvider()
	if c.Config.GoogleMapsKey != "" {
		google, err := maps.NewGoogleProvider(c.Config.GoogleMapsKey)
		if err != nil {
			log.WithError(err).Warn("erro ao criar cliente do google maps, usando rotas simuladas")
		} else {
			provider = google
		}
	}
	c.Directions = maps.NewCachedProvider(provider, c.Redis, directionsCacheTTL)

	c.Hub = ws.NewHub()
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryCompany = company.NewCompanyRepository(c.ConnDB)
	c.RepositorySession = session.NewSessionRepository(c.LocalStore)
	c.LoginRepository = login.NewRepository(c.ConnDB)
	c.RepositoryProfile = profile.NewProfileRepository(c.ConnDB)
	c.RepositoryTruck = truck.NewTruckRepository(c.ConnDB)
	c.RepositoryOrder = order.NewOrderRepository(c.ConnDB)
	c.RepositoryStartingPoint = starting_point.NewStartingPointRepository(c.ConnDB)
	c.RepositoryRoutes = routes.NewRoutesRepository(c.ConnDB)
	c.RepositoryDashboard = dashboard.NewDashboardRepository(c.ConnDB)
}

func (c *ContainerDI) buildService() {
	c.WsService = ws.NewWsService(c.Hub)
	c.ServiceSync = data_sync.NewSyncService(c.LocalStore, c.SyncRemote, c.WsService, c.Config.SyncInterval)

	c.ServiceCompany = company.NewCompanyService(c.RepositoryCompany)
	c.ServiceSession = session.NewSessionService(c.RepositorySession, c.ServiceCompany, c.ServiceSync)
	c.LoginService = login.NewService(c.LoginRepository, c.PasetoMaker, c.Redis, c.ServiceSession, c.Config.ResetPasswordURL)
	c.ServiceProfile = profile.NewProfileService(c.RepositoryProfile)
	c.ServiceTruck = truck.NewTruckService(c.RepositoryTruck)
	c.ServiceRecords = records.NewRecordsService(c.LocalStore, c.ServiceSync)
	c.ServiceOrder = order.NewOrderService(c.RepositoryOrder, c.ServiceRecords)
	c.ServiceStartingPoint = starting_point.NewStartingPointService(c.RepositoryStartingPoint)
	c.ServiceRoutes = routes.NewRoutesService(c.RepositoryRoutes, c.Directions, c.SyncRemote, c.WsService)
	c.ServiceDashboard = dashboard.NewDashboardService(c.RepositoryDashboard)

	c.Middleware = middleware.NewMiddleware(c.PasetoMaker, c.ServiceCompany)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerCompany = company.NewCompanyHandler(c.ServiceCompany)
	c.HandlerSession = session.NewSessionHandler(c.ServiceSession)
	c.LoginHandler = login.NewHandler(c.LoginService)
	c.HandlerProfile = profile.NewProfileHandler(c.ServiceProfile)
	c.HandlerTruck = truck.NewTruckHandler(c.ServiceTruck)
	c.HandlerOrder = order.NewOrderHandler(c.ServiceOrder)
	c.HandlerStartingPoint = starting_point.NewStartingPointHandler(c.ServiceStartingPoint)
	c.HandlerRoutes = routes.NewRoutesHandler(c.ServiceRoutes)
	c.HandlerDashboard = dashboard.NewDashboardHandler(c.ServiceDashboard)
	c.HandlerRecords = records.NewRecordsHandler(c.ServiceRecords)
	c.WsHandler = ws.NewWsHandler(c.Hub)
}

// Close stops background sync and releases every connection the container opened.
func (c *ContainerDI) Close(ctx context.Context) {
	if err := c.ServiceSync.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("sincronização não terminou antes do prazo")
	}
	if err := c.LocalStore.Close(); err != nil {
		log.WithError(err).Error("erro ao fechar armazenamento local")
	}
	if err := c.Redis.Close(); err != nil {
		log.WithError(err).Error("erro ao fechar redis")
	}
	if err := c.ConnDB.Close(); err != nil {
		log.WithError(err).Error("erro ao fechar postgres")
	}
}
