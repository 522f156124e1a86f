package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "logiflow/docs"
	"logiflow/infra"
	_midlleware "logiflow/infra/middleware"
	"logiflow/internal/company"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 15 * time.Second

// @title LogiFlow API
// @version 1.0
// @description Gestão de frota, pedidos e rotas com sincronização offline.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, _midlleware.HeaderCompanyID},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	hubCtx, stopHub := context.WithCancel(context.Background())
	go container.Hub.Run(hubCtx)

	registerRoutes(e, container)

	go func() {
		if err := e.Start(container.Config.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("erro ao iniciar servidor")
		}
	}()
	log.WithField("port", container.Config.ServerPort).Info("servidor iniciado")

	<-ctx.Done()
	log.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	stopHub()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("erro ao encerrar servidor")
	}
	container.Close(shutdownCtx)
}

func registerRoutes(e *echo.Echo, container *infra.ContainerDI) {
	mw := container.Middleware

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/ws", container.WsHandler.HandleWs, mw.CheckAuthorization, mw.RequireCompany)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", container.LoginHandler.Login)
	auth.POST("/register", container.LoginHandler.CreateUser)
	auth.POST("/reset-password", container.LoginHandler.ResetPassword)
	auth.POST("/reset-password/confirm", container.LoginHandler.ConfirmResetPassword)
	auth.POST("/logout", container.LoginHandler.Logout, mw.CheckAuthorization)

	user := api.Group("", mw.CheckAuthorization)
	user.GET("/profile", container.HandlerProfile.GetProfileHandler)
	user.PUT("/profile", container.HandlerProfile.UpdateProfileHandler)

	user.POST("/companies", container.HandlerCompany.CreateCompanyHandler)
	user.GET("/companies", container.HandlerCompany.GetUserCompaniesHandler)
	user.GET("/companies/:id", container.HandlerCompany.GetCompanyHandler)
	user.GET("/companies/:id/users", container.HandlerCompany.GetCompanyUsersHandler)
	user.POST("/companies/:id/users", container.HandlerCompany.AddUserToCompanyHandler)
	user.PUT("/companies/:id/users/:user_id", container.HandlerCompany.UpdateUserRoleHandler)
	user.DELETE("/companies/:id/users/:user_id", container.HandlerCompany.RemoveUserFromCompanyHandler)

	user.POST("/session/company", container.HandlerSession.SelectCompanyHandler)
	user.GET("/session/company", container.HandlerSession.GetSelectedCompanyHandler)
	user.DELETE("/session/company", container.HandlerSession.ClearSelectionHandler)

	tenant := api.Group("", mw.CheckAuthorization, mw.RequireCompany)
	managers := _midlleware.RequireRole(company.RoleAdmin, company.RoleManager)

	tenant.GET("/dashboard", container.HandlerDashboard.GetDashboardHandler)

	tenant.POST("/trucks", container.HandlerTruck.CreateTruckHandler, managers)
	tenant.GET("/trucks", container.HandlerTruck.ListTrucksHandler)
	tenant.GET("/trucks/rodizio/:plate", container.HandlerTruck.CheckRodizioHandler)
	tenant.GET("/trucks/:id", container.HandlerTruck.GetTruckHandler)
	tenant.PUT("/trucks/:id", container.HandlerTruck.UpdateTruckHandler, managers)
	tenant.DELETE("/trucks/:id", container.HandlerTruck.DeleteTruckHandler, managers)

	tenant.POST("/orders", container.HandlerOrder.CreateOrderHandler)
	tenant.GET("/orders", container.HandlerOrder.ListOrdersHandler)
	tenant.GET("/orders/:id", container.HandlerOrder.GetOrderHandler)
	tenant.DELETE("/orders/:id", container.HandlerOrder.DeleteOrderHandler)

	tenant.POST("/starting-points", container.HandlerStartingPoint.CreateStartingPointHandler, managers)
	tenant.GET("/starting-points", container.HandlerStartingPoint.ListStartingPointsHandler)
	tenant.GET("/starting-points/default", container.HandlerStartingPoint.GetDefaultStartingPointHandler)
	tenant.PUT("/starting-points/:id/default", container.HandlerStartingPoint.SetDefaultStartingPointHandler, managers)
	tenant.DELETE("/starting-points/:id", container.HandlerStartingPoint.DeleteStartingPointHandler, managers)

	tenant.POST("/routes/suggest", container.HandlerRoutes.SuggestTruckHandler)
	tenant.POST("/routes/confirm", container.HandlerRoutes.ConfirmRouteHandler)
	tenant.GET("/routes", container.HandlerRoutes.ListRoutesHandler)
	tenant.GET("/routes/:id", container.HandlerRoutes.GetRouteHandler)
	tenant.PUT("/routes/:id/complete", container.HandlerRoutes.CompleteRouteHandler)

	tenant.POST("/records/actions", container.HandlerRecords.SaveActionHandler)
	tenant.GET("/records/actions", container.HandlerRecords.GetActionsHandler)
	tenant.POST("/records/forms", container.HandlerRecords.SaveFormHandler)
	tenant.GET("/records/forms", container.HandlerRecords.GetFormsHandler)
	tenant.POST("/records/orders", container.HandlerRecords.SaveOrderHandler)
	tenant.GET("/records/orders", container.HandlerRecords.GetOrdersHandler)
	tenant.GET("/records/history", container.HandlerRecords.GetHistoryHandler)
	tenant.GET("/records/tracking", container.HandlerRecords.GetTrackingHandler)
	tenant.POST("/sync/force", container.HandlerRecords.ForceSyncHandler)
	tenant.GET("/sync/status", container.HandlerRecords.SyncStatusHandler)
}
