package routers

import (
	"fmt"
	"konsulin-portal/internal/app/config"
	"konsulin-portal/internal/app/delivery/http/controllers"
	"konsulin-portal/internal/app/delivery/http/middlewares"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Controllers struct {
	Session      *controllers.SessionController
	Psychologist *controllers.PsychologistController
	Notification *controllers.NotificationController
	Profile      *controllers.ProfileController
	Complaint    *controllers.ComplaintController
	Application  *controllers.ApplicationController
	Transaction  *controllers.TransactionController
	Analytics    *controllers.AnalyticsController
	Dashboard    *controllers.DashboardController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	accessLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	metricsHandler http.Handler,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.ErrorHandler)
	if accessLog != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))
	}
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.Instrument)

	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/portal", func(r chi.Router) {
				r.Use(middlewares.Authenticate)
				attachPortalRoutes(r, ctrls)

				r.Route("/admin", func(r chi.Router) {
					attachAdminRoutes(r, middlewares, ctrls)
				})
			})
		})
	})
}
