package routers

import (
	"fmt"
	"time"

	"cpn-service/internal/app/config"
	"cpn-service/internal/app/delivery/http/middlewares"
	"cpn-service/internal/app/services/core/antecedents"
	"cpn-service/internal/app/services/core/auth"
	"cpn-service/internal/app/services/core/cpn"
	"cpn-service/internal/app/services/core/dashboard"
	"cpn-service/internal/app/services/core/dossiers"
	"cpn-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	dossierController *dossiers.DossierController,
	antecedentController *antecedents.AntecedentController,
	cpnController *cpn.CpnController,
	userController *users.UserController,
	dashboardController *dashboard.DashboardController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, logger, middlewares, authController)
			})

			r.Route("/dossier", func(r chi.Router) {
				attachDossierRoutes(r, logger, middlewares, dossierController)
			})

			r.Route("/antecedent", func(r chi.Router) {
				attachAntecedentRoutes(r, logger, middlewares, antecedentController)
			})

			r.Route("/cpn", func(r chi.Router) {
				attachCpnRoutes(r, logger, middlewares, cpnController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, logger, middlewares, userController)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, logger, middlewares, dashboardController)
			})
		})
	})
}
