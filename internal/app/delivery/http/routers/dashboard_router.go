package routers

import (
	"cpn-service/internal/app/delivery/http/middlewares"
	"cpn-service/internal/app/services/core/dashboard"
	"cpn-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachDashboardRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, dashboardController *dashboard.DashboardController) {
	router.Use(middlewares.Authenticate(logger))
	router.Use(middlewares.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleReceptionist))

	router.Get("/summary", dashboardController.Summary)
}
