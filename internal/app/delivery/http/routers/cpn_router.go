package routers

import (
	"cpn-service/internal/app/delivery/http/middlewares"
	"cpn-service/internal/app/services/core/cpn"
	"cpn-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachCpnRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, cpnController *cpn.CpnController) {
	router.Use(middlewares.Authenticate(logger))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleReceptionist))
		r.Get("/", cpnController.FindByPatient)
		r.Get("/schedule-preview", cpnController.GetSchedule)
		r.Get("/{"+constvars.URLParamCpnID+"}", cpnController.FindByID)
	})

	// Only clinicians create records.
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleDoctor))
		r.Get("/form", cpnController.GetForm)
		r.Post("/", cpnController.Submit)
	})
}
