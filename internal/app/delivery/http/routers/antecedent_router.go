package routers

import (
	"cpn-service/internal/app/delivery/http/middlewares"
	"cpn-service/internal/app/services/core/antecedents"
	"cpn-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachAntecedentRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, antecedentController *antecedents.AntecedentController) {
	router.Use(middlewares.Authenticate(logger))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleDoctor))
		r.Get("/", antecedentController.FindAll)
	})

	// Definition management is an admin concern.
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(logger, constvars.RoleAdmin))
		r.Post("/", antecedentController.Create)
		r.Put("/{"+constvars.URLParamAntecedentID+"}", antecedentController.Update)
		r.Delete("/{"+constvars.URLParamAntecedentID+"}", antecedentController.Delete)
	})
}
