package routers

import (
	"cpn-service/internal/app/delivery/http/middlewares"
	"cpn-service/internal/app/services/core/dossiers"
	"cpn-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachDossierRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, dossierController *dossiers.DossierController) {
	router.Use(middlewares.Authenticate(logger))
	router.Use(middlewares.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleReceptionist))

	router.Get("/", dossierController.FindAll)
	router.Post("/", dossierController.Create)
	router.Get("/{"+constvars.URLParamDossierUniqueID+"}", dossierController.FindByUniqueID)
}
