package routers

import (
	"cpn-service/internal/app/delivery/http/middlewares"
	"cpn-service/internal/app/services/core/users"
	"cpn-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachUserRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate(logger))
	router.Use(middlewares.RequireRoles(logger, constvars.RoleAdmin))

	router.Get("/", userController.FindAll)
	router.Post("/", userController.Create)
	router.Get("/roles", userController.FindRoles)
	router.Post("/roles", userController.CreateRole)
	router.Put("/{"+constvars.URLParamUserID+"}", userController.Update)
	router.Patch("/{"+constvars.URLParamUserID+"}/enable", userController.Enable)
	router.Patch("/{"+constvars.URLParamUserID+"}/disable", userController.Disable)
}
