package routers

import (
	"cpn-service/internal/app/delivery/http/middlewares"
	"cpn-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachAuthRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate(logger))
		r.Post("/logout", authController.Logout)
	})
}
