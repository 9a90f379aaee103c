package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vacancyhq/jobdesk-api/internal/api"
	apiMiddleware "github.com/vacancyhq/jobdesk-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(app.tokenService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	jobHandler := api.NewJobHandler(app.jobService, app.logger)
	responseHandler := api.NewResponseHandler(app.responseService, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.userStore)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints.
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)
		r.Post("/users", userHandler.Register)
		r.Get("/users", userHandler.List)
		r.Get("/jobs", jobHandler.List)
		r.Get("/jobs/{id}", jobHandler.Get)

		// Protected endpoints.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Patch("/users/{id}", userHandler.Update)

			r.Post("/jobs", jobHandler.Create)
			r.Delete("/jobs/{id}", jobHandler.Delete)

			r.Post("/responses", responseHandler.Create)
			r.Get("/responses/my", responseHandler.ListMine)
			r.Get("/responses/company", responseHandler.ListCompany)
			r.Get("/responses/job/{jobID}", responseHandler.ListForJob)
			r.Delete("/responses/{id}", responseHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
