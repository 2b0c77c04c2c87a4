package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/phrazzld/elearn-api/internal/api"
	apiMiddleware "github.com/phrazzld/elearn-api/internal/api/middleware"
)

// setupRouter mounts every API route and the middleware chain.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.CORS(app.config.Server.CORSAllowedOrigins))

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	topicHandler := api.NewTopicHandler(app.topicService, app.logger)
	quizHandler := api.NewQuizHandler(app.quizService, app.logger)
	progressHandler := api.NewProgressHandler(app.progressService, app.recommendationService, app.logger)
	sessionHandler := api.NewSessionHandler(app.sessionService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.Health)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/topics", topicHandler.CreateTopic)
			r.Get("/topics", topicHandler.ListTopics)
			r.Get("/topics/{id}", topicHandler.GetTopic)

			r.Post("/quiz/submit", quizHandler.SubmitQuiz)
			r.Post("/quiz/adaptive", quizHandler.AdaptiveQuiz)

			r.Get("/progress/{user_id}", progressHandler.GetProgress)
			r.Post("/progress/update", progressHandler.UpdateProgress)
			r.Get("/recommendations/{user_id}", progressHandler.GetRecommendations)

			r.Post("/session/start", sessionHandler.StartSession)
			r.Post("/session/end", sessionHandler.EndSession)
		})
	})

	// otelhttp wraps the router so Trace sees the server span.
	return otelhttp.NewHandler(r, "elearn-api")
}
