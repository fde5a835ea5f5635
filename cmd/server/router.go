package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openlearn/forum-api/internal/api"
	apiMiddleware "github.com/openlearn/forum-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceID)

	authHandler := api.NewAuthHandler(app.studentService, app.jwtService)
	questionHandler := api.NewQuestionHandler(app.questionService)
	answerHandler := api.NewAnswerHandler(app.answerService)
	commentHandler := api.NewCommentHandler(app.commentService)
	notificationHandler := api.NewNotificationHandler(app.notificationService)
	attachmentHandler := api.NewAttachmentHandler(app.attachmentService, app.config.Upload)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public endpoints
	r.Post("/accounts", authHandler.Register)
	r.Post("/sessions", authHandler.Login)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/questions", questionHandler.Create)
		r.Get("/questions", questionHandler.FetchRecent)
		r.Get("/questions/{slug}", questionHandler.GetBySlug)
		r.Put("/questions/{id}", questionHandler.Edit)
		r.Delete("/questions/{id}", questionHandler.Delete)

		r.Post("/questions/{questionId}/answers", answerHandler.Create)
		r.Get("/questions/{questionId}/answers", answerHandler.List)
		r.Put("/answers/{id}", answerHandler.Edit)
		r.Delete("/answers/{id}", answerHandler.Delete)
		r.Patch("/answers/{answerId}/choose-as-best", questionHandler.ChooseBestAnswer)

		r.Post("/questions/{questionId}/comments", commentHandler.CreateOnQuestion)
		r.Get("/questions/{questionId}/comments", commentHandler.ListOnQuestion)
		r.Delete("/questions/comments/{id}", commentHandler.DeleteOnQuestion)
		r.Post("/answers/{answerId}/comments", commentHandler.CreateOnAnswer)
		r.Get("/answers/{answerId}/comments", commentHandler.ListOnAnswer)
		r.Delete("/answers/comments/{id}", commentHandler.DeleteOnAnswer)

		r.Patch("/notifications/{notificationId}/read", notificationHandler.Read)

		r.Post("/attachments", attachmentHandler.Upload)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
