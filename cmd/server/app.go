package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/openlearn/forum-api/internal/config"
	"github.com/openlearn/forum-api/internal/platform/postgres"
	"github.com/openlearn/forum-api/internal/platform/storage"
	"github.com/openlearn/forum-api/internal/service"
	"github.com/openlearn/forum-api/internal/service/auth"
	"github.com/openlearn/forum-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	studentStore      store.StudentStore
	questionStore     store.QuestionStore
	answerStore       store.AnswerStore
	commentStore      store.CommentStore
	attachmentStore   store.AttachmentStore
	notificationStore store.NotificationStore

	// Services
	jwtService          auth.JWTService
	studentService      *service.StudentService
	questionService     *service.QuestionService
	answerService       *service.AnswerService
	commentService      *service.CommentService
	notificationService *service.NotificationService
	attachmentService   *service.AttachmentService
}

// newApplication wires stores and services over the shared database handle.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	app.studentStore = postgres.NewPostgresStudentStore(db, log)
	app.questionStore = postgres.NewPostgresQuestionStore(db, log)
	app.answerStore = postgres.NewPostgresAnswerStore(db, log)
	app.commentStore = postgres.NewPostgresCommentStore(db, log)
	app.attachmentStore = postgres.NewPostgresAttachmentStore(db, log)
	app.notificationStore = postgres.NewPostgresNotificationStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	uploader, err := storage.NewDiskUploader(cfg.Upload, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create disk uploader: %w", err)
	}

	app.notificationService = service.NewNotificationService(app.notificationStore, log)
	app.studentService = service.NewStudentService(app.studentStore, hasher, hasher, jwtService, log)
	app.questionService = service.NewQuestionService(app.questionStore, app.answerStore, app.commentStore, app.notificationService, log)
	app.answerService = service.NewAnswerService(app.answerStore, app.questionStore, app.commentStore, app.notificationService, log)
	app.commentService = service.NewCommentService(
		app.commentStore,
		app.questionStore,
		app.answerStore,
		app.notificationService,
		log,
	)
	app.attachmentService = service.NewAttachmentService(app.attachmentStore, uploader, log)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
