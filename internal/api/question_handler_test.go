package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/api"
	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/mocks"
	"github.com/openlearn/forum-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// questionAPIFixture wires a question handler over in-memory stores with a
// router that injects the acting student's ID, standing in for the JWT
// middleware.
type questionAPIFixture struct {
	students  *mocks.StudentStore
	questions *mocks.QuestionStore
	service   *service.QuestionService
	handler   *api.QuestionHandler
}

func newQuestionAPIFixture(t *testing.T) *questionAPIFixture {
	t.Helper()

	students := mocks.NewStudentStore()
	questions := mocks.NewQuestionStore()
	answers := mocks.NewAnswerStore(students)
	comments := mocks.NewCommentStore(students)
	notifications := mocks.NewNotificationStore()

	notifier := service.NewNotificationService(notifications, nil)
	questionService := service.NewQuestionService(questions, answers, comments, notifier, nil)

	return &questionAPIFixture{
		students:  students,
		questions: questions,
		service:   questionService,
		handler:   api.NewQuestionHandler(questionService),
	}
}

// router builds the question routes with every request authenticated as the
// given student.
func (f *questionAPIFixture) router(studentID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), shared.StudentIDContextKey, studentID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/questions", f.handler.Create)
	r.Get("/questions", f.handler.FetchRecent)
	r.Get("/questions/{slug}", f.handler.GetBySlug)
	r.Put("/questions/{id}", f.handler.Edit)
	r.Delete("/questions/{id}", f.handler.Delete)
	return r
}

func (f *questionAPIFixture) addStudent(t *testing.T, name, email string) *domain.Student {
	t.Helper()
	student, err := domain.NewStudent(name, email, "hashed:pw")
	require.NoError(t, err)
	require.NoError(t, f.students.Create(context.Background(), student))
	return student
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestQuestionHandler_Create(t *testing.T) {
	f := newQuestionAPIFixture(t)
	author := f.addStudent(t, "Jo Doe", "jo@example.com")
	router := f.router(author.ID)

	t.Run("creates a question with a derived slug", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/questions", api.CreateQuestionRequest{
			Title:   "How to center a div?",
			Content: "Please help.",
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp api.QuestionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "how-to-center-a-div", resp.Slug)
		assert.Equal(t, author.ID, resp.AuthorID)
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/questions", api.CreateQuestionRequest{
			Content: "No title here.",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestQuestionHandler_GetBySlug(t *testing.T) {
	f := newQuestionAPIFixture(t)
	author := f.addStudent(t, "Jo Doe", "jo@example.com")
	router := f.router(author.ID)

	created := doJSON(t, router, http.MethodPost, "/questions", api.CreateQuestionRequest{
		Title:   "How to center a div?",
		Content: "Please help.",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	t.Run("existing slug returns the question", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/questions/how-to-center-a-div", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.QuestionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "How to center a div?", resp.Title)
	})

	t.Run("unknown slug returns 404", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/questions/no-such-question", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestQuestionHandler_Edit(t *testing.T) {
	f := newQuestionAPIFixture(t)
	author := f.addStudent(t, "Jo Doe", "jo@example.com")
	intruder := f.addStudent(t, "Sam Spy", "sam@example.com")

	created := doJSON(t, f.router(author.ID), http.MethodPost, "/questions", api.CreateQuestionRequest{
		Title:   "How to center a div?",
		Content: "Please help.",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var question api.QuestionResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&question))

	t.Run("author edits and the slug follows the title", func(t *testing.T) {
		rr := doJSON(t, f.router(author.ID), http.MethodPut, "/questions/"+question.ID.String(),
			api.EditQuestionRequest{
				Title:   "Centering in CSS",
				Content: "Updated content.",
			})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.QuestionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "centering-in-css", resp.Slug)
	})

	t.Run("non-author edit returns 403", func(t *testing.T) {
		rr := doJSON(t, f.router(intruder.ID), http.MethodPut, "/questions/"+question.ID.String(),
			api.EditQuestionRequest{
				Title:   "Hijacked",
				Content: "Hijacked content.",
			})
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		rr := doJSON(t, f.router(author.ID), http.MethodPut, "/questions/not-a-uuid",
			api.EditQuestionRequest{
				Title:   "Whatever",
				Content: "Whatever.",
			})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rr := doJSON(t, f.router(author.ID), http.MethodPut, "/questions/"+uuid.NewString(),
			api.EditQuestionRequest{
				Title:   "Whatever",
				Content: "Whatever.",
			})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestQuestionHandler_FetchRecent(t *testing.T) {
	f := newQuestionAPIFixture(t)
	author := f.addStudent(t, "Jo Doe", "jo@example.com")
	router := f.router(author.ID)

	created := doJSON(t, router, http.MethodPost, "/questions", api.CreateQuestionRequest{
		Title:   "How to center a div?",
		Content: "Please help.",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	t.Run("default page returns the question list", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/questions", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp []api.QuestionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("page zero returns 400", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/questions?page=0", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-numeric page returns 400", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/questions?page=two", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unauthenticated request returns 401", func(t *testing.T) {
		rr := doJSON(t, f.router(uuid.Nil), http.MethodGet, "/questions", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
