package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/service"
)

// QuestionHandler handles question-related HTTP requests.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// Create handles POST /questions requests.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	var req CreateQuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	question, err := h.questionService.Create(r.Context(), service.CreateQuestionRequest{
		AuthorID:      studentID,
		Title:         req.Title,
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		slog.Error("failed to create question", "error", err, "student_id", studentID)
		HandleAPIError(w, r, err, "Failed to create question")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, questionToResponse(question))
}

// FetchRecent handles GET /questions requests.
func (h *QuestionHandler) FetchRecent(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireStudentID(w, r); !ok {
		return
	}

	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	questions, err := h.questionService.FetchRecent(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch questions")
		return
	}

	responses := make([]QuestionResponse, 0, len(questions))
	for _, question := range questions {
		responses = append(responses, questionToResponse(question))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetBySlug handles GET /questions/{slug} requests.
func (h *QuestionHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireStudentID(w, r); !ok {
		return
	}

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Slug is required")
		return
	}

	question, err := h.questionService.GetBySlug(r.Context(), slug)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch question")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questionToResponse(question))
}

// Edit handles PUT /questions/{id} requests.
func (h *QuestionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	questionID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req EditQuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	question, err := h.questionService.Edit(r.Context(), service.EditQuestionRequest{
		AuthorID:      studentID,
		QuestionID:    questionID,
		Title:         req.Title,
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to edit question")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questionToResponse(question))
}

// Delete handles DELETE /questions/{id} requests.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	questionID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	err = h.questionService.Delete(r.Context(), service.DeleteQuestionRequest{
		AuthorID:   studentID,
		QuestionID: questionID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete question")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChooseBestAnswer handles PATCH /answers/{answerId}/choose-as-best requests.
func (h *QuestionHandler) ChooseBestAnswer(w http.ResponseWriter, r *http.Request) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	answerID, err := getPathUUID(r, "answerId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	question, err := h.questionService.ChooseBestAnswer(r.Context(), service.ChooseBestAnswerRequest{
		AuthorID: studentID,
		AnswerID: answerID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to choose best answer")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questionToResponse(question))
}
