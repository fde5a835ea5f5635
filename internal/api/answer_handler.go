package api

import (
	"net/http"

	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/service"
)

// AnswerHandler handles answer-related HTTP requests.
type AnswerHandler struct {
	answerService *service.AnswerService
}

// NewAnswerHandler creates a new AnswerHandler.
func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
	}
}

// Create handles POST /questions/{questionId}/answers requests.
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	questionID, err := getPathUUID(r, "questionId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	answer, err := h.answerService.Answer(r.Context(), service.AnswerQuestionRequest{
		AuthorID:      studentID,
		QuestionID:    questionID,
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create answer")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, answerToResponse(answer))
}

// List handles GET /questions/{questionId}/answers requests.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireStudentID(w, r); !ok {
		return
	}

	questionID, err := getPathUUID(r, "questionId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	answers, err := h.answerService.FetchByQuestion(r.Context(), questionID, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch answers")
		return
	}

	responses := make([]AnswerResponse, 0, len(answers))
	for _, answer := range answers {
		responses = append(responses, answerWithAuthorToResponse(answer))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Edit handles PUT /answers/{id} requests.
func (h *AnswerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	answerID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req EditAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	answer, err := h.answerService.Edit(r.Context(), service.EditAnswerRequest{
		AuthorID:      studentID,
		AnswerID:      answerID,
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to edit answer")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, answerToResponse(answer))
}

// Delete handles DELETE /answers/{id} requests.
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	answerID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	err = h.answerService.Delete(r.Context(), service.DeleteAnswerRequest{
		AuthorID: studentID,
		AnswerID: answerID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete answer")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// answerWithAuthorToResponse converts a hydrated answer read model to an
// AnswerResponse.
func answerWithAuthorToResponse(answer *domain.AnswerWithAuthor) AnswerResponse {
	response := answerToResponse(&answer.Answer)
	response.AuthorName = answer.AuthorName
	return response
}
