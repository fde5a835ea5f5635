package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/service"
)

// CommentHandler handles comment-related HTTP requests for both comment
// flavors. Each route is bound to one flavor; the handler never guesses the
// parent type from the payload.
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateOnQuestion handles POST /questions/{questionId}/comments requests.
func (h *CommentHandler) CreateOnQuestion(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, "questionId", h.commentService.CommentOnQuestion)
}

// CreateOnAnswer handles POST /answers/{answerId}/comments requests.
func (h *CommentHandler) CreateOnAnswer(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, "answerId", h.commentService.CommentOnAnswer)
}

func (h *CommentHandler) create(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	createFn func(ctx context.Context, req service.CommentRequest) (*domain.Comment, error),
) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	parentID, err := getPathUUID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	comment, err := createFn(r.Context(), service.CommentRequest{
		AuthorID: studentID,
		ParentID: parentID,
		Content:  req.Content,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, commentToResponse(comment))
}

// ListOnQuestion handles GET /questions/{questionId}/comments requests.
func (h *CommentHandler) ListOnQuestion(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "questionId", h.commentService.FetchQuestionComments)
}

// ListOnAnswer handles GET /answers/{answerId}/comments requests.
func (h *CommentHandler) ListOnAnswer(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "answerId", h.commentService.FetchAnswerComments)
}

func (h *CommentHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	fetchFn func(ctx context.Context, parentID uuid.UUID, page int) ([]*domain.CommentWithAuthor, error),
) {
	if _, ok := requireStudentID(w, r); !ok {
		return
	}

	parentID, err := getPathUUID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := getPageParam(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comments, err := fetchFn(r.Context(), parentID, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch comments")
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response := commentToResponse(&comment.Comment)
		response.AuthorName = comment.AuthorName
		responses = append(responses, response)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// DeleteOnQuestion handles DELETE /questions/comments/{id} requests.
func (h *CommentHandler) DeleteOnQuestion(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.commentService.DeleteOnQuestion)
}

// DeleteOnAnswer handles DELETE /answers/comments/{id} requests.
func (h *CommentHandler) DeleteOnAnswer(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.commentService.DeleteOnAnswer)
}

func (h *CommentHandler) delete(
	w http.ResponseWriter,
	r *http.Request,
	deleteFn func(ctx context.Context, req service.DeleteCommentRequest) error,
) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	commentID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	err = deleteFn(r.Context(), service.DeleteCommentRequest{
		AuthorID:  studentID,
		CommentID: commentID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete comment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
