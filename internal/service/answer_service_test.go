package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/service"
	"github.com/openlearn/forum-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerService_Answer(t *testing.T) {
	ctx := context.Background()

	t.Run("answering notifies the question author", func(t *testing.T) {
		f := newForumFixture(t)
		asker := f.addStudent(t, "u1", "u1@example.com")
		answerer := f.addStudent(t, "u2", "u2@example.com")

		question, err := f.questionSvc.Create(ctx, service.CreateQuestionRequest{
			AuthorID: asker.ID,
			Title:    "How to center a div",
			Content:  "Please help.",
		})
		require.NoError(t, err)

		answer, err := f.answerSvc.Answer(ctx, service.AnswerQuestionRequest{
			AuthorID:   answerer.ID,
			QuestionID: question.ID,
			Content:    "use flexbox",
		})
		require.NoError(t, err)
		assert.Equal(t, question.ID, answer.QuestionID)

		all := f.notifications.All()
		require.Len(t, all, 1)
		assert.Equal(t, asker.ID, all[0].RecipientID)
		assert.Contains(t, all[0].Title, "How to center a div")
		assert.Equal(t, "use flexbox", all[0].Content)
	})

	t.Run("answering your own question emits no notification", func(t *testing.T) {
		f := newForumFixture(t)
		soloist := f.addStudent(t, "u1", "u1@example.com")

		question, err := f.questionSvc.Create(ctx, service.CreateQuestionRequest{
			AuthorID: soloist.ID,
			Title:    "Talking to myself",
			Content:  "Content",
		})
		require.NoError(t, err)

		_, err = f.answerSvc.Answer(ctx, service.AnswerQuestionRequest{
			AuthorID:   soloist.ID,
			QuestionID: question.ID,
			Content:    "never mind, solved it",
		})
		require.NoError(t, err)

		assert.Empty(t, f.notifications.All())
	})

	t.Run("answering a missing question yields not found", func(t *testing.T) {
		f := newForumFixture(t)
		answerer := f.addStudent(t, "u2", "u2@example.com")

		_, err := f.answerSvc.Answer(ctx, service.AnswerQuestionRequest{
			AuthorID:   answerer.ID,
			QuestionID: uuid.New(),
			Content:    "answering the void",
		})
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)
	})
}

func TestAnswerService_EditAndDelete(t *testing.T) {
	ctx := context.Background()

	f := newForumFixture(t)
	asker := f.addStudent(t, "u1", "u1@example.com")
	answerer := f.addStudent(t, "u2", "u2@example.com")
	intruder := f.addStudent(t, "u3", "u3@example.com")

	question, err := f.questionSvc.Create(ctx, service.CreateQuestionRequest{
		AuthorID: asker.ID,
		Title:    "How to center a div",
		Content:  "Please help.",
	})
	require.NoError(t, err)

	answer, err := f.answerSvc.Answer(ctx, service.AnswerQuestionRequest{
		AuthorID:   answerer.ID,
		QuestionID: question.ID,
		Content:    "use flexbox",
	})
	require.NoError(t, err)

	t.Run("non-author cannot edit", func(t *testing.T) {
		_, err := f.answerSvc.Edit(ctx, service.EditAnswerRequest{
			AuthorID: intruder.ID,
			AnswerID: answer.ID,
			Content:  "hijacked",
		})
		assert.ErrorIs(t, err, service.ErrNotAllowed)
	})

	t.Run("author edits with full-replace semantics", func(t *testing.T) {
		newAttachment := uuid.New()
		edited, err := f.answerSvc.Edit(ctx, service.EditAnswerRequest{
			AuthorID:      answerer.ID,
			AnswerID:      answer.ID,
			Content:       "use flexbox with justify-content",
			AttachmentIDs: []uuid.UUID{newAttachment},
		})
		require.NoError(t, err)
		assert.Equal(t, "use flexbox with justify-content", edited.Content)
		assert.Equal(t, []uuid.UUID{newAttachment}, edited.AttachmentIDs)
	})

	t.Run("deleting a missing answer yields not found", func(t *testing.T) {
		err := f.answerSvc.Delete(ctx, service.DeleteAnswerRequest{
			AuthorID: answerer.ID,
			AnswerID: uuid.New(),
		})
		assert.ErrorIs(t, err, store.ErrAnswerNotFound)
	})

	t.Run("non-author cannot delete", func(t *testing.T) {
		err := f.answerSvc.Delete(ctx, service.DeleteAnswerRequest{
			AuthorID: intruder.ID,
			AnswerID: answer.ID,
		})
		assert.ErrorIs(t, err, service.ErrNotAllowed)
	})

	t.Run("author deletes and the answer's comments go with it", func(t *testing.T) {
		_, err := f.commentSvc.CommentOnAnswer(ctx, service.CommentRequest{
			AuthorID: asker.ID,
			ParentID: answer.ID,
			Content:  "thanks, this worked",
		})
		require.NoError(t, err)

		_, err = f.commentSvc.CommentOnQuestion(ctx, service.CommentRequest{
			AuthorID: answerer.ID,
			ParentID: question.ID,
			Content:  "clarifying the question",
		})
		require.NoError(t, err)

		err = f.answerSvc.Delete(ctx, service.DeleteAnswerRequest{
			AuthorID: answerer.ID,
			AnswerID: answer.ID,
		})
		require.NoError(t, err)

		orphans, err := f.commentSvc.FetchAnswerComments(ctx, answer.ID, 1)
		require.NoError(t, err)
		assert.Empty(t, orphans)

		// Comments on the question itself are untouched.
		kept, err := f.commentSvc.FetchQuestionComments(ctx, question.ID, 1)
		require.NoError(t, err)
		assert.Len(t, kept, 1)
	})
}

func TestAnswerService_FetchByQuestion(t *testing.T) {
	ctx := context.Background()

	f := newForumFixture(t)
	asker := f.addStudent(t, "u1", "u1@example.com")
	answerer := f.addStudent(t, "Answer Author", "u2@example.com")

	question, err := f.questionSvc.Create(ctx, service.CreateQuestionRequest{
		AuthorID: asker.ID,
		Title:    "How to center a div",
		Content:  "Please help.",
	})
	require.NoError(t, err)

	_, err = f.answerSvc.Answer(ctx, service.AnswerQuestionRequest{
		AuthorID:   answerer.ID,
		QuestionID: question.ID,
		Content:    "use flexbox",
	})
	require.NoError(t, err)

	t.Run("answers come hydrated with their author", func(t *testing.T) {
		answers, err := f.answerSvc.FetchByQuestion(ctx, question.ID, 1)
		require.NoError(t, err)
		require.Len(t, answers, 1)
		assert.Equal(t, "Answer Author", answers[0].AuthorName)
	})

	t.Run("page below 1 is rejected", func(t *testing.T) {
		_, err := f.answerSvc.FetchByQuestion(ctx, question.ID, 0)
		assert.ErrorIs(t, err, service.ErrInvalidPage)
	})
}
