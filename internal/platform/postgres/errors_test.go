package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openlearn/forum-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// fakeResult implements sql.Result for unit tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Run("affected rows pass", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrQuestionNotFound))
	})

	t.Run("zero rows returns the sentinel", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrQuestionNotFound)
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)
	})

	t.Run("result errors are wrapped", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{err: errors.New("driver closed")}, store.ErrQuestionNotFound)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrQuestionNotFound)
	})
}
