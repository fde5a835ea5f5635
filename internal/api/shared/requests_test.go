package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeJSON(t *testing.T) {
	t.Run("valid json populates the target", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost,
			"/test",
			bytes.NewBufferString(`{"title": "How to center a div", "content": "help"}`),
		)

		var target struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		assert.NoError(t, DecodeJSON(req, &target))
		assert.Equal(t, "How to center a div", target.Title)
		assert.Equal(t, "help", target.Content)
	})

	t.Run("malformed json errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{not json`))

		var target struct{}
		assert.Error(t, DecodeJSON(req, &target))
	})

	t.Run("empty body errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(""))

		var target struct{}
		assert.Error(t, DecodeJSON(req, &target))
	})
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Page  int    `validate:"gte=1"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(payload{Email: "jo@example.com", Page: 1}))
	})

	t.Run("tag violations error", func(t *testing.T) {
		assert.Error(t, ValidateRequest(payload{Email: "not-an-email", Page: 1}))
		assert.Error(t, ValidateRequest(payload{Email: "jo@example.com", Page: 0}))
	})
}
