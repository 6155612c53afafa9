package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct {
	id uuid.UUID
}

func (c *fakeClaims) GetRecruiterID() uuid.UUID { return c.id }

type fakeValidator struct {
	id    uuid.UUID
	valid string
}

func (v *fakeValidator) ValidateToken(token string) (RecruiterIDGetter, error) {
	if token == v.valid {
		return &fakeClaims{id: v.id}, nil
	}
	return nil, errors.New("invalid token")
}

func protected(t *testing.T, wantID uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetRecruiterID(r)
		require.NoError(t, err)
		assert.Equal(t, wantID, id)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	id := uuid.New()
	mw := Auth(&fakeValidator{id: id, valid: "good-token"})

	req := httptest.NewRequest(http.MethodGet, "/candidates", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	mw(protected(t, id)).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	id := uuid.New()
	mw := Auth(&fakeValidator{id: id, valid: "good-token"})

	req := httptest.NewRequest(http.MethodGet, "/candidates", nil)
	req.Header.Set("Authorization", "bearer good-token")
	w := httptest.NewRecorder()

	mw(protected(t, id)).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_Rejections(t *testing.T) {
	mw := Auth(&fakeValidator{id: uuid.New(), valid: "good-token"})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"malformed", "Bearer"},
		{"invalid token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/candidates", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			mw(next).ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGetRecruiterID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/candidates", nil)
	_, err := GetRecruiterID(req)
	assert.Error(t, err)
}
