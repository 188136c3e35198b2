package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := signup(t, env, "gia", "pw", "Gia")

	rr := env.do(t, http.MethodGet, "/api/profiles/"+id.String(), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password_hash")
	assert.NotContains(t, rr.Body.String(), "gia@example.com")

	rr = env.do(t, http.MethodGet, "/api/profiles/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Profile not found", errorMessage(t, rr))

	rr = env.do(t, http.MethodGet, "/api/profiles/xyz", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	update := UpdateProfileRequest{
		FullName:  strPtr("Hana Ito"),
		Bio:       strPtr("Runner"),
		AvatarURL: strPtr("https://cdn.example.com/h.png"),
	}

	t.Run("owner updates", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		id := signup(t, env, "hana", "pw", "Hana")

		rr := env.do(t, http.MethodPut, "/api/profiles/"+id.String(), update, id.String())
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		got := decodeBody[domain.Profile](t, rr)
		assert.Equal(t, "Hana Ito", *got.FullName)
		assert.Equal(t, "Runner", *got.Bio)
		assert.Equal(t, "https://cdn.example.com/h.png", *got.AvatarURL)
	})

	t.Run("omitted fields are cleared", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		id := signup(t, env, "ivan", "pw", "Ivan")

		rr := env.do(t, http.MethodPut, "/api/profiles/"+id.String(), `{"bio":"hi"}`, id.String())
		require.Equal(t, http.StatusOK, rr.Code)

		got := decodeBody[domain.Profile](t, rr)
		assert.Nil(t, got.FullName)
		assert.Equal(t, "hi", *got.Bio)
	})

	for _, header := range []string{"", uuid.NewString()} {
		header := header
		t.Run("forbidden with header "+header, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv()
			id := signup(t, env, "jo", "pw", "Jo")

			rr := env.do(t, http.MethodPut, "/api/profiles/"+id.String(), update, header)
			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.Equal(t, "Unauthorized", errorMessage(t, rr))

			stored, err := env.profiles.GetByID(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, "Jo", *stored.FullName)
			assert.Nil(t, stored.Bio)
		})
	}

	t.Run("missing profile", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		id := uuid.NewString()

		rr := env.do(t, http.MethodPut, "/api/profiles/"+id, update, id)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Profile not found", errorMessage(t, rr))
	})
}
