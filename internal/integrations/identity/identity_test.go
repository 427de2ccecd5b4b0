package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanClick-BookingService/pkg/logger"
)

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifier(t *testing.T) {
	v := NewVerifier("s3cret")
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	sub, err := v.Verify(signToken(t, "s3cret", jwt.RegisteredClaims{Subject: "cleaner-1", ExpiresAt: future}, jwt.SigningMethodHS256))
	require.NoError(t, err)
	assert.Equal(t, "cleaner-1", sub)

	cases := map[string]string{
		"empty":         "",
		"garbage":       "not.a.jwt",
		"wrong secret":  signToken(t, "other", jwt.RegisteredClaims{Subject: "cleaner-1", ExpiresAt: future}, jwt.SigningMethodHS256),
		"expired":       signToken(t, "s3cret", jwt.RegisteredClaims{Subject: "cleaner-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}, jwt.SigningMethodHS256),
		"no expiration": signToken(t, "s3cret", jwt.RegisteredClaims{Subject: "cleaner-1"}, jwt.SigningMethodHS256),
		"no subject":    signToken(t, "s3cret", jwt.RegisteredClaims{ExpiresAt: future}, jwt.SigningMethodHS256),
	}
	for name, token := range cases {
		_, err := v.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}

	_, err = NewVerifier("").Verify("anything")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClient_GetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/auth/v1/admin/users/u-1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u-1","email":"maria@example.com","user_metadata":{"name":" Maria "}}`))
		case "/auth/v1/admin/users/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "service-key", time.Second, logger.NewNop())
	ctx := context.Background()

	user, err := client.GetUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, "Maria", user.DisplayName())

	_, err = client.GetUser(ctx, "u-2")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = client.GetUser(ctx, "broken")
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = NewClient("", "", time.Second, logger.NewNop()).GetUser(ctx, "u-1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
