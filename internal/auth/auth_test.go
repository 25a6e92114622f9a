package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "catalog_token"

func newManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return m
}

func newRouter(m *TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(m, CookieConfig{Name: cookieName}, logger.NewNop()).Register(api)

	protected := api.Group("", Middleware(m, cookieName, logger.NewNop()))
	protected.GET("/whoami", func(c *gin.Context) {
		subject, _ := SubjectFromContext(c.Request.Context())
		c.String(http.StatusOK, subject)
	})
	return r
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndVerify(t *testing.T) {
	m := newManager(t)

	token, expiresAt, err := m.Issue()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	_, err = uuid.Parse(subject)
	assert.NoError(t, err)
}

func TestVerifyRejects(t *testing.T) {
	m := newManager(t)
	valid, _, err := m.Issue()
	require.NoError(t, err)

	other, err := NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)
	foreign, _, err := other.Issue()
	require.NoError(t, err)

	expired, err := NewTokenManager("test-secret", time.Minute)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, err := expired.Issue()
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "Tampered", token: valid + "x"},
		{name: "Signed with another key", token: foreign},
		{name: "Expired", token: stale},
		{name: "Unsigned", token: none},
		{name: "Subject is not a UUID", token: badSubject},
		{name: "Garbage", token: "abc.def.ghi"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Verify(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestMiddleware(t *testing.T) {
	m := newManager(t)
	router := newRouter(m)
	token, _, err := m.Issue()
	require.NoError(t, err)
	subject, err := m.Verify(token)
	require.NoError(t, err)

	testCases := []struct {
		name               string
		cookie             *http.Cookie
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "No cookie",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Tampered cookie",
			cookie:             &http.Cookie{Name: cookieName, Value: token + "x"},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:               "Valid cookie",
			cookie:             &http.Cookie{Name: cookieName, Value: token},
			expectedStatusCode: http.StatusOK,
			expectedBody:       subject,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			rec := httptest.NewRecorder()

			// Act
			router.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestIssueTokenSetsCookieThatPassesMiddleware(t *testing.T) {
	router := newRouter(newManager(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/token", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newRouter(newManager(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSubjectFromContext(t *testing.T) {
	_, ok := SubjectFromContext(context.Background())
	assert.False(t, ok)

	subject, ok := SubjectFromContext(WithSubject(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", subject)
}
