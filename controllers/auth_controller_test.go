package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"homestay-backend/middleware"
	"homestay-backend/models"
	"homestay-backend/services"
)

func TestGetCurrentUser_Unauthenticated(t *testing.T) {
	users := &mockUserStore{}
	r := newTestRouter(NewAuthController(users, &mockProvider{}, testSecret),
		NewHomestayController(users, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	users.AssertNotCalled(t, "GetUser")
}

func TestGetCurrentUser_ReturnsUserRecord(t *testing.T) {
	owner := models.User{ID: "user-1", Email: "chu@villa.vn", FirstName: "Lan", LastName: "Nguyễn"}
	users := &mockUserStore{}
	users.On("GetUser", "user-1").Return(owner, nil).Once()
	defer users.AssertExpectations(t)

	r := newTestRouter(NewAuthController(users, &mockProvider{}, testSecret),
		NewHomestayController(users, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(sessionCookie(t, owner))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "chu@villa.vn", got.Email)
}

func TestGetCurrentUser_RowMissing(t *testing.T) {
	users := &mockUserStore{}
	users.On("GetUser", "user-1").Return(models.User{}, gorm.ErrRecordNotFound).Once()
	defer users.AssertExpectations(t)

	r := newTestRouter(NewAuthController(users, &mockProvider{}, testSecret),
		NewHomestayController(users, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(sessionCookie(t, models.User{ID: "user-1"}))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetCurrentUser_LookupError(t *testing.T) {
	users := &mockUserStore{}
	users.On("GetUser", "user-1").Return(models.User{}, errors.New("db down")).Once()
	defer users.AssertExpectations(t)

	r := newTestRouter(NewAuthController(users, &mockProvider{}, testSecret),
		NewHomestayController(users, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(sessionCookie(t, models.User{ID: "user-1"}))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to fetch user")
}

func TestLogin_RedirectsToProviderWithState(t *testing.T) {
	provider := &mockProvider{}
	provider.On("AuthURL", mock.AnythingOfType("string")).
		Return("https://id.example.com/authorize?state=xyz").Once()
	defer provider.AssertExpectations(t)

	r := newTestRouter(NewAuthController(&mockUserStore{}, provider, testSecret),
		NewHomestayController(&mockUserStore{}, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://id.example.com/authorize?state=xyz", rr.Header().Get("Location"))

	state := findCookie(rr, "oauth_state")
	require.NotNil(t, state)
	assert.NotEmpty(t, state.Value)
}

func TestCallback_UpsertsUserAndIssuesSession(t *testing.T) {
	profile := &services.Profile{
		Sub:        "user-1",
		Email:      "chu@villa.vn",
		GivenName:  "Lan",
		FamilyName: "Nguyễn",
		Picture:    "https://cdn.example.com/lan.png",
	}
	stored := models.User{ID: "user-1", Email: "chu@villa.vn", FirstName: "Lan", LastName: "Nguyễn"}

	provider := &mockProvider{}
	provider.On("Exchange", "the-code").Return(profile, nil).Once()

	users := &mockUserStore{}
	users.On("UpsertUser", services.UpsertUserParams{
		ID:              "user-1",
		Email:           "chu@villa.vn",
		FirstName:       "Lan",
		LastName:        "Nguyễn",
		ProfileImageURL: "https://cdn.example.com/lan.png",
	}).Return(stored, nil).Once()
	defer provider.AssertExpectations(t)
	defer users.AssertExpectations(t)

	r := newTestRouter(NewAuthController(users, provider, testSecret),
		NewHomestayController(users, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/callback?state=abc&code=the-code", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "abc"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	session := findCookie(rr, middleware.SessionCookieName)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
}

func TestCallback_StateMismatchRejected(t *testing.T) {
	provider := &mockProvider{}
	users := &mockUserStore{}

	r := newTestRouter(NewAuthController(users, provider, testSecret),
		NewHomestayController(users, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/callback?state=evil&code=the-code", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "abc"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	provider.AssertNotCalled(t, "Exchange")
	users.AssertNotCalled(t, "UpsertUser")
}

func TestCallback_ExchangeFailure(t *testing.T) {
	provider := &mockProvider{}
	provider.On("Exchange", "bad-code").Return(nil, errors.New("provider says no")).Once()
	defer provider.AssertExpectations(t)

	users := &mockUserStore{}
	r := newTestRouter(NewAuthController(users, provider, testSecret),
		NewHomestayController(users, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/callback?state=abc&code=bad-code", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "abc"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	users.AssertNotCalled(t, "UpsertUser")
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	users := &mockUserStore{}
	r := newTestRouter(NewAuthController(users, &mockProvider{}, testSecret),
		NewHomestayController(users, &mockHomestayStore{}, &mockNotifier{}))

	req := httptest.NewRequest(http.MethodGet, "/api/logout", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)

	session := findCookie(rr, middleware.SessionCookieName)
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.True(t, session.MaxAge < 0)
}
