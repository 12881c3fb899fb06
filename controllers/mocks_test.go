package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"homestay-backend/middleware"
	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"
)

const testSecret = "test-secret-at-least-16-chars!!"

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetUser(id string) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserStore) UpsertUser(p services.UpsertUserParams) (models.User, error) {
	args := m.Called(p)
	return args.Get(0).(models.User), args.Error(1)
}

type mockHomestayStore struct {
	mock.Mock
}

func (m *mockHomestayStore) Create(userID string, in models.HomestayInput) (models.Homestay, error) {
	args := m.Called(userID, in)
	return args.Get(0).(models.Homestay), args.Error(1)
}

func (m *mockHomestayStore) GetByUser(userID string) ([]models.Homestay, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Homestay), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(user models.User, homestay models.Homestay) {
	m.Called(user, homestay)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) AuthURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *mockProvider) Exchange(ctx context.Context, code string) (*services.Profile, error) {
	args := m.Called(code)
	if p, ok := args.Get(0).(*services.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// newTestRouter wires the controllers behind the real auth middleware, the
// same shape SetupRouter produces minus the wizard pages.
func newTestRouter(ac *AuthController, hc *HomestayController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	api.GET("/login", ac.Login)
	api.GET("/callback", ac.Callback)
	api.GET("/logout", ac.Logout)

	protected := api.Group("", middleware.RequireAuth(testSecret))
	protected.GET("/auth/user", ac.GetCurrentUser)
	protected.POST("/homestays", hc.CreateHomestay)
	protected.GET("/homestays", hc.ListHomestays)

	return r
}

func sessionCookie(t *testing.T, user models.User) *http.Cookie {
	t.Helper()
	token, err := utils.NewSessionToken(testSecret, user, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
