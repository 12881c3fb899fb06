package controllers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"homestay-backend/middleware"
	"homestay-backend/services"
	"homestay-backend/utils"
)

const stateCookieName = "oauth_state"

// OAuthProvider is the external identity provider surface the controller
// uses. services.OAuthService satisfies it.
type OAuthProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*services.Profile, error)
}

type AuthController struct {
	Users         UserStore
	Provider      OAuthProvider
	SessionSecret string
}

func NewAuthController(users UserStore, provider OAuthProvider, sessionSecret string) *AuthController {
	return &AuthController{
		Users:         users,
		Provider:      provider,
		SessionSecret: sessionSecret,
	}
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Login handles GET /api/login: stash a random state cookie and send the
// browser to the identity provider.
func (ac *AuthController) Login(c *gin.Context) {
	state, err := generateTokenHex(16)
	if err != nil {
		utils.JSONMessage(c, http.StatusInternalServerError, "Failed to start login")
		return
	}

	c.SetCookie(stateCookieName, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, ac.Provider.AuthURL(state))
}

// Callback handles GET /api/callback: verify the state, trade the code for
// a profile, upsert the user row and issue the session cookie.
func (ac *AuthController) Callback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != cookieState {
		utils.JSONMessage(c, http.StatusUnauthorized, "Invalid login state")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		utils.JSONMessage(c, http.StatusUnauthorized, "Missing authorization code")
		return
	}

	profile, err := ac.Provider.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("❌ oauth exchange: %v", err)
		utils.JSONMessage(c, http.StatusUnauthorized, "Login failed")
		return
	}

	user, err := ac.Users.UpsertUser(services.UpsertUserParams{
		ID:              profile.Sub,
		Email:           profile.Email,
		FirstName:       profile.GivenName,
		LastName:        profile.FamilyName,
		ProfileImageURL: profile.Picture,
	})
	if err != nil {
		log.Printf("❌ upsert user %s: %v", profile.Sub, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := utils.NewSessionToken(ac.SessionSecret, user, utils.SessionTTL)
	if err != nil {
		log.Printf("❌ issue session for user %s: %v", user.ID, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.SetCookie(middleware.SessionCookieName, token,
		int(utils.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /api/logout.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// GetCurrentUser handles GET /api/auth/user.
func (ac *AuthController) GetCurrentUser(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		utils.JSONMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := ac.Users.GetUser(session.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONMessage(c, http.StatusUnauthorized, "User not found")
			return
		}
		log.Printf("❌ fetch user %s: %v", session.Subject, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}
