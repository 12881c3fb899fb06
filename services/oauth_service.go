package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Profile is the slice of the provider's userinfo response we care about.
// Claim names follow the standard OIDC userinfo shape.
type Profile struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// OAuthConfig carries the provider endpoints and credentials, all taken
// from the environment in main.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	CallbackURL  string
}

// OAuthService wraps golang.org/x/oauth2 for the authorization code flow
// against the external identity provider. This system never sees a password;
// identity is whatever the provider's userinfo endpoint says it is.
type OAuthService struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewOAuthService(cfg OAuthConfig) *OAuthService {
	return &OAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		userInfoURL: cfg.UserInfoURL,
	}
}

// AuthURL is where the browser is sent to log in. The state round-trips via
// a cookie and is checked in the callback.
func (s *OAuthService) AuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for the user's profile: code → access
// token (server-to-server), then token → userinfo.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	client := s.config.Client(ctx, token)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned HTTP %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.Sub == "" {
		return nil, fmt.Errorf("userinfo missing sub claim")
	}
	return &profile, nil
}
