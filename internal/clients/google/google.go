package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

type UserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type Client struct {
	cfg      *oauth2.Config
	http     *http.Client
	userInfo string
}

// New returns nil when the client id or secret is missing; Google sign-in is
// then reported as unavailable.
func New(clientID, clientSecret, redirectURL string) *Client {
	if clientID == "" || clientSecret == "" {
		return nil
	}
	return &Client{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: googleoauth.Endpoint,
		},
		http:     &http.Client{Timeout: 15 * time.Second},
		userInfo: userInfoURL,
	}
}

func (c *Client) AuthCodeURL(state string) string {
	return c.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for a token and fetches the profile it
// grants access to.
func (c *Client) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	if code == "" {
		return nil, errors.New("missing authorization code")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	token, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	resp, err := c.cfg.Client(ctx, token).Get(c.userInfo)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, errors.New("google profile missing subject or email")
	}
	return &info, nil
}
