package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrUnknownProvider = errors.New("unknown identity provider")

// Providers lists the OAuth providers offered on the login page.
var Providers = []string{"google", "github"}

func ValidProvider(p string) bool {
	for _, v := range Providers {
		if v == p {
			return true
		}
	}
	return false
}

// Session is the token set returned after a successful login.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         *User  `json:"user"`
}

// IdentityClient talks to the hosted auth service's /auth/v1 endpoints.
type IdentityClient struct {
	BaseURL string
	AnonKey string
	HTTP    *http.Client
}

func NewIdentityClient(baseURL, anonKey string) *IdentityClient {
	return &IdentityClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		AnonKey: anonKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthorizeURL is where the browser is sent to sign in with provider.
func (c *IdentityClient) AuthorizeURL(provider, redirectTo, challenge string) (string, error) {
	if !ValidProvider(provider) {
		return "", errors.Wrapf(ErrUnknownProvider, "%q", provider)
	}
	q := url.Values{}
	q.Set("provider", provider)
	q.Set("redirect_to", redirectTo)
	q.Set("code_challenge", challenge)
	q.Set("code_challenge_method", "s256")
	return c.BaseURL + "/auth/v1/authorize?" + q.Encode(), nil
}

type identityUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	AppMetadata  map[string]interface{} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

type tokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int           `json:"expires_in"`
	User         *identityUser `json:"user"`
}

// ExchangeCode redeems an authorization code with its PKCE verifier.
func (c *IdentityClient) ExchangeCode(ctx context.Context, code, verifier string) (*Session, error) {
	body, err := json.Marshal(map[string]string{"auth_code": code, "code_verifier": verifier})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/v1/token?grant_type=pkce", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.AnonKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity token exchange")
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read identity response")
	}
	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, errors.Wrapf(ErrUnauthorized, "identity token exchange: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity token exchange: status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(rb, &tr); err != nil {
		return nil, errors.Wrap(err, "decode identity response")
	}
	s := &Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
		ExpiresIn:    tr.ExpiresIn,
	}
	if tr.User != nil {
		if id, err := uuid.Parse(tr.User.ID); err == nil {
			claims := Claims{Email: tr.User.Email, AppMetadata: tr.User.AppMetadata, UserMetadata: tr.User.UserMetadata}
			s.User = claims.User(id)
		}
	}
	return s, nil
}

// SignOut revokes the session behind accessToken.
func (c *IdentityClient) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.AnonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrap(err, "identity logout")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusUnauthorized {
		return fmt.Errorf("identity logout: status %d", resp.StatusCode)
	}
	return nil
}
