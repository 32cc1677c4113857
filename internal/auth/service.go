package auth

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Service runs the PKCE login flow against the identity provider and
// verifies access tokens on incoming requests.
type Service struct {
	identity *IdentityClient
	states   StateStore
	verifier *Verifier
	// callbackURL is the absolute URL of the login callback route.
	callbackURL string
}

func NewService(identity *IdentityClient, states StateStore, verifier *Verifier, callbackURL string) *Service {
	return &Service{identity: identity, states: states, verifier: verifier, callbackURL: callbackURL}
}

// BeginLogin stores a fresh PKCE verifier and returns the provider URL to
// redirect the browser to.
func (s *Service) BeginLogin(ctx context.Context, provider string) (string, error) {
	if !ValidProvider(provider) {
		return "", errors.Wrapf(ErrUnknownProvider, "%q", provider)
	}
	state, err := randomToken(16)
	if err != nil {
		return "", errors.Wrap(err, "generate state")
	}
	verifier := oauth2.GenerateVerifier()
	if err := s.states.Put(ctx, state, verifier); err != nil {
		return "", err
	}

	redirect, err := url.Parse(s.callbackURL)
	if err != nil {
		return "", errors.Wrap(err, "callback url")
	}
	q := redirect.Query()
	q.Set("state", state)
	redirect.RawQuery = q.Encode()

	return s.identity.AuthorizeURL(provider, redirect.String(), oauth2.S256ChallengeFromVerifier(verifier))
}

// CompleteLogin exchanges the callback code for a session.
func (s *Service) CompleteLogin(ctx context.Context, code, state string) (*Session, error) {
	if code == "" || state == "" {
		return nil, errors.Wrap(ErrUnauthorized, "missing code or state")
	}
	verifier, err := s.states.Take(ctx, state)
	if errors.Is(err, ErrUnknownState) {
		return nil, errors.Wrap(ErrUnauthorized, err.Error())
	}
	if err != nil {
		return nil, err
	}

	sess, err := s.identity.ExchangeCode(ctx, code, verifier)
	if err != nil {
		return nil, err
	}
	user, err := s.verifier.Verify(sess.AccessToken)
	if err != nil {
		return nil, err
	}
	if sess.User == nil {
		sess.User = user
	}
	slog.Info("auth: login completed", "user_id", user.ID, "provider", user.Provider)
	return sess, nil
}

func (s *Service) SignOut(ctx context.Context, accessToken string) error {
	return s.identity.SignOut(ctx, accessToken)
}

func (s *Service) Verify(token string) (*User, error) {
	return s.verifier.Verify(token)
}
