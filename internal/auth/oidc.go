package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Identity is what the login callback learns about the user.
type Identity struct {
	Subject   string
	Email     string
	FirstName string
	LastName  string
	Picture   string
}

// IdentityProvider runs the authorization code flow.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Identity, error)
	// EndSessionURL is the provider logout page, or "" when it has none.
	EndSessionURL(postLogoutRedirect string) string
}

type OIDCConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// OIDCProvider is an IdentityProvider for any OpenID Connect issuer.
type OIDCProvider struct {
	oauth      *oauth2.Config
	verifier   *oidc.IDTokenVerifier
	clientID   string
	endSession string
}

var _ IdentityProvider = (*OIDCProvider)(nil)

// NewOIDCProvider fetches the issuer discovery document.
func NewOIDCProvider(ctx context.Context, cfg OIDCConfig) (*OIDCProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init oidc provider: %w", err)
	}

	var discovery struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	_ = provider.Claims(&discovery)

	return &OIDCProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
			Endpoint:     provider.Endpoint(),
		},
		verifier:   provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		clientID:   cfg.ClientID,
		endSession: discovery.EndSessionEndpoint,
	}, nil
}

func (p *OIDCProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type idClaims struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// Exchange trades the code for tokens and verifies the ID token signature and audience.
func (p *OIDCProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("missing id_token")
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("invalid id_token: %w", err)
	}

	var claims idClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}
	if claims.Sub == "" {
		return nil, errors.New("token missing subject")
	}

	return &Identity{
		Subject:   claims.Sub,
		Email:     claims.Email,
		FirstName: firstNonEmpty(claims.GivenName, claims.Name),
		LastName:  claims.FamilyName,
		Picture:   claims.Picture,
	}, nil
}

func (p *OIDCProvider) EndSessionURL(postLogoutRedirect string) string {
	if p.endSession == "" {
		return ""
	}
	u := p.endSession + "?client_id=" + url.QueryEscape(p.clientID)
	if postLogoutRedirect != "" {
		u += "&post_logout_redirect_uri=" + url.QueryEscape(postLogoutRedirect)
	}
	return u
}

// RandomState returns an unguessable value for the OAuth state cookie.
func RandomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
