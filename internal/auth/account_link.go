package auth

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/DIMO-Network/messenger-bot-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const linkCodeIssuer = "messenger-bot"

// LinkToken is the claim set carried by an authorization code.
type LinkToken struct {
	jwt.RegisteredClaims
	// AccountLinkingToken is the platform token the code was issued for.
	AccountLinkingToken string `json:"account_linking_token"`
}

// AccountLinker issues and verifies the authorization codes handed to the
// platform at the end of the account linking flow.
type AccountLinker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAccountLinker signs codes with the app secret.
func NewAccountLinker(settings *config.Settings) *AccountLinker {
	return &AccountLinker{
		secret: []byte(settings.AppSecret),
		ttl:    settings.AccountLinkCodeTTL,
		now:    time.Now,
	}
}

// Issue creates an authorization code for accountLinkingToken.
func (a *AccountLinker) Issue(accountLinkingToken string) (string, error) {
	if accountLinkingToken == "" {
		return "", errors.New("account linking token is empty")
	}
	now := a.now()
	claims := LinkToken{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    linkCodeIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
		AccountLinkingToken: accountLinkingToken,
	}
	code, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign authorization code: %w", err)
	}
	return code, nil
}

// Verify checks the signature and expiry of code and returns its claims.
func (a *AccountLinker) Verify(code string) (*LinkToken, error) {
	claims := &LinkToken{}
	_, err := jwt.ParseWithClaims(code, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(linkCodeIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid authorization code: %w", err)
	}
	return claims, nil
}

// SuccessRedirect adds the authorization code to the platform redirect URI.
func SuccessRedirect(redirectURI, code string) (string, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return "", fmt.Errorf("invalid redirect URI: %w", err)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("redirect URI must be absolute: %q", redirectURI)
	}
	query := u.Query()
	query.Set("authorization_code", code)
	u.RawQuery = query.Encode()
	return u.String(), nil
}
