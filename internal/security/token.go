package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every reason a token is rejected: bad signature,
// malformed payload, unexpected algorithm, expiry or wrong token type.
var ErrInvalidToken = errors.New("could not validate credentials")

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims are embedded in every token. Subject carries the user id.
type Claims struct {
	Type TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // access token lifetime in seconds
}

// TokenIssuer signs and validates stateless HS256 tokens. Nothing is tracked
// server side, so an issued token stays valid until it expires.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type IssuerOption func(*TokenIssuer)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) IssuerOption {
	return func(t *TokenIssuer) { t.now = now }
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration, opts ...IssuerOption) *TokenIssuer {
	t := &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *TokenIssuer) IssueAccess(subject uint) (string, error) {
	return t.issue(subject, AccessToken, t.accessTTL)
}

func (t *TokenIssuer) IssueRefresh(subject uint) (string, error) {
	return t.issue(subject, RefreshToken, t.refreshTTL)
}

func (t *TokenIssuer) IssuePair(subject uint) (TokenPair, error) {
	access, err := t.IssueAccess(subject)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := t.IssueRefresh(subject)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(t.accessTTL / time.Second),
	}, nil
}

func (t *TokenIssuer) issue(subject uint, kind TokenType, ttl time.Duration) (string, error) {
	now := t.now()
	claims := Claims{
		Type: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(subject), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate returns the subject of a token of the given kind.
func (t *TokenIssuer) Validate(token string, kind TokenType) (uint, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	if claims.Type != kind {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
