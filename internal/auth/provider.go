// Package auth issues and verifies account credentials.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"github.com/welldanyogia/webrana-resource-api/internal/repository"
	"github.com/welldanyogia/webrana-resource-api/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is the token lifetime when none is configured.
const DefaultTokenTTL = 72 * time.Hour

// Authenticator is what the HTTP layer needs from the identity provider.
type Authenticator interface {
	Register(ctx context.Context, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Verify(ctx context.Context, token string) (*models.User, error)
}

// Claims carries the account id in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Options configures a Provider.
type Options struct {
	Secret     []byte
	TokenTTL   time.Duration
	Policy     validator.PasswordPolicy
	BcryptCost int
}

// Provider registers accounts and issues HS256 tokens bound to them.
type Provider struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	policy validator.PasswordPolicy
	cost   int
	now    func() time.Time

	dummyOnce sync.Once
	dummy     []byte
}

// NewProvider creates a Provider backed by users.
func NewProvider(users repository.UserRepository, opts Options) *Provider {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = DefaultTokenTTL
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Policy == (validator.PasswordPolicy{}) {
		opts.Policy = validator.DefaultPasswordPolicy
	}
	return &Provider{
		users:  users,
		secret: opts.Secret,
		ttl:    opts.TokenTTL,
		policy: opts.Policy,
		cost:   opts.BcryptCost,
		now:    time.Now,
	}
}

// Register creates an account and returns it with a fresh token.
func (p *Provider) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validator.ValidateEmail(email); err != nil {
		return nil, "", apperrors.Invalid("email: %v", err)
	}
	if err := validator.ValidatePassword(password, p.policy); err != nil {
		return nil, "", apperrors.Invalid("password: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := p.users.Create(ctx, user); err != nil {
		if apperrors.IsDuplicateEntry(err) {
			return nil, "", apperrors.NewAppError(err, "email already in use", apperrors.CodeDuplicateEntry)
		}
		return nil, "", err
	}

	token, err := p.issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials. Unknown email and wrong password fail the same way.
func (p *Provider) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperrors.Invalid("email and password are required")
	}

	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Same bcrypt work as a known account
			_ = bcrypt.CompareHashAndPassword(p.dummyHash(), []byte(password))
			return nil, "", invalidCredentials()
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", invalidCredentials()
	}

	token, err := p.issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify resolves a token to its account.
func (p *Provider) Verify(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "invalid or expired token", apperrors.CodeUnauthorized)
	}

	user, err := p.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "unknown account", apperrors.CodeUnauthorized)
		}
		return nil, err
	}
	return user, nil
}

// dummyHash is compared against when the email is unknown, so Login costs
// the same whether or not the account exists.
func (p *Provider) dummyHash() []byte {
	p.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("no-such-account"), p.cost)
		if err == nil {
			p.dummy = hash
		}
	})
	return p.dummy
}

func (p *Provider) issue(userID string) (string, error) {
	now := p.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func invalidCredentials() error {
	return apperrors.NewAppError(apperrors.ErrUnauthorized, "invalid email or password", apperrors.CodeUnauthorized)
}

// ErrMalformedAuthorization is returned for a header that is not a bearer credential.
var ErrMalformedAuthorization = errors.New("malformed authorization header")

// ParseAuthorization extracts the token from an Authorization header value.
// The scheme is matched case-insensitively and "Bearer token=<t>" is accepted.
func ParseAuthorization(header string) (string, error) {
	scheme, rest, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrMalformedAuthorization
	}
	token := strings.TrimSpace(rest)
	if len(token) > len("token=") && strings.EqualFold(token[:len("token=")], "token=") {
		token = strings.TrimSpace(token[len("token="):])
	}
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedAuthorization
	}
	return token, nil
}
