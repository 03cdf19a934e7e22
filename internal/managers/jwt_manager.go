package managers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ElenaG518/wdconnect-server/internal/config"
	"github.com/ElenaG518/wdconnect-server/internal/schemas"
	"github.com/ElenaG518/wdconnect-server/internal/utils"
)

// TokenHeader is the fixed request header carrying the bearer token.
const TokenHeader = "x-auth-token"

// Verification failures are distinguished internally for logging and tests.
// The HTTP boundary collapses all of them into the same 401 response.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

type JWTMgr interface {
	GenerateJWT(userId string) (string, error)
	ValidateJWT(tokenString string) (string, error)
	JWTMiddleware() gin.HandlerFunc
}

// JWTManager handles bearer token generation, signing, and validation.
// Tokens are stateless: there is no revocation list, and a token stays
// valid for its full lifetime regardless of later account changes.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a new JWTManager from the process configuration.
func NewJWTManager(cfg *config.Config) JWTMgr {
	return &JWTManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTValidityDuration,
	}
}

// GenerateJWT generates a signed token embedding the given account id and
// an expiry of now plus the configured lifetime.
func (jm *JWTManager) GenerateJWT(userId string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": "wdconnect-server",
		"iat": now.Unix(),
		"exp": now.Add(jm.ttl).Unix(),
		"sub": userId,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jm.secret)
}

// ValidateJWT validates the given token and returns the embedded account id.
// No database lookup happens here; the account may since have been deleted
// and callers must handle a dangling id.
func (jm *JWTManager) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method %q", token.Method.Alg())
		}
		return jm.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignatureInvalid
		default:
			return "", ErrTokenMalformed
		}
	}

	if !token.Valid {
		return "", ErrTokenSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}

	userId, err := claims.GetSubject()
	if err != nil || userId == "" {
		return "", ErrTokenMalformed
	}

	return userId, nil
}

// JWTMiddleware guards a route group: it extracts the bearer token from the
// request header, validates it, and attaches the resolved account id to the
// request context. The rejection message never reveals why a present token
// failed verification.
func (jm *JWTManager) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, schemas.NoToken)
			return
		}

		userId, err := jm.ValidateJWT(tokenString)
		if err != nil {
			utils.LogMessageWithFields(c, "info", "Rejecting token: "+err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, schemas.InvalidToken)
			return
		}

		c.Set(utils.UserIdKey.String(), userId)
		c.Next()
	}
}
