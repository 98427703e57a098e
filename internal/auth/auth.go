package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dinetable-server/internal/apierrors"
	"dinetable-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

const (
	issuer   = "dinetable-server"
	tokenTTL = 24 * time.Hour

	// RestaurantKey is the gin context key carrying the authenticated
	// restaurant name on dashboard routes.
	RestaurantKey = "Restaurant-Name"
)

// Authenticator issues and validates dashboard bearer tokens. Customers never
// authenticate; only restaurant dashboards do.
type Authenticator struct {
	secret []byte
	logger *observability.Logger
}

func New(jwtSecret string, logger *observability.Logger) Authenticator {
	return Authenticator{
		secret: []byte(jwtSecret),
		logger: logger,
	}
}

// IssueToken signs a dashboard token for a restaurant
func (a Authenticator) IssueToken(ctx context.Context, restaurantName string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   restaurantName,
		Issuer:    issuer,
		Audience:  jwt.ClaimStrings{issuer},
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		a.logger.Error(ctx, "failed to sign dashboard token", err)
		return "", fmt.Errorf("failed to sign dashboard token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a dashboard token and returns the restaurant it was
// issued to
func (a Authenticator) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Middleware guards dashboard routes with a bearer token
func (a Authenticator) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}

	restaurantName, err := a.ValidateToken(ctx, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}

	c.Set(RestaurantKey, restaurantName)
	c.Next()
}

// IssueTokenRequest requests a dashboard token for a restaurant. Credential
// verification happens upstream; this server only mints the bearer token.
type IssueTokenRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
}

// HandleIssueToken handles POST /api/v1/auth/token
func (a Authenticator) HandleIssueToken(c *gin.Context) {
	ctx := c.Request.Context()

	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	token, err := a.IssueToken(ctx, req.RestaurantName)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(200, gin.H{"token": token})
}
