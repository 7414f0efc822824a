package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	callerKey = "caller"

	DevBypassUserHeader  = "X-User-Sub"
	DevBypassRolesHeader = "X-User-Roles"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Caller role not allowed for this operation", http.StatusForbidden)

	errNoSubject = errors.New("token has no subject")
)

// AccessClaims is the bearer token payload issued by the identity service.
type AccessClaims struct {
	Username string   `json:"username,omitempty"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// Authenticate resolves the caller from an HS256 bearer token. With devBypass
// the X-User-Sub / X-User-Roles headers are trusted instead, for local runs.
func Authenticate(secret []byte, devBypass bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if devBypass {
			if sub := strings.TrimSpace(c.GetHeader(DevBypassUserHeader)); sub != "" {
				caller := entities.Caller{
					Username: sub,
					Roles:    parseRoles(strings.Split(c.GetHeader(DevBypassRolesHeader), ",")),
				}
				SetCaller(c, caller)
				c.Next()
				return
			}
		}

		caller, err := callerFromBearer(c.GetHeader("Authorization"), secret)
		if err != nil {
			log.Printf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetCaller(c, caller)
		c.Next()
	}
}

// RequireRoles lets the request through only if the caller holds one of roles.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !caller.HasAnyRole(roles...) {
			log.Printf("[auth][middleware] forbidden path=%s caller=%s", c.FullPath(), caller.Username)
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetCaller(c *gin.Context, caller entities.Caller) {
	c.Set(callerKey, caller)
}

func CallerFrom(c *gin.Context) (entities.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return entities.Caller{}, false
	}
	caller, ok := v.(entities.Caller)
	return caller, ok
}

func callerFromBearer(header string, secret []byte) (entities.Caller, error) {
	raw := strings.TrimSpace(header)
	if len(raw) < len("bearer ") || !strings.EqualFold(raw[:len("bearer ")], "bearer ") {
		return entities.Caller{}, errors.New("missing bearer token")
	}
	raw = strings.TrimSpace(raw[len("bearer "):])

	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.Caller{}, err
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		return entities.Caller{}, errNoSubject
	}
	return entities.Caller{Username: username, Roles: parseRoles(claims.Roles)}, nil
}

func parseRoles(raw []string) []entities.Role {
	roles := make([]entities.Role, 0, len(raw))
	for _, r := range raw {
		if role, ok := entities.ParseRole(r); ok {
			roles = append(roles, role)
		}
	}
	return roles
}
