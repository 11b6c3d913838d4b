package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextClaimsKey is where the middleware stores verified claims on the
// request context.
const ContextClaimsKey = "claims"

// Result is the outcome of the access gate: either Claims is set and the
// request may proceed, or Status/Reason describe the rejection.
type Result struct {
	Claims *Claims
	Status int
	Reason string
}

// Authorized reports whether the gate let the request through.
func (r Result) Authorized() bool {
	return r.Claims != nil
}

// Gate checks the Authorization header of protected requests before any
// business logic runs. Valid-token-or-not only; there are no roles.
type Gate struct {
	tokens *TokenService
}

func NewGate(tokens *TokenService) *Gate {
	return &Gate{tokens: tokens}
}

// Authenticate inspects an Authorization header value and returns a tagged
// result. Missing or non-Bearer headers are 401; verification failures
// (malformed, expired, bad signature) are 403.
func (g *Gate) Authenticate(header string) Result {
	if header == "" {
		return Result{Status: http.StatusUnauthorized, Reason: "Access denied. No token provided."}
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return Result{Status: http.StatusUnauthorized, Reason: "Access denied. No token provided."}
	}

	claims, err := g.tokens.Verify(parts[1])
	if err != nil {
		return Result{Status: http.StatusForbidden, Reason: "Invalid token"}
	}

	return Result{Claims: claims}
}

// Middleware wraps Authenticate for gin route groups.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := g.Authenticate(c.GetHeader("Authorization"))
		if !res.Authorized() {
			c.AbortWithStatusJSON(res.Status, gin.H{"error": res.Reason})
			return
		}
		c.Set(ContextClaimsKey, res.Claims)
		c.Next()
	}
}
