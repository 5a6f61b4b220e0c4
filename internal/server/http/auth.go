package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const clientKey = "client"

// accessToken returns the token from "Authorization: Bearer ..." or, failing
// that, from the header named like the gRPC metadata key.
func accessToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return c.GetHeader(common.AccessTokenHeaderName)
}

// requireToken guards the payroll routes the same way the gRPC interceptor
// guards the payroll RPCs. Without a secret key every request passes.
func (s *HTTPServer) requireToken(c *gin.Context) {
	if len(s.jwtSecret) == 0 {
		c.Next()
		return
	}

	token := accessToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("missing token"))
		return
	}

	client, err := auth.ClientFromToken(token, s.jwtSecret)
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, common.ErrTokenExpired) {
			msg = "token expired"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(msg))
		return
	}

	c.Set(clientKey, client)
	c.Next()
}
