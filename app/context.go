package app

import (
	"net/http"

	"github.com/agrimandi/agrimandi-server/app/auth"

	"github.com/sirupsen/logrus"
)

// Context per request state
type Context struct {
	Logger        logrus.FieldLogger
	RemoteAddress string
	User          *auth.Claims
	Vars          map[string]string
}

// WithLogger sets logger for context
func (ctx *Context) WithLogger(logger logrus.FieldLogger) *Context {
	ret := *ctx
	ret.Logger = logger
	return &ret
}

// WithRemoteAddress sets remote address for context
func (ctx *Context) WithRemoteAddress(address string) *Context {
	ret := *ctx
	ret.RemoteAddress = address
	return &ret
}

// WithUser sets user for context
func (ctx *Context) WithUser(user *auth.Claims) *Context {
	ret := *ctx
	ret.User = user
	return &ret
}

// AuthorizationError helper for when user is not authorized
func (ctx *Context) AuthorizationError(isInValidToken bool) *UserError {
	if isInValidToken {
		return &UserError{Message: "Token has expired", StatusCode: http.StatusUnauthorized}
	}
	return &UserError{Message: "Invalid Credentials", StatusCode: http.StatusForbidden}
}
