// Package ginctx defines the keys shared across packages for values stored on the gin
// context and on the request context.
package ginctx

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Key is used to define keys for all context values so that keys can be shared
// across packages without collisions.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyRequestID
	KeyTagger
	KeyTagConfig
)

var keyNames = [4]string{"unknown", "requestID", "etagger", "etagConfig"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[0]
}

// Set a value in the gin context.
func Set(c *gin.Context, key Key, value any) {
	c.Set(key.String(), value)
}

// Get a value from the gin context; if the key does not exist, the request context is
// checked for the value. A context.Context is looked up directly.
func Get(c any, key Key) (any, bool) {
	switch ctx := c.(type) {
	case *gin.Context:
		if value, exists := ctx.Get(key.String()); exists {
			return value, true
		}
		if ctx.Request == nil {
			return nil, false
		}
		return Get(ctx.Request.Context(), key)
	case context.Context:
		value := ctx.Value(key)
		return value, value != nil
	default:
		return nil, false
	}
}

// SetContext updates the request context with a new value for the specified key.
func SetContext(c *gin.Context, key Key, value any) {
	ctx := context.WithValue(c.Request.Context(), key, value)
	c.Request = c.Request.WithContext(ctx)
}

// SetBoth updates both the gin context and the request context.
func SetBoth(c *gin.Context, key Key, value any) {
	Set(c, key, value)
	SetContext(c, key, value)
}
