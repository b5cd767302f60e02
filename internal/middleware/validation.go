package middleware

import (
	"github.com/gin-gonic/gin"
)

// ContextBody is the context key holding the bound request body
const ContextBody = "validatedBody"

// BindJSON binds the request body into a fresh T and stores it under
// ContextBody. Binding tags are checked by gin's validator.
func BindJSON[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		body := new(T)
		if err := c.ShouldBindJSON(body); err != nil {
			HandleBindingError(c, err)
			return
		}
		c.Set(ContextBody, body)
		c.Next()
	}
}

// Body returns the request body bound by BindJSON
func Body[T any](c *gin.Context) *T {
	v, ok := c.Get(ContextBody)
	if !ok {
		return new(T)
	}
	body, ok := v.(*T)
	if !ok {
		return new(T)
	}
	return body
}
