package httpapi

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response. Status mirrors the HTTP status;
// exactly one of Data and Error is set, except for a successful translation
// that came back without text, where both are absent.
type Envelope struct {
	Status int `json:"status"`
	Data   any `json:"data,omitempty"`
	Error  any `json:"error,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Status: status, Data: data})
}

// respondError writes an error envelope. msg is a string or []string.
func respondError(c *gin.Context, status int, msg any) {
	c.AbortWithStatusJSON(status, Envelope{Status: status, Error: msg})
}

// errorMessage extracts a best-effort client message from err.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "unknown error"
	}
	return err.Error()
}
