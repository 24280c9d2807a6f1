package cache

import "github.com/gin-gonic/gin"

// abort records err on the context and ends the request, replying in JSON unless the
// client only accepts plain text.
func abort(c *gin.Context, code int, err error, msg string) {
	c.Error(err)
	switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML, gin.MIMEPlain) {
	case gin.MIMEJSON, gin.MIMEHTML:
		c.AbortWithStatusJSON(code, gin.H{"success": false, "error": msg})
	default:
		c.Abort()
		c.String(code, msg)
	}
}
