package handler

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// Origin returns scheme://host[:port] of the page making the request,
// omitting the default ports 80 and 443.
func Origin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}

	host := c.Request.Host
	if h, port, err := net.SplitHostPort(host); err == nil && (port == "80" || port == "443") {
		host = h
		if strings.Contains(h, ":") {
			host = "[" + h + "]"
		}
	}
	return scheme + "://" + host
}
