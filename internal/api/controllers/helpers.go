package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"lifediary/pkg/apidoc"
	"lifediary/pkg/utils"
)

// requestBaseURL rebuilds the endpoint's own URL without the query
// string, for the clickable examples inside usage bodies.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}

// rootBaseURL is the same without the path, for the root directory.
func rootBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// respondList answers a no-params catalog endpoint: the data when the
// store has any, the endpoint's result example otherwise.
func respondList(c *gin.Context, endpointName string, data interface{}, isEmpty bool) {
	if isEmpty {
		if endpoint := apidoc.FindGet(endpointName); endpoint != nil {
			utils.RespondBody(c, endpoint.ExampleBody())
			return
		}
	}
	utils.RespondGood(c, data)
}

// respondUsage documents a parameterized endpoint when its params were
// not provided. Always 200: it is help text, not an error.
func respondUsage(c *gin.Context, endpointName string) {
	if endpoint := apidoc.FindGet(endpointName); endpoint != nil {
		utils.RespondBody(c, endpoint.UsageBody(requestBaseURL(c)))
		return
	}
	utils.RespondBody(c, map[string]interface{}{})
}

// wantsFullData reads the need_full_data tri-state: true means full
// payloads, any other provided value means truncated previews.
func wantsFullData(value string) bool {
	return strings.EqualFold(value, "true")
}
