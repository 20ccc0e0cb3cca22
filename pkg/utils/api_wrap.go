package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint answers with:
// {res: 'good'|'error', data: ...}. Errors carry {error: <message>}
// inside data and always use HTTP 400, not-found conditions included.
type APIResponse struct {
	Res  string      `json:"res"`
	Data interface{} `json:"data"`
}

func RespondGood(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Res: "good", Data: data})
}

func RespondError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{Res: "error", Data: gin.H{"error": message}})
}

// HandleServiceError collapses every handled error class to 400 with the
// service's message embedded, matching the service's wire contract. The
// trace id set by the middleware ties the log line to the response.
func HandleServiceError(c *gin.Context, err error) {
	log.Printf("[trace_id=%s] handled error: %v", c.GetString("trace_id"), err)
	RespondError(c, err.Error())
}

// RespondBody sends a pre-shaped body as-is. Used by endpoints whose
// responses carry extra top-level keys next to res/data
// (result_ordering, detail, result example).
func RespondBody(c *gin.Context, body map[string]interface{}) {
	c.JSON(http.StatusOK, body)
}
