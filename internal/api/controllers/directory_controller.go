package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lifediary/pkg/apidoc"
	"lifediary/pkg/utils"
)

// DirectoryController serves the root listing: every API with its full
// URL, so the whole surface is discoverable from a single GET /.
type DirectoryController struct{}

func NewDirectoryController() *DirectoryController {
	return &DirectoryController{}
}

func (dc *DirectoryController) GetDirectory(c *gin.Context) {
	c.JSON(http.StatusOK, apidoc.Directory(rootBaseURL(c)))
}

// MethodHint answers a GET sent to a POST-only route with the posting
// instructions instead of a bare 405.
func (dc *DirectoryController) MethodHint(endpointName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if endpoint := apidoc.FindPost(endpointName); endpoint != nil {
			utils.RespondBody(c, endpoint.MethodHintBody())
			return
		}
		c.Status(http.StatusNotFound)
	}
}
