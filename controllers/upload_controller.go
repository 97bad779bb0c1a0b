package controllers

import (
	"net/http"

	"github.com/Chandu5342/RestaurntBackend/pkg/resp"
	"github.com/Chandu5342/RestaurntBackend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Store storage.Storage
}

func NewUploadController(store storage.Storage) *UploadController {
	return &UploadController{Store: store}
}

// POST /upload — raw proxy to the media collaborator.
func (u *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "No file provided")
		return
	}

	data, err := readUpload(file)
	if err != nil {
		resp.ServerError(c, "Upload failed")
		return
	}

	obj, err := u.Store.Save(data, "uploads")
	if err != nil {
		resp.ServerError(c, "Upload failed")
		return
	}

	c.JSON(http.StatusOK, obj)
}
