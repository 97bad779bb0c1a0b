package controllers

import (
	"net/http"

	"github.com/Chandu5342/RestaurntBackend/pkg/resp"
	"github.com/Chandu5342/RestaurntBackend/repository"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Repo *repository.LogRepository
}

func NewLogController(repo *repository.LogRepository) *LogController {
	return &LogController{Repo: repo}
}

// GET /logs — last 200 request-log rows, newest first.
func (l *LogController) List(c *gin.Context) {
	logs, err := l.Repo.Recent(200)
	if err != nil {
		resp.ServerError(c, "Error listing logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
