package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Hello 回傳歡迎訊息，可作為存活檢查
func Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
