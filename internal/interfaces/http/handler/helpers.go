package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses the :id path parameter as a positive integer
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
