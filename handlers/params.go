package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseID reads the numeric :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseUintList parses a query value like "1,2,3"; repeated parameters are
// accepted as well.
func parseUintList(values []string) ([]uint, error) {
	var ids []uint
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 32)
			if err != nil {
				return nil, err
			}
			ids = append(ids, uint(id))
		}
	}
	return ids, nil
}
