package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gtkpad369/LegalSch/internal/httperr"
	"github.com/gtkpad369/LegalSch/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
}

// parseID reads a numeric path parameter. On a bad value it writes the
// error response itself and returns ok=false.
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
