package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	// DB is nil when running on the memory store.
	DB          *sql.DB
	StoreDriver string
}

func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": h.StoreDriver})
}

// StoreCheck reports whether the configured backing store answers.
func (h SystemHandler) StoreCheck(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{"message": "memory store active", "store": h.StoreDriver})
		return
	}
	var count int
	if err := h.DB.QueryRowContext(c.Request.Context(), "SELECT COUNT(*) FROM routes").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "routes_in_db": count})
}
