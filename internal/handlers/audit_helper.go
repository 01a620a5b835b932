package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bellamoda/salon-booking/internal/middleware"
)

// actor returns the authenticated user id for audit events, or nil on
// unauthenticated paths.
func actor(c *gin.Context) *uint {
	id := middleware.UserID(c)
	if id == 0 {
		return nil
	}
	return &id
}
