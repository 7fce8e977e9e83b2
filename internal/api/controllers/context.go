package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID reads the identity the auth middleware resolved.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func currentRole(c *gin.Context) string {
	return c.GetString("Role")
}
