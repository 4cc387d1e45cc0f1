package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"counselhub/config"
	"counselhub/utils"
)

const adminTokenTTL = 12 * time.Hour

// AuthHandler issues the admin tokens guarding the administrative routes.
type AuthHandler struct{}

type adminTokenInput struct {
	APIKey  string `json:"apiKey" binding:"required"`
	Subject string `json:"subject" binding:"required"`
}

// AdminTokenHandler exchanges the configured API key for a short-lived
// admin JWT. Disabled entirely when no key is configured.
func (h *AuthHandler) AdminTokenHandler(c *gin.Context) {
	var input adminTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if config.AppConfig.AdminAPIKey == "" || input.APIKey != config.AppConfig.AdminAPIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
		return
	}

	token, err := utils.GenerateAdminToken(input.Subject, adminTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminTokenTTL.Seconds()),
	})
}
