// Package controllers file: controllers/health_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Root identifies the API.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Conqueror Fitness Studio API",
		"version": apiVersion,
	})
}

// Health is the health check endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"storage_type": "local_file",
	})
}
