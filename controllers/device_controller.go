package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/services"
)

type deviceControllerDeps struct {
	push *services.PushService
}

var deviceDeps deviceControllerDeps

func InitDeviceController(push *services.PushService) {
	deviceDeps = deviceControllerDeps{push: push}
}

type RegisterDeviceInput struct {
	Platform string `json:"platform" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

func RegisterDevice(c *gin.Context) {
	if deviceDeps.push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications not configured"})
		return
	}

	var input RegisterDeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := deviceDeps.push.RegisterDevice(currentUserID(c), input.Platform, input.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"device_id": dev.ID, "platform": dev.Platform})
}
