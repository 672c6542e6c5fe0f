// Package controllers file: controllers/member_controller.go
package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gym-admin/logger"
	"gym-admin/models"
	"gym-admin/services"
)

// MemberController struct with service dependency injection
type MemberController struct {
	Service services.MemberServiceInterface
}

// NewMemberController creates an instance of MemberController
func NewMemberController(service services.MemberServiceInterface) *MemberController {
	return &MemberController{Service: service}
}

// GetAll returns every member.
func (mc *MemberController) GetAll(c *gin.Context) {
	members, err := mc.Service.List()
	if err != nil {
		logger.Error.Printf("GetAll: failed to load members: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetOne returns a single member by id.
func (mc *MemberController) GetOne(c *gin.Context) {
	member, err := mc.Service.Get(c.Param("id"))
	if err != nil {
		respondMemberError(c, "GetOne", err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// Create registers a new member from the JSON body.
func (mc *MemberController) Create(c *gin.Context) {
	var req models.MemberCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn.Printf("Create: invalid payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := mc.Service.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		logger.Error.Printf("Create: failed to create member: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// Update applies a partial update from the JSON body.
func (mc *MemberController) Update(c *gin.Context) {
	var req models.MemberUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn.Printf("Update: invalid payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := mc.Service.Update(c.Param("id"), req)
	if err != nil {
		respondMemberError(c, "Update", err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// Delete removes a member and their photo.
func (mc *MemberController) Delete(c *gin.Context) {
	if err := mc.Service.Delete(c.Param("id")); err != nil {
		respondMemberError(c, "Delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}

// UploadPhoto accepts a multipart image upload for a member.
func (mc *MemberController) UploadPhoto(c *gin.Context) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error.Printf("UploadPhoto: cannot open upload for member %s: %v", id, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error.Printf("UploadPhoto: cannot read upload for member %s: %v", id, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}

	url, err := mc.Service.AttachPhoto(id, data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPhoto):
			c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		case errors.Is(err, services.ErrPhotoTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		default:
			respondMemberError(c, "UploadPhoto", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

// QRCode returns a PNG QR code of the member id for check-in scanning.
func (mc *MemberController) QRCode(c *gin.Context) {
	id := c.Param("id")
	if _, err := mc.Service.Get(id); err != nil {
		respondMemberError(c, "QRCode", err)
		return
	}

	size := 256
	if raw := c.Query("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			size = parsed
		}
	}

	png, err := services.MemberQRCode(id, size)
	if err != nil {
		logger.Error.Printf("QRCode: failed to encode code for member %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetPlans returns the membership plan catalog.
func (mc *MemberController) GetPlans(c *gin.Context) {
	plans, err := mc.Service.Plans()
	if err != nil {
		logger.Error.Printf("GetPlans: failed to load plans: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// respondMemberError maps domain errors to HTTP responses, logging the
// unexpected ones.
func respondMemberError(c *gin.Context, op string, err error) {
	if errors.Is(err, services.ErrMemberNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}
	logger.Error.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
