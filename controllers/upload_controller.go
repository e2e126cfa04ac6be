package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assemble-platform/api-go/config"
	"github.com/assemble-platform/api-go/models"
	"github.com/assemble-platform/api-go/utils"
)

type UploadController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
}

type AvatarUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type AvatarConfirmRequest struct {
	Key string `json:"key" binding:"required"`
}

const maxAvatarSize = 5 * 1024 * 1024 // 5 MB

func NewUploadController(db *gorm.DB) *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// GetAvatarUploadURL hands the caller a presigned PUT URL for a new avatar
// object. The client uploads directly to storage and then confirms.
func (uc *UploadController) GetAvatarUploadURL(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !strings.HasPrefix(req.ContentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar must be an image"})
		return
	}
	if req.FileSize > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := uc.generateAvatarKey(user.ID, req.FileName)

	uploadURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		log.Printf("Failed to create avatar upload URL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_url": uploadURL,
		"file_url":   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
		"key":        key,
		"expires_in": 3600,
	})
}

// ConfirmAvatarUpload records the uploaded object's public URL on the
// caller's profile.
func (uc *UploadController) ConfirmAvatarUpload(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	var req AvatarConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !strings.HasPrefix(req.Key, fmt.Sprintf("avatars/%d/", user.ID)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	avatarURL := fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, req.Key)
	if err := uc.DB.Model(user).Update("avatar_url", avatarURL).Error; err != nil {
		log.Printf("Failed to update avatar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar"})
		return
	}

	log.Printf("Avatar updated for user %s", user.Username)
	c.JSON(http.StatusOK, gin.H{
		"message":    "Avatar updated successfully",
		"avatar_url": avatarURL,
	})
}

func (uc *UploadController) currentUser(c *gin.Context) (*models.User, bool) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return nil, false
	}

	var user models.User
	if err := uc.DB.Where("username = ?", claims.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}
	return &user, true
}

func (uc *UploadController) generateAvatarKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("avatars/%d/%d_%s%s", userID, time.Now().Unix(), uuid.New().String(), ext)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
