package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/assemble-platform/api-go/models"
	"github.com/assemble-platform/api-go/utils"
)

type ResearchController struct {
	DB *gorm.DB
}

func NewResearchController(db *gorm.DB) *ResearchController {
	return &ResearchController{DB: db}
}

type CreatePaperRequest struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Authors  string `json:"authors"`
	Category string `json:"category"`
	Keywords string `json:"keywords"`
}

// UpdatePaperRequest carries a partial update; only non-nil fields are
// applied to the paper.
type UpdatePaperRequest struct {
	Title           *string `json:"title"`
	Abstract        *string `json:"abstract"`
	Authors         *string `json:"authors"`
	Category        *string `json:"category"`
	Keywords        *string `json:"keywords"`
	Status          *string `json:"status"`
	PaperURL        *string `json:"paper_url"`
	DOI             *string `json:"doi"`
	PublicationDate *string `json:"publication_date"`
}

type PublishPaperRequest struct {
	PaperURL string `json:"paper_url"`
	DOI      string `json:"doi"`
}

type ReportPaperRequest struct {
	Reason string `json:"reason"`
}

// currentUser resolves the authenticated caller to their User row. A missing
// row answers 404 and reports false, matching the per-route lookup every
// owner-scoped operation performs.
func (rc *ResearchController) currentUser(c *gin.Context) (*models.User, bool) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return nil, false
	}

	var user models.User
	if err := rc.DB.Where("username = ?", claims.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}
	return &user, true
}

func paperOwnerJSON(owner *models.User, includeEmail bool) gin.H {
	data := gin.H{
		"id":         owner.ID,
		"username":   owner.Username,
		"full_name":  owner.FullName,
		"avatar_url": owner.AvatarURL,
	}
	if includeEmail {
		data["email"] = owner.Email
	}
	return data
}

func paperJSON(paper *models.ResearchPaper) gin.H {
	return gin.H{
		"id":               paper.ID,
		"title":            paper.Title,
		"abstract":         paper.Abstract,
		"authors":          paper.Authors,
		"category":         paper.Category,
		"keywords":         paper.Keywords,
		"status":           paper.Status,
		"paper_url":        paper.PaperURL,
		"doi":              paper.DOI,
		"publication_date": paper.PublicationDate,
		"created_at":       paper.CreatedAt,
		"updated_at":       paper.UpdatedAt,
	}
}

func (rc *ResearchController) GetPapers(c *gin.Context) {
	query := rc.DB.Preload("Owner").Where("is_active = ?", true)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var papers []models.ResearchPaper
	if err := query.Order("created_at desc").Find(&papers).Error; err != nil {
		log.Printf("Failed to fetch research papers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research papers"})
		return
	}

	papersData := make([]gin.H, 0, len(papers))
	for i := range papers {
		paper := &papers[i]
		data := paperJSON(paper)
		data["owner_id"] = paper.OwnerID
		data["owner"] = paperOwnerJSON(&paper.Owner, false)
		papersData = append(papersData, data)
	}

	c.JSON(http.StatusOK, papersData)
}

func (rc *ResearchController) GetPaper(c *gin.Context) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
		return
	}

	var paper models.ResearchPaper
	err = rc.DB.Preload("Owner").
		Where("id = ? AND is_active = ?", paperID, true).First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
			return
		}
		log.Printf("Failed to fetch research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research paper"})
		return
	}

	data := paperJSON(&paper)
	data["owner_id"] = paper.OwnerID
	data["owner"] = paperOwnerJSON(&paper.Owner, true)

	c.JSON(http.StatusOK, data)
}

func (rc *ResearchController) CreatePaper(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}

	var req CreatePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	title := strings.TrimSpace(req.Title)
	abstract := strings.TrimSpace(req.Abstract)
	authors := strings.TrimSpace(req.Authors)

	if title == "" || abstract == "" || authors == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, abstract, and authors are required"})
		return
	}

	paper := models.ResearchPaper{
		Title:    title,
		Abstract: abstract,
		Authors:  authors,
		Category: strings.TrimSpace(req.Category),
		Keywords: strings.TrimSpace(req.Keywords),
		Status:   models.PaperStatusAbstract,
		IsActive: true,
		OwnerID:  user.ID,
	}

	if err := rc.DB.Create(&paper).Error; err != nil {
		log.Printf("Failed to create research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create research paper"})
		return
	}

	log.Printf("Research paper created: %s by user %s", title, user.Username)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Research paper created successfully",
		"paper_id": paper.ID,
	})
}

// parsePublicationDate accepts ISO-8601 timestamps, with or without an
// offset, tolerating the trailing Z marker.
func parsePublicationDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (rc *ResearchController) UpdatePaper(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}

	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
		return
	}

	var paper models.ResearchPaper
	err = rc.DB.Where("id = ? AND is_active = ?", paperID, true).First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
			return
		}
		log.Printf("Failed to update research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update research paper"})
		return
	}

	if paper.OwnerID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdatePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	if req.Title != nil {
		paper.Title = strings.TrimSpace(*req.Title)
	}
	if req.Abstract != nil {
		paper.Abstract = strings.TrimSpace(*req.Abstract)
	}
	if req.Authors != nil {
		paper.Authors = strings.TrimSpace(*req.Authors)
	}
	if req.Category != nil {
		paper.Category = strings.TrimSpace(*req.Category)
	}
	if req.Keywords != nil {
		paper.Keywords = strings.TrimSpace(*req.Keywords)
	}
	if req.Status != nil {
		paper.Status = *req.Status
	}
	if req.PaperURL != nil {
		paper.PaperURL = strings.TrimSpace(*req.PaperURL)
	}
	if req.DOI != nil {
		paper.DOI = strings.TrimSpace(*req.DOI)
	}
	if req.PublicationDate != nil && *req.PublicationDate != "" {
		publicationDate, err := parsePublicationDate(*req.PublicationDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publication date"})
			return
		}
		paper.PublicationDate = &publicationDate
	}

	if err := rc.DB.Save(&paper).Error; err != nil {
		log.Printf("Failed to update research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update research paper"})
		return
	}

	log.Printf("Research paper updated: %s by user %s", paper.Title, user.Username)
	c.JSON(http.StatusOK, gin.H{"message": "Research paper updated successfully"})
}

func (rc *ResearchController) DeletePaper(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}

	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
		return
	}

	var paper models.ResearchPaper
	err = rc.DB.Where("id = ? AND is_active = ?", paperID, true).First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
			return
		}
		log.Printf("Failed to delete research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete research paper"})
		return
	}

	if paper.OwnerID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	paper.IsActive = false
	if err := rc.DB.Save(&paper).Error; err != nil {
		log.Printf("Failed to delete research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete research paper"})
		return
	}

	log.Printf("Research paper deleted: %s by user %s", paper.Title, user.Username)
	c.JSON(http.StatusOK, gin.H{"message": "Research paper deleted successfully"})
}

func (rc *ResearchController) PublishPaper(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}

	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
		return
	}

	var paper models.ResearchPaper
	err = rc.DB.Where("id = ? AND is_active = ?", paperID, true).First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
			return
		}
		log.Printf("Failed to publish research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish research paper"})
		return
	}

	if paper.OwnerID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	var req PublishPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	paperURL := strings.TrimSpace(req.PaperURL)
	doi := strings.TrimSpace(req.DOI)

	if paperURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paper URL is required for publishing"})
		return
	}

	now := time.Now()
	paper.Status = models.PaperStatusPublished
	paper.PaperURL = paperURL
	if doi != "" {
		paper.DOI = doi
	}
	paper.PublicationDate = &now

	if err := rc.DB.Save(&paper).Error; err != nil {
		log.Printf("Failed to publish research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish research paper"})
		return
	}

	log.Printf("Research paper published: %s by user %s", paper.Title, user.Username)
	c.JSON(http.StatusOK, gin.H{"message": "Research paper published successfully"})
}

func (rc *ResearchController) GetMyPapers(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}

	var papers []models.ResearchPaper
	err := rc.DB.Where("owner_id = ? AND is_active = ?", user.ID, true).
		Order("created_at desc").Find(&papers).Error
	if err != nil {
		log.Printf("Failed to fetch user's research papers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research papers"})
		return
	}

	papersData := make([]gin.H, 0, len(papers))
	for i := range papers {
		papersData = append(papersData, paperJSON(&papers[i]))
	}

	c.JSON(http.StatusOK, papersData)
}

func (rc *ResearchController) ReportPaper(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}

	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
		return
	}

	// Inactive papers stay reportable; only existence matters here.
	var paper models.ResearchPaper
	if err := rc.DB.First(&paper, paperID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
			return
		}
		log.Printf("Failed to report research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report research paper"})
		return
	}

	if paper.OwnerID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot report your own research paper"})
		return
	}

	var existing models.Report
	err = rc.DB.Where("reporter_id = ? AND report_type = ? AND target_id = ?",
		user.ID, models.ReportTypeResearchPaper, paperID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reported this research paper"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to report research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report research paper"})
		return
	}

	var req ReportPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reason is required"})
		return
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reason is required"})
		return
	}

	report := models.Report{
		ReporterID: user.ID,
		ReportType: models.ReportTypeResearchPaper,
		TargetID:   uint(paperID),
		Reason:     reason,
		Status:     models.ReportStatusPending,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		log.Printf("Failed to report research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report research paper"})
		return
	}

	log.Printf("Research paper reported: %s by user %s", paper.Title, user.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "Research paper reported successfully"})
}
