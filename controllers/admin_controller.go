package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/assemble-platform/api-go/models"
	"github.com/assemble-platform/api-go/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

type UpdateReportStatusRequest struct {
	Status string `json:"status"`
}

// ownerSummary is the nested owner object embedded in admin listings.
func ownerSummary(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}

func (ac *AdminController) GetAllProjects(c *gin.Context) {
	var projects []models.Project
	if err := ac.DB.Preload("Owner").Preload("Applications").
		Order("created_at desc").Find(&projects).Error; err != nil {
		log.Printf("Failed to fetch all projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	projectsData := make([]gin.H, 0, len(projects))
	for i := range projects {
		project := &projects[i]
		projectsData = append(projectsData, gin.H{
			"id":                project.ID,
			"name":              project.Name,
			"description":       project.Description,
			"status":            project.Status,
			"is_active":         project.IsActive,
			"owner":             ownerSummary(&project.Owner),
			"created_at":        project.CreatedAt,
			"application_count": len(project.Applications),
		})
	}

	c.JSON(http.StatusOK, projectsData)
}

func (ac *AdminController) DeleteProject(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var project models.Project
	if err := ac.DB.Preload("Owner").First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		log.Printf("Failed to delete project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	// Capture before the row goes away.
	projectName := project.Name
	ownerUsername := project.Owner.Username

	if err := ac.DB.Delete(&project).Error; err != nil {
		log.Printf("Failed to delete project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	log.Printf("Admin deleted project: %s (ID: %d) by %s", projectName, projectID, ownerUsername)
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func (ac *AdminController) GetAllHackathons(c *gin.Context) {
	var hackathons []models.HackathonPost
	if err := ac.DB.Preload("Owner").Preload("Applications").
		Order("created_at desc").Find(&hackathons).Error; err != nil {
		log.Printf("Failed to fetch all hackathons: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hackathons"})
		return
	}

	hackathonsData := make([]gin.H, 0, len(hackathons))
	for i := range hackathons {
		hackathon := &hackathons[i]
		hackathonsData = append(hackathonsData, gin.H{
			"id":                hackathon.ID,
			"title":             hackathon.Title,
			"description":       hackathon.Description,
			"hackathon_name":    hackathon.HackathonName,
			"hackathon_date":    hackathon.HackathonDate,
			"is_active":         hackathon.IsActive,
			"owner":             ownerSummary(&hackathon.Owner),
			"created_at":        hackathon.CreatedAt,
			"application_count": len(hackathon.Applications),
		})
	}

	c.JSON(http.StatusOK, hackathonsData)
}

func (ac *AdminController) DeleteHackathon(c *gin.Context) {
	hackathonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
		return
	}

	var hackathon models.HackathonPost
	if err := ac.DB.Preload("Owner").First(&hackathon, hackathonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
			return
		}
		log.Printf("Failed to delete hackathon: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hackathon"})
		return
	}

	hackathonTitle := hackathon.Title
	ownerUsername := hackathon.Owner.Username

	if err := ac.DB.Delete(&hackathon).Error; err != nil {
		log.Printf("Failed to delete hackathon: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hackathon"})
		return
	}

	log.Printf("Admin deleted hackathon: %s (ID: %d) by %s", hackathonTitle, hackathonID, ownerUsername)
	c.JSON(http.StatusOK, gin.H{"message": "Hackathon deleted successfully"})
}

func (ac *AdminController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := ac.DB.Preload("Projects").Preload("HackathonPosts").
		Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("Failed to fetch all users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	usersData := make([]gin.H, 0, len(users))
	for i := range users {
		user := &users[i]
		usersData = append(usersData, gin.H{
			"id":              user.ID,
			"username":        user.Username,
			"email":           user.Email,
			"full_name":       user.FullName,
			"is_active":       user.IsActive,
			"is_admin":        user.IsAdmin,
			"created_at":      user.CreatedAt,
			"project_count":   len(user.Projects),
			"hackathon_count": len(user.HackathonPosts),
		})
	}

	c.JSON(http.StatusOK, usersData)
}

func (ac *AdminController) ToggleUserActive(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to toggle user active status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	user.IsActive = !user.IsActive
	if err := ac.DB.Model(&user).Update("is_active", user.IsActive).Error; err != nil {
		log.Printf("Failed to toggle user active status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	status := "deactivated"
	if user.IsActive {
		status = "activated"
	}
	log.Printf("Admin %s user: %s (ID: %d)", status, user.Username, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":   "User " + status + " successfully",
		"is_active": user.IsActive,
	})
}

func (ac *AdminController) GetStats(c *gin.Context) {
	var (
		totalUsers, activeUsers           int64
		totalProjects, activeProjects     int64
		totalHackathons, activeHackathons int64
		totalPapers, activePapers         int64
		totalReports, pendingReports      int64
		projectReports                    int64
		hackathonReports                  int64
		paperReports                      int64
	)

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		counts := []struct {
			query *gorm.DB
			dest  *int64
		}{
			{tx.Model(&models.User{}), &totalUsers},
			{tx.Model(&models.User{}).Where("is_active = ?", true), &activeUsers},
			{tx.Model(&models.Project{}), &totalProjects},
			{tx.Model(&models.Project{}).Where("is_active = ?", true), &activeProjects},
			{tx.Model(&models.HackathonPost{}), &totalHackathons},
			{tx.Model(&models.HackathonPost{}).Where("is_active = ?", true), &activeHackathons},
			{tx.Model(&models.ResearchPaper{}), &totalPapers},
			{tx.Model(&models.ResearchPaper{}).Where("is_active = ?", true), &activePapers},
			{tx.Model(&models.Report{}), &totalReports},
			{tx.Model(&models.Report{}).Where("status = ?", models.ReportStatusPending), &pendingReports},
			{tx.Model(&models.Report{}).Where("report_type = ?", models.ReportTypeProject), &projectReports},
			{tx.Model(&models.Report{}).Where("report_type = ?", models.ReportTypeHackathon), &hackathonReports},
			{tx.Model(&models.Report{}).Where("report_type = ?", models.ReportTypeResearchPaper), &paperReports},
		}
		for _, count := range counts {
			if err := count.query.Count(count.dest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Failed to fetch stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": gin.H{
			"total":  totalUsers,
			"active": activeUsers,
		},
		"projects": gin.H{
			"total":   totalProjects,
			"active":  activeProjects,
			"reports": projectReports,
		},
		"hackathons": gin.H{
			"total":   totalHackathons,
			"active":  activeHackathons,
			"reports": hackathonReports,
		},
		"research_papers": gin.H{
			"total":   totalPapers,
			"active":  activePapers,
			"reports": paperReports,
		},
		"reports": gin.H{
			"total":   totalReports,
			"pending": pendingReports,
		},
	})
}

func (ac *AdminController) GetAllResearchPapers(c *gin.Context) {
	var papers []models.ResearchPaper
	if err := ac.DB.Preload("Owner").Order("created_at desc").Find(&papers).Error; err != nil {
		log.Printf("Failed to fetch all research papers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research papers"})
		return
	}

	papersData := make([]gin.H, 0, len(papers))
	for i := range papers {
		paper := &papers[i]

		var reportCount int64
		if err := ac.DB.Model(&models.Report{}).
			Where("report_type = ? AND target_id = ?", models.ReportTypeResearchPaper, paper.ID).
			Count(&reportCount).Error; err != nil {
			log.Printf("Failed to fetch all research papers: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research papers"})
			return
		}

		papersData = append(papersData, gin.H{
			"id":           paper.ID,
			"title":        paper.Title,
			"abstract":     utils.Truncate(paper.Abstract, 200),
			"authors":      paper.Authors,
			"category":     paper.Category,
			"status":       paper.Status,
			"is_active":    paper.IsActive,
			"owner":        ownerSummary(&paper.Owner),
			"created_at":   paper.CreatedAt,
			"report_count": reportCount,
		})
	}

	c.JSON(http.StatusOK, papersData)
}

func (ac *AdminController) DeleteResearchPaper(c *gin.Context) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
		return
	}

	var paper models.ResearchPaper
	if err := ac.DB.Preload("Owner").First(&paper, paperID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Research paper not found"})
			return
		}
		log.Printf("Failed to delete research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete research paper"})
		return
	}

	paperTitle := paper.Title
	ownerUsername := paper.Owner.Username

	if err := ac.DB.Delete(&paper).Error; err != nil {
		log.Printf("Failed to delete research paper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete research paper"})
		return
	}

	log.Printf("Admin deleted research paper: %s (ID: %d) by %s", paperTitle, paperID, ownerUsername)
	c.JSON(http.StatusOK, gin.H{"message": "Research paper deleted successfully"})
}

// reportTargetResolvers maps a report type to the lookup that resolves its
// polymorphic target. A missing target yields nil, which the listing renders
// as an empty object rather than an error.
var reportTargetResolvers = map[string]func(db *gorm.DB, targetID uint) gin.H{
	models.ReportTypeProject: func(db *gorm.DB, targetID uint) gin.H {
		var target models.Project
		if err := db.Preload("Owner").First(&target, targetID).Error; err != nil {
			return nil
		}
		return gin.H{"name": target.Name, "owner": target.Owner.Username}
	},
	models.ReportTypeHackathon: func(db *gorm.DB, targetID uint) gin.H {
		var target models.HackathonPost
		if err := db.Preload("Owner").First(&target, targetID).Error; err != nil {
			return nil
		}
		return gin.H{"name": target.Title, "owner": target.Owner.Username}
	},
	models.ReportTypeResearchPaper: func(db *gorm.DB, targetID uint) gin.H {
		var target models.ResearchPaper
		if err := db.Preload("Owner").First(&target, targetID).Error; err != nil {
			return nil
		}
		return gin.H{"name": target.Title, "owner": target.Owner.Username}
	},
}

func (ac *AdminController) GetAllReports(c *gin.Context) {
	var reports []models.Report
	if err := ac.DB.Preload("Reporter").Order("created_at desc").Find(&reports).Error; err != nil {
		log.Printf("Failed to fetch reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	reportsData := make([]gin.H, 0, len(reports))
	for i := range reports {
		report := &reports[i]

		targetInfo := gin.H{}
		if resolve, ok := reportTargetResolvers[report.ReportType]; ok {
			if info := resolve(ac.DB, report.TargetID); info != nil {
				targetInfo = info
			}
		}

		reportsData = append(reportsData, gin.H{
			"id":          report.ID,
			"report_type": report.ReportType,
			"target_id":   report.TargetID,
			"target_info": targetInfo,
			"reason":      report.Reason,
			"status":      report.Status,
			"reporter": gin.H{
				"id":       report.Reporter.ID,
				"username": report.Reporter.Username,
			},
			"created_at": report.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, reportsData)
}

func (ac *AdminController) UpdateReportStatus(c *gin.Context) {
	reportID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	var report models.Report
	if err := ac.DB.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		log.Printf("Failed to update report status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report status"})
		return
	}

	var req UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidReportStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if err := ac.DB.Model(&report).Update("status", req.Status).Error; err != nil {
		log.Printf("Failed to update report status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report status"})
		return
	}

	log.Printf("Admin updated report %d status to %s", reportID, req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Report status updated successfully"})
}
