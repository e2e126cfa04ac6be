package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assemble-platform/api-go/models"
)

func TestResearchRoutesRequireAuthentication(t *testing.T) {
	_, r := setupTestServer(t)

	w := doRequest(t, r, "GET", "/api/research/papers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "POST", "/api/research/papers", "", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePaperValidation(t *testing.T) {
	db, r := setupTestServer(t)
	createUser(t, db, "author", false)
	token := tokenFor(t, "author")

	cases := []map[string]string{
		{"abstract": "a", "authors": "x"},
		{"title": "t", "authors": "x"},
		{"title": "t", "abstract": "a"},
		{"title": "   ", "abstract": "a", "authors": "x"},
	}
	for _, body := range cases {
		w := doRequest(t, r, "POST", "/api/research/papers", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	require.NoError(t, db.Model(&models.ResearchPaper{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateAndPublishPaperEndToEnd(t *testing.T) {
	db, r := setupTestServer(t)
	createUser(t, db, "jane", false)
	token := tokenFor(t, "jane")

	w := doRequest(t, r, "POST", "/api/research/papers", token, map[string]string{
		"title":    "Quantum X",
		"abstract": "A study of X.",
		"authors":  "Jane",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	paperID := decodeObject(t, w)["paper_id"].(float64)

	path := fmt.Sprintf("/api/research/papers/%d", int(paperID))

	w = doRequest(t, r, "GET", path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	paper := decodeObject(t, w)
	assert.Equal(t, "abstract", paper["status"])
	assert.Empty(t, paper["paper_url"])
	assert.Nil(t, paper["publication_date"])

	// Publishing without a URL must fail and leave the status alone.
	w = doRequest(t, r, "POST", path+"/publish", token, map[string]string{"paper_url": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "GET", path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abstract", decodeObject(t, w)["status"])

	w = doRequest(t, r, "POST", path+"/publish", token, map[string]string{"paper_url": "http://x", "doi": "10.1/x"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, "GET", path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	paper = decodeObject(t, w)
	assert.Equal(t, "published", paper["status"])
	assert.Equal(t, "http://x", paper["paper_url"])
	assert.Equal(t, "10.1/x", paper["doi"])
	assert.NotNil(t, paper["publication_date"])
}

func TestGetPapersFiltersAndOwnerSummary(t *testing.T) {
	db, r := setupTestServer(t)
	owner := createUser(t, db, "owner", false)
	createUser(t, db, "reader", false)

	abstractPaper := models.ResearchPaper{Title: "Draft", Abstract: "a", Authors: "x", Category: "ml", Status: "abstract", IsActive: true, OwnerID: owner.ID, CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, db.Create(&abstractPaper).Error)
	published := models.ResearchPaper{Title: "Done", Abstract: "a", Authors: "x", Category: "systems", Status: "published", IsActive: true, OwnerID: owner.ID}
	require.NoError(t, db.Create(&published).Error)
	hidden := models.ResearchPaper{Title: "Hidden", Abstract: "a", Authors: "x", Category: "ml", Status: "abstract", IsActive: false, OwnerID: owner.ID}
	require.NoError(t, db.Create(&hidden).Error)

	token := tokenFor(t, "reader")

	w := doRequest(t, r, "GET", "/api/research/papers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	papers := decodeList(t, w)
	require.Len(t, papers, 2)
	assert.Equal(t, "Done", papers[0]["title"])
	assert.Equal(t, "Draft", papers[1]["title"])

	// List view carries the owner summary without an email address.
	ownerData := papers[0]["owner"].(map[string]interface{})
	assert.Equal(t, "owner", ownerData["username"])
	_, hasEmail := ownerData["email"]
	assert.False(t, hasEmail)

	w = doRequest(t, r, "GET", "/api/research/papers?status=published", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	papers = decodeList(t, w)
	require.Len(t, papers, 1)
	assert.Equal(t, "Done", papers[0]["title"])

	w = doRequest(t, r, "GET", "/api/research/papers?category=ml", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	papers = decodeList(t, w)
	require.Len(t, papers, 1)
	assert.Equal(t, "Draft", papers[0]["title"])

	w = doRequest(t, r, "GET", "/api/research/papers?status=abstract&category=systems", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 0)
}

func TestGetPaperIncludesOwnerEmail(t *testing.T) {
	db, r := setupTestServer(t)
	owner := createUser(t, db, "owner", false)
	createUser(t, db, "reader", false)

	paper := models.ResearchPaper{Title: "Detail", Abstract: "a", Authors: "x", Status: "abstract", IsActive: true, OwnerID: owner.ID}
	require.NoError(t, db.Create(&paper).Error)

	w := doRequest(t, r, "GET", "/api/research/papers/1", tokenFor(t, "reader"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	ownerData := decodeObject(t, w)["owner"].(map[string]interface{})
	assert.Equal(t, "owner@example.com", ownerData["email"])

	w = doRequest(t, r, "GET", "/api/research/papers/999", tokenFor(t, "reader"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePaperPartialFields(t *testing.T) {
	db, r := setupTestServer(t)
	owner := createUser(t, db, "owner", false)

	paper := models.ResearchPaper{Title: "A", Abstract: "original", Authors: "x", Status: "abstract", IsActive: true, OwnerID: owner.ID}
	require.NoError(t, db.Create(&paper).Error)

	token := tokenFor(t, "owner")

	w := doRequest(t, r, "PUT", "/api/research/papers/1", token, map[string]string{"abstract": "B"})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.ResearchPaper
	require.NoError(t, db.First(&fresh, paper.ID).Error)
	assert.Equal(t, "A", fresh.Title)
	assert.Equal(t, "B", fresh.Abstract)

	w = doRequest(t, r, "PUT", "/api/research/papers/1", token, map[string]string{
		"publication_date": "2024-05-01T10:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&fresh, paper.ID).Error)
	require.NotNil(t, fresh.PublicationDate)
	assert.Equal(t, 2024, fresh.PublicationDate.Year())

	w = doRequest(t, r, "PUT", "/api/research/papers/1", token, map[string]string{
		"publication_date": "not-a-date",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePaperAuthorization(t *testing.T) {
	db, r := setupTestServer(t)
	owner := createUser(t, db, "owner", false)
	createUser(t, db, "stranger", false)
	createUser(t, db, "admin", true)

	paper := models.ResearchPaper{Title: "Guarded", Abstract: "a", Authors: "x", Status: "abstract", IsActive: true, OwnerID: owner.ID}
	require.NoError(t, db.Create(&paper).Error)

	w := doRequest(t, r, "PUT", "/api/research/papers/1", tokenFor(t, "stranger"), map[string]string{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admins may update papers they do not own.
	w = doRequest(t, r, "PUT", "/api/research/papers/1", tokenFor(t, "admin"), map[string]string{"title": "Moderated"})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.ResearchPaper
	require.NoError(t, db.First(&fresh, paper.ID).Error)
	assert.Equal(t, "Moderated", fresh.Title)
}

func TestDeletePaperIsSoft(t *testing.T) {
	db, r := setupTestServer(t)
	owner := createUser(t, db, "owner", false)
	createUser(t, db, "stranger", false)

	paper := models.ResearchPaper{Title: "Fading", Abstract: "a", Authors: "x", Status: "abstract", IsActive: true, OwnerID: owner.ID}
	require.NoError(t, db.Create(&paper).Error)

	w := doRequest(t, r, "DELETE", "/api/research/papers/1", tokenFor(t, "stranger"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "DELETE", "/api/research/papers/1", tokenFor(t, "owner"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The row persists with is_active=false.
	var fresh models.ResearchPaper
	require.NoError(t, db.First(&fresh, paper.ID).Error)
	assert.False(t, fresh.IsActive)

	// Soft-deleted papers vanish from every listing and the detail view.
	ownerToken := tokenFor(t, "owner")
	w = doRequest(t, r, "GET", "/api/research/papers", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 0)

	w = doRequest(t, r, "GET", "/api/research/papers/1", ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, "GET", "/api/research/my-papers", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 0)

	// Deleting again finds nothing active.
	w = doRequest(t, r, "DELETE", "/api/research/papers/1", ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMyPapers(t *testing.T) {
	db, r := setupTestServer(t)
	owner := createUser(t, db, "owner", false)
	other := createUser(t, db, "other", false)

	mine := models.ResearchPaper{Title: "Mine", Abstract: "a", Authors: "x", Status: "abstract", IsActive: true, OwnerID: owner.ID}
	require.NoError(t, db.Create(&mine).Error)
	theirs := models.ResearchPaper{Title: "Theirs", Abstract: "a", Authors: "x", Status: "abstract", IsActive: true, OwnerID: other.ID}
	require.NoError(t, db.Create(&theirs).Error)

	w := doRequest(t, r, "GET", "/api/research/my-papers", tokenFor(t, "owner"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	papers := decodeList(t, w)
	require.Len(t, papers, 1)
	assert.Equal(t, "Mine", papers[0]["title"])
	_, hasOwner := papers[0]["owner"]
	assert.False(t, hasOwner)
}

func TestReportPaperRules(t *testing.T) {
	db, r := setupTestServer(t)
	owner := createUser(t, db, "owner", false)
	createUser(t, db, "reporter", false)

	paper := models.ResearchPaper{Title: "Contested", Abstract: "a", Authors: "x", Status: "abstract", IsActive: true, OwnerID: owner.ID}
	require.NoError(t, db.Create(&paper).Error)

	ownerToken := tokenFor(t, "owner")
	reporterToken := tokenFor(t, "reporter")

	// Owners cannot report their own paper, whatever the reason says.
	w := doRequest(t, r, "POST", "/api/research/papers/1/report", ownerToken, map[string]string{"reason": "testing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "POST", "/api/research/papers/1/report", reporterToken, map[string]string{"reason": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "POST", "/api/research/papers/999/report", reporterToken, map[string]string{"reason": "spam"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, "POST", "/api/research/papers/1/report", reporterToken, map[string]string{"reason": "plagiarism"})
	require.Equal(t, http.StatusCreated, w.Code)

	// A second report for the same (reporter, paper) pair is rejected and
	// no extra row appears.
	w = doRequest(t, r, "POST", "/api/research/papers/1/report", reporterToken, map[string]string{"reason": "again"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Report{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var report models.Report
	require.NoError(t, db.First(&report).Error)
	assert.Equal(t, models.ReportTypeResearchPaper, report.ReportType)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.Equal(t, paper.ID, report.TargetID)
}
