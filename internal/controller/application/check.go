package application

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pollmap/cbnugeumeundong/internal/model"
	"github.com/pollmap/cbnugeumeundong/internal/utilities"
	"github.com/pollmap/cbnugeumeundong/internal/validate"
)

type checkRequest struct {
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Phone     string `json:"phone"`
}

type checkResponse struct {
	Success     bool                      `json:"success"`
	Found       bool                      `json:"found"`
	Application *model.ApplicationSummary `json:"application,omitempty"`
}

// Check looks up the newest application matching an identity triple and
// returns a redacted summary. The summary deliberately carries no essays or
// contact details: this endpoint must not hand out full application content
// to anyone guessing name/phone combinations.
// @Summary Check application status
// @Accept json
// @Produce json
// @Success 200 {object} checkResponse "found flag plus redacted summary"
// @Failure 400 {object} utilities.Response "Name or phone missing"
// @Failure 500 {object} utilities.Response "Server not configured or query failure"
// @Router /api/apply/check [post]
func (ac *Controller) Check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Response{Success: false, Message: msgCheckRequired})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		c.JSON(http.StatusBadRequest, utilities.Response{Success: false, Message: msgCheckRequired})
		return
	}

	if ac.Store == nil {
		log.Printf("application: status check dropped, database not configured")
		c.JSON(http.StatusInternalServerError, utilities.Response{Success: false, Message: msgServerConfig})
		return
	}

	app, err := ac.Store.LatestApplicationByIdentity(
		c.Request.Context(),
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.StudentID),
		validate.Digits(req.Phone),
	)
	if err != nil {
		log.Printf("application: status check query failed: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.Response{Success: false, Message: msgQueryError})
		return
	}

	if app == nil {
		c.JSON(http.StatusOK, checkResponse{Success: true, Found: false})
		return
	}

	summary := app.Summary()
	c.JSON(http.StatusOK, checkResponse{Success: true, Found: true, Application: &summary})
}
