package application

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pollmap/cbnugeumeundong/internal/model"
	"github.com/pollmap/cbnugeumeundong/internal/storage"
	"github.com/pollmap/cbnugeumeundong/internal/utilities"
	"github.com/pollmap/cbnugeumeundong/internal/validate"
)

// submitRequest binds both deployment variants: the JSON essay form and the
// multipart file form. Field names follow the apply form exactly.
type submitRequest struct {
	Name       string `form:"name" json:"name"`
	StudentID  string `form:"studentId" json:"studentId"`
	Department string `form:"department" json:"department"`
	Grade      string `form:"grade" json:"grade"`
	Phone      string `form:"phone" json:"phone"`
	Email      string `form:"email" json:"email"`
	CanCommit  string `form:"canCommit" json:"canCommit"`
	IsEnrolled string `form:"isEnrolled" json:"isEnrolled"`
	Experience string `form:"experience" json:"experience"`
	Motivation string `form:"motivation" json:"motivation"`
	DeepDive   string `form:"deepDive" json:"deepDive"`
	Industry1  string `form:"industry1" json:"industry1"`
	Industry2  string `form:"industry2" json:"industry2"`
	Company1   string `form:"company1" json:"company1"`
	Company2   string `form:"company2" json:"company2"`
}

// Submit handles one application submission.
// @Summary Submit a recruitment application
// @Description Accepts application/json (essay round) or multipart/form-data with a "file" field (document round). File must be .hwp, .docx, .doc or .pdf and at most the configured ceiling.
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} utilities.Response "Application stored"
// @Failure 400 {object} utilities.Response "Validation failed, reason in message"
// @Failure 413 {object} utilities.Response "Request body exceeds the upload ceiling"
// @Failure 500 {object} utilities.Response "Server not configured or storage failure"
// @Router /api/apply [post]
func (ac *Controller) Submit(c *gin.Context) {
	var req submitRequest
	var attachment *multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.JSON(http.StatusRequestEntityTooLarge, utilities.Response{
					Success: false,
					Message: fmt.Sprintf("파일 크기는 %dMB 이하여야 합니다.", ac.Policy.MaxUploadBytes>>20),
				})
				return
			}
			c.JSON(http.StatusBadRequest, utilities.Response{Success: false, Message: msgBadPayload})
			return
		}
		// the attachment is optional in essay rounds; ignore the missing
		// file error and let the validator decide
		if rawFile, err := c.FormFile("file"); err == nil {
			attachment = rawFile
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, utilities.Response{Success: false, Message: msgBadPayload})
			return
		}
	}

	sub := validate.Submission{
		Name:       req.Name,
		StudentID:  req.StudentID,
		Department: req.Department,
		Grade:      req.Grade,
		Phone:      req.Phone,
		Email:      req.Email,
		CanCommit:  req.CanCommit,
		IsEnrolled: req.IsEnrolled,
		Experience: req.Experience,
		Motivation: req.Motivation,
		DeepDive:   req.DeepDive,
		Industry1:  req.Industry1,
		Industry2:  req.Industry2,
		Company1:   req.Company1,
		Company2:   req.Company2,
	}
	if attachment != nil {
		sub.FileName = attachment.Filename
		sub.FileSize = attachment.Size
	}

	// every rule runs before any side effect; the first failing one comes
	// back as the user-facing message
	if err := validate.Application(sub, ac.Policy); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Response{Success: false, Message: err.Error()})
		return
	}

	if ac.Store == nil {
		log.Printf("application: submission dropped, database not configured")
		c.JSON(http.StatusInternalServerError, utilities.Response{Success: false, Message: msgServerConfig})
		return
	}

	app := model.Application{
		Name:       strings.TrimSpace(req.Name),
		StudentID:  strings.TrimSpace(req.StudentID),
		Department: strings.TrimSpace(req.Department),
		Grade:      req.Grade,
		Phone:      validate.Digits(req.Phone),
		Email:      strings.TrimSpace(req.Email),
		CanCommit:  req.CanCommit,
		IsEnrolled: req.IsEnrolled,
		Experience: req.Experience,
		Motivation: strings.TrimSpace(req.Motivation),
		DeepDive:   strings.TrimSpace(req.DeepDive),
		Industry1:  strings.TrimSpace(req.Industry1),
		Industry2:  strings.TrimSpace(req.Industry2),
		Company1:   strings.TrimSpace(req.Company1),
		Company2:   strings.TrimSpace(req.Company2),
	}

	// upload before insert so the URL lands in the same row; an upload
	// failure is logged and the row keeps a nil URL
	if attachment != nil {
		fileName := attachment.Filename
		app.FileName = &fileName
		if ac.Storage != nil {
			ac.uploadAttachment(c, attachment, &app)
		}
	}

	if err := ac.Store.InsertApplication(c.Request.Context(), &app); err != nil {
		log.Printf("application: insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.Response{Success: false, Message: msgServerError})
		return
	}

	if ac.Mailer != nil {
		ac.Mailer.Notify(app)
	}

	c.JSON(http.StatusOK, utilities.Response{Success: true, Message: msgSubmitted})
}

func (ac *Controller) uploadAttachment(c *gin.Context, attachment *multipart.FileHeader, app *model.Application) {
	f, err := attachment.Open()
	if err != nil {
		log.Printf("application: cannot open attachment %q: %v", attachment.Filename, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("application: failed to close attachment: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		log.Printf("application: cannot read attachment %q: %v", attachment.Filename, err)
		return
	}

	key := storage.ObjectKey(app.StudentID, attachment.Filename)
	if err := ac.Storage.Upload(c.Request.Context(), key, bytes.NewReader(fileBytes)); err != nil {
		log.Printf("application: attachment upload failed: %v", err)
		return
	}

	url := ac.Storage.PublicURL(key)
	app.FileURL = &url
}
