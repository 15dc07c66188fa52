// Package model contain gorm model for recording data to database
package model

import "time"

// Options the apply form accepts for class year and prior experience.
var (
	Grades      = []string{"1학년", "2학년", "3학년", "4학년"}
	Experiences = []string{"없음", "1년 미만", "1~3년", "3년 이상"}
)

// AnswerNo is the rejecting choice of the eligibility questions.
const AnswerNo = "아니오"

// Application represents one submitted recruitment application.
// A row is written exactly once by the submission handler and is never
// updated or deleted afterwards. There is deliberately no uniqueness
// constraint on (name, student_id): resubmissions persist as new rows and
// the status check returns the newest one.
type Application struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime;index" json:"created_at"`

	Name       string `gorm:"type:text;not null;index" json:"name"`
	StudentID  string `gorm:"type:text;not null;index" json:"student_id"`
	Department string `gorm:"type:text" json:"department"`
	Grade      string `gorm:"type:text" json:"grade"`

	// Phone is stored as bare digits; display formatting is a client concern.
	Phone string `gorm:"type:text;index" json:"phone"`
	Email string `gorm:"type:text" json:"email"`

	CanCommit  string `gorm:"type:text" json:"can_commit"`
	IsEnrolled string `gorm:"type:text" json:"is_enrolled"`
	Experience string `gorm:"type:text" json:"experience"`

	Motivation string `gorm:"type:text" json:"motivation"`
	DeepDive   string `gorm:"type:text" json:"deep_dive"`
	Industry1  string `gorm:"type:text" json:"industry1"`
	Industry2  string `gorm:"type:text" json:"industry2"`
	Company1   string `gorm:"type:text" json:"company1"`
	Company2   string `gorm:"type:text" json:"company2"`

	// FileName keeps the original upload name; FileURL is nil when no file
	// was attached or the upload to cloud storage failed.
	FileName *string `gorm:"type:text" json:"file_name"`
	FileURL  *string `gorm:"type:text" json:"file_url"`
}

// ApplicationSummary is the redacted view returned by the status check.
// Essays and contact details must never appear here.
type ApplicationSummary struct {
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Grade       string    `json:"grade"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Summary redacts an application down to its status-check view.
func (a *Application) Summary() ApplicationSummary {
	return ApplicationSummary{
		Name:        a.Name,
		Department:  a.Department,
		Grade:       a.Grade,
		SubmittedAt: a.CreatedAt,
	}
}
