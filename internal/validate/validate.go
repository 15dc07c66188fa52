// Package validate implements the server-side checks an application must
// pass before any side effect runs. Everything here is a pure function:
// no I/O, no shared state.
package validate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pollmap/cbnugeumeundong/internal/config"
	"github.com/pollmap/cbnugeumeundong/internal/model"
)

// Submission is a candidate payload after binding, before any trimming.
// FileName is empty when no attachment was sent.
type Submission struct {
	Name       string
	StudentID  string
	Department string
	Grade      string
	Phone      string
	Email      string

	CanCommit  string
	IsEnrolled string
	Experience string

	Motivation string
	DeepDive   string
	Industry1  string
	Industry2  string
	Company1   string
	Company2   string

	FileName string
	FileSize int64
}

// AllowedExtensions lists the attachment types the form accepts.
var AllowedExtensions = map[string]bool{
	".hwp":  true,
	".docx": true,
	".doc":  true,
	".pdf":  true,
}

var (
	nameRe   = regexp.MustCompile(`^[가-힣a-zA-Z\s]+$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigit = regexp.MustCompile(`[^0-9]`)
)

// Error is a client-correctable rejection carrying the user-facing reason.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func fail(reason string) *Error { return &Error{Reason: reason} }

// Digits strips everything but 0-9, normalizing phone input like
// "010-1234-5678" to its stored form.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// Application checks one submission against the round policy and returns
// nil or the first failing rule. The eligibility gates run first so that an
// ineligible applicant sees the specific explanation instead of a generic
// field error.
func Application(s Submission, pol config.Policy) error {
	if s.CanCommit == model.AnswerNo {
		return fail("2학기 연속 참여가 불가능한 경우 지원할 수 없습니다.")
	}
	if pol.RequireEnrollment && s.IsEnrolled == model.AnswerNo {
		return fail("현재 재학 중인 학생만 지원 가능합니다. (휴학생은 지원 불가)")
	}

	required := []string{s.Name, s.StudentID, s.Phone, s.Email}
	if !pol.RequireAttachment {
		// essay round: the long-form fields are part of the submission
		required = append(required,
			s.Department, s.Grade, s.CanCommit, s.IsEnrolled, s.Experience,
			s.Motivation, s.DeepDive, s.Industry1, s.Company1)
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return fail("모든 필수 항목을 입력해주세요.")
		}
	}

	if !nameRe.MatchString(strings.TrimSpace(s.Name)) {
		return fail("이름은 한글 또는 영어만 입력 가능합니다.")
	}

	studentID := strings.TrimSpace(s.StudentID)
	if !digitsRe.MatchString(studentID) {
		return fail("학번은 숫자만 입력 가능합니다.")
	}
	if pol.StudentIDExactLength > 0 && len(studentID) != pol.StudentIDExactLength {
		return fail(fmt.Sprintf("학번은 %d자리 숫자여야 합니다.", pol.StudentIDExactLength))
	}

	if !emailRe.MatchString(strings.TrimSpace(s.Email)) {
		return fail("올바른 이메일을 입력해주세요.")
	}

	if phone := Digits(s.Phone); len(phone) < 10 || len(phone) > 11 {
		return fail("올바른 전화번호를 입력해주세요.")
	}

	if !pol.RequireAttachment {
		if got := utf8.RuneCountInString(strings.TrimSpace(s.Motivation)); got < pol.MotivationMinChars {
			return fail(fmt.Sprintf("지원 동기를 %d자 이상 작성해주세요. (현재 %d자 / 최소 %d자)",
				pol.MotivationMinChars, got, pol.MotivationMinChars))
		}
	}

	if s.FileName == "" {
		if pol.RequireAttachment {
			return fail("지원서 파일을 업로드해주세요.")
		}
		return nil
	}
	if ext := strings.ToLower(filepath.Ext(s.FileName)); !AllowedExtensions[ext] {
		return fail("HWP, Word(.docx), PDF 파일만 업로드 가능합니다.")
	}
	if s.FileSize > pol.MaxUploadBytes {
		return fail(fmt.Sprintf("파일 크기는 %dMB 이하여야 합니다.", pol.MaxUploadBytes>>20))
	}

	return nil
}
