package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollmap/cbnugeumeundong/internal/model"
)

func sampleApplication() model.Application {
	fileName := "지원서.pdf"
	fileURL := "https://storage.googleapis.com/bucket/applications/1_2023123456_지원서.pdf"
	return model.Application{
		Name:       "홍길동",
		StudentID:  "2023123456",
		Department: "경영학부",
		Grade:      "2학년",
		Phone:      "01012345678",
		Email:      "hong@cbnu.ac.kr",
		Experience: "없음",
		Motivation: strings.Repeat("지원 동기입니다. ", 60),
		DeepDive:   "기업 분석 블로그 운영",
		Industry1:  "반도체",
		Industry2:  "이차전지",
		Company1:   "삼성전자",
		Company2:   "LG에너지솔루션",
		FileName:   &fileName,
		FileURL:    &fileURL,
	}
}

func TestRenderApplicantBody_echoesIdentity(t *testing.T) {
	body, err := renderApplicantBody(sampleApplication())
	require.NoError(t, err)

	assert.Contains(t, body, "홍길동")
	assert.Contains(t, body, "2023123456")
	assert.Contains(t, body, "hong@cbnu.ac.kr")
}

func TestRenderAdminBody_containsDigestFields(t *testing.T) {
	body, err := renderAdminBody(sampleApplication())
	require.NoError(t, err)

	assert.Contains(t, body, "홍길동")
	assert.Contains(t, body, "경영학부")
	assert.Contains(t, body, "010-1234-5678", "phone is displayed formatted")
	assert.Contains(t, body, "반도체, 이차전지")
	assert.Contains(t, body, "지원서.pdf")
	assert.Contains(t, body, "파일 다운로드")
}

func TestRenderBodies_escapeApplicantMarkup(t *testing.T) {
	app := sampleApplication()
	app.Name = `<script>alert("x")</script>`
	app.Motivation = `<img src=x onerror=alert(1)>`

	applicant, err := renderApplicantBody(app)
	require.NoError(t, err)
	assert.NotContains(t, applicant, "<script>")
	assert.Contains(t, applicant, "&lt;script&gt;")

	admin, err := renderAdminBody(app)
	require.NoError(t, err)
	assert.NotContains(t, admin, "<script>")
	assert.NotContains(t, admin, "<img")
	assert.Contains(t, admin, "&lt;img")
}

func TestRenderAdminBody_omitsAttachmentBlockWithoutFile(t *testing.T) {
	app := sampleApplication()
	app.FileName = nil
	app.FileURL = nil

	body, err := renderAdminBody(app)
	require.NoError(t, err)
	assert.NotContains(t, body, "첨부파일")
	assert.NotContains(t, body, "파일 다운로드")
}

func TestNew_unconfiguredIsNil(t *testing.T) {
	assert.Nil(t, New("", "club@example.com", nil))
	assert.NotNil(t, New("re_123", "club@example.com", nil))
}

func TestNotify_nilMailerNoops(t *testing.T) {
	var m *Mailer
	assert.NotPanics(t, func() { m.Notify(sampleApplication()) })
}
