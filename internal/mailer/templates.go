package mailer

import (
	"html/template"
	"strings"

	"github.com/pollmap/cbnugeumeundong/internal/model"
	"github.com/pollmap/cbnugeumeundong/internal/utilities"
)

// mailView flattens an application for template execution. html/template
// does the escaping; applicant text must only ever reach the bodies through
// these fields.
type mailView struct {
	Name       string
	StudentID  string
	Department string
	Grade      string
	Phone      string
	Email      string
	Experience string
	Motivation string
	DeepDive   string
	Industry1  string
	Industry2  string
	Company1   string
	Company2   string
	FileName   string
	FileURL    string
}

func newMailView(app model.Application) mailView {
	v := mailView{
		Name:       app.Name,
		StudentID:  app.StudentID,
		Department: app.Department,
		Grade:      app.Grade,
		Phone:      utilities.FormatPhone(app.Phone),
		Email:      app.Email,
		Experience: app.Experience,
		Motivation: app.Motivation,
		DeepDive:   app.DeepDive,
		Industry1:  app.Industry1,
		Industry2:  app.Industry2,
		Company1:   app.Company1,
		Company2:   app.Company2,
	}
	if app.FileName != nil {
		v.FileName = *app.FileName
	}
	if app.FileURL != nil {
		v.FileURL = *app.FileURL
	}
	return v
}

const applicantBody = `
<div style="font-family: 'Noto Sans KR', sans-serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <div style="background: #0f1629; border-radius: 12px; padding: 40px; color: #e5e7eb;">
    <h1 style="color: #d4af37; margin-bottom: 20px; font-size: 24px;">금은동에 지원해주셔서 감사합니다!</h1>
    <p style="margin-bottom: 16px; line-height: 1.6;">안녕하세요, <strong style="color: white;">{{.Name}}</strong>님!</p>
    <p style="margin-bottom: 24px; line-height: 1.6;">금은동에 지원해주셔서 진심으로 감사드립니다. 지원서가 정상적으로 접수되었습니다.</p>
    <div style="background: #1a2240; border-radius: 8px; padding: 20px; margin-bottom: 24px;">
      <p style="margin: 0 0 8px; color: #9ca3af; font-size: 14px;">접수 정보</p>
      <p style="margin: 4px 0; color: white;">이름: {{.Name}}</p>
      <p style="margin: 4px 0; color: white;">학번: {{.StudentID}}</p>
      <p style="margin: 4px 0; color: white;">이메일: {{.Email}}</p>
    </div>
    <p style="line-height: 1.6;">서류 심사 후 결과를 개별 연락드리겠습니다.</p>
    <hr style="border: none; border-top: 1px solid #243056; margin: 24px 0;" />
    <p style="color: #6b7280; font-size: 13px;">충북대학교 금융투자 동아리 금은동</p>
  </div>
</div>`

const adminBody = `
<div style="font-family: 'Noto Sans KR', sans-serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <div style="background: #0f1629; border-radius: 12px; padding: 40px; color: #e5e7eb;">
    <h1 style="color: #d4af37; margin-bottom: 20px; font-size: 24px;">새로운 지원서가 접수되었습니다</h1>
    <div style="background: #1a2240; border-radius: 8px; padding: 20px; margin-bottom: 16px;">
      <p style="margin: 4px 0; color: white;"><strong>이름:</strong> {{.Name}}</p>
      <p style="margin: 4px 0; color: white;"><strong>학번:</strong> {{.StudentID}}</p>
      {{if .Department}}<p style="margin: 4px 0; color: white;"><strong>학과:</strong> {{.Department}} {{.Grade}}</p>{{end}}
      <p style="margin: 4px 0; color: white;"><strong>이메일:</strong> {{.Email}}</p>
      <p style="margin: 4px 0; color: white;"><strong>전화번호:</strong> {{.Phone}}</p>
      {{if .Experience}}<p style="margin: 4px 0; color: white;"><strong>투자 경험:</strong> {{.Experience}}</p>{{end}}
      {{if .Industry1}}<p style="margin: 4px 0; color: white;"><strong>관심 산업:</strong> {{.Industry1}}{{if .Industry2}}, {{.Industry2}}{{end}}</p>{{end}}
      {{if .Company1}}<p style="margin: 4px 0; color: white;"><strong>관심 기업:</strong> {{.Company1}}{{if .Company2}}, {{.Company2}}{{end}}</p>{{end}}
      {{if .FileName}}<p style="margin: 4px 0; color: white;"><strong>첨부파일:</strong> {{.FileName}}</p>{{end}}
      {{if .FileURL}}<p style="margin: 4px 0;"><a href="{{.FileURL}}" style="color: #d4af37;">파일 다운로드</a></p>{{end}}
    </div>
    {{if .Motivation}}
    <div style="background: #1a2240; border-radius: 8px; padding: 20px; margin-bottom: 16px;">
      <p style="margin: 0 0 8px; color: #9ca3af; font-size: 14px;">지원 동기</p>
      <p style="margin: 0; color: white; white-space: pre-wrap;">{{.Motivation}}</p>
    </div>
    {{end}}
    {{if .DeepDive}}
    <div style="background: #1a2240; border-radius: 8px; padding: 20px; margin-bottom: 16px;">
      <p style="margin: 0 0 8px; color: #9ca3af; font-size: 14px;">본인이 한 가장 큰 덕질은?</p>
      <p style="margin: 0; color: white; white-space: pre-wrap;">{{.DeepDive}}</p>
    </div>
    {{end}}
    <hr style="border: none; border-top: 1px solid #243056; margin: 24px 0;" />
    <p style="color: #6b7280; font-size: 13px;">금은동 지원 관리 시스템</p>
  </div>
</div>`

var (
	applicantTmpl = template.Must(template.New("applicant").Parse(applicantBody))
	adminTmpl     = template.Must(template.New("admin").Parse(adminBody))
)

func renderApplicantBody(app model.Application) (string, error) {
	var b strings.Builder
	if err := applicantTmpl.Execute(&b, newMailView(app)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderAdminBody(app model.Application) (string, error) {
	var b strings.Builder
	if err := adminTmpl.Execute(&b, newMailView(app)); err != nil {
		return "", err
	}
	return b.String(), nil
}
