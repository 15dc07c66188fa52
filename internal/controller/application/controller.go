// Package application provides HTTP handlers for the apply endpoints:
// submitting a recruitment application and checking its status.
package application

import (
	"context"
	"io"

	"github.com/pollmap/cbnugeumeundong/internal/config"
	"github.com/pollmap/cbnugeumeundong/internal/model"
)

// Store persists and looks up application rows.
type Store interface {
	InsertApplication(ctx context.Context, app *model.Application) error
	LatestApplicationByIdentity(ctx context.Context, name, studentID, phoneDigits string) (*model.Application, error)
}

// Uploader pushes attachments to object storage and derives their public
// retrieval URLs.
type Uploader interface {
	Upload(ctx context.Context, objectName string, data io.Reader) error
	PublicURL(objectName string) string
}

// Notifier dispatches post-submission emails. Implementations must return
// without waiting for delivery.
type Notifier interface {
	Notify(app model.Application)
}

// Controller handles application related endpoints. Nil Store, Storage or
// Mailer mean the respective backend is not configured: a nil Store turns
// submissions into configuration errors, nil Storage and Mailer degrade
// silently.
type Controller struct {
	Store   Store
	Storage Uploader
	Mailer  Notifier
	Policy  config.Policy
}

// NewController creates a new instance of Controller.
func NewController(store Store, uploader Uploader, notifier Notifier, pol config.Policy) *Controller {
	return &Controller{
		Store:   store,
		Storage: uploader,
		Mailer:  notifier,
		Policy:  pol,
	}
}

// User-facing messages shared by the handlers.
const (
	msgSubmitted    = "지원서가 성공적으로 제출되었습니다."
	msgServerConfig = "서버 설정 오류입니다."
	msgServerError  = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgQueryError   = "조회 중 오류가 발생했습니다."
	msgBadPayload    = "요청 형식이 올바르지 않습니다."
	msgCheckRequired = "이름과 연락처를 모두 입력해주세요."
)
