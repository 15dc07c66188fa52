package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 500, cfg.Policy.MotivationMinChars)
	assert.Equal(t, int64(10<<20), cfg.Policy.MaxUploadBytes)
	assert.Equal(t, 0, cfg.Policy.StudentIDExactLength)
	assert.True(t, cfg.Policy.RequireEnrollment)
	assert.False(t, cfg.Policy.RequireAttachment)
}

func TestLoad_policyOverrides(t *testing.T) {
	t.Setenv("STUDENT_ID_EXACT_LENGTH", "10")
	t.Setenv("REQUIRE_ENROLLMENT", "false")
	t.Setenv("REQUIRE_ATTACHMENT", "true")
	t.Setenv("MOTIVATION_MIN_CHARS", "300")
	t.Setenv("MAX_UPLOAD_BYTES", "5242880")

	cfg := Load()

	assert.Equal(t, 10, cfg.Policy.StudentIDExactLength)
	assert.False(t, cfg.Policy.RequireEnrollment)
	assert.True(t, cfg.Policy.RequireAttachment)
	assert.Equal(t, 300, cfg.Policy.MotivationMinChars)
	assert.Equal(t, int64(5<<20), cfg.Policy.MaxUploadBytes)
}

func TestLoad_adminEmailList(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "lead@club.example, ops@club.example ,")

	cfg := Load()

	assert.Equal(t, []string{"lead@club.example", "ops@club.example"}, cfg.AdminEmails)
}

func TestLoad_emptyAdminEmailsIsNil(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " ")

	cfg := Load()

	assert.Nil(t, cfg.AdminEmails)
}
