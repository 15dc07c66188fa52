package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/pollmap/cbnugeumeundong/internal/model"
)

var testDB *Service

func TestMain(m *testing.M) {
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()
	assert.Equal(t, "up", stats["status"])
}

func TestInsertApplication_fillsServerAssignedFields(t *testing.T) {
	app := model.Application{
		Name:      "박지성",
		StudentID: "2025111222",
		Phone:     "01055556666",
		Email:     "park@cbnu.ac.kr",
	}

	require.NoError(t, testDB.InsertApplication(context.Background(), &app))
	assert.NotZero(t, app.ID)
	assert.False(t, app.CreatedAt.IsZero())
}

func TestInsertApplication_duplicatesPersistAsSeparateRows(t *testing.T) {
	// Current behavior: no uniqueness on (name, student_id). Two identical
	// submissions must both succeed and land as two rows.
	app1 := model.Application{Name: "중복지원", StudentID: "2020111111", Phone: "01011112222", Email: "dup@cbnu.ac.kr"}
	app2 := model.Application{Name: "중복지원", StudentID: "2020111111", Phone: "01011112222", Email: "dup@cbnu.ac.kr"}

	require.NoError(t, testDB.InsertApplication(context.Background(), &app1))
	require.NoError(t, testDB.InsertApplication(context.Background(), &app2))

	var count int64
	require.NoError(t, testDB.Model(&model.Application{}).
		Where("name = ? AND student_id = ?", "중복지원", "2020111111").
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
	assert.NotEqual(t, app1.ID, app2.ID)
}

func TestLatestApplicationByIdentity_newestWins(t *testing.T) {
	app, err := testDB.LatestApplicationByIdentity(context.Background(), "홍길동", "", "01012345678")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, TestApplicationNewer.Motivation, app.Motivation)
}

func TestLatestApplicationByIdentity_studentIDSuffix(t *testing.T) {
	app, err := testDB.LatestApplicationByIdentity(context.Background(), "홍길동", "3456", "01012345678")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "2023123456", app.StudentID)

	app, err = testDB.LatestApplicationByIdentity(context.Background(), "홍길동", "9999", "01012345678")
	require.NoError(t, err)
	assert.Nil(t, app, "non-matching fragment excludes the rows")
}

func TestLatestApplicationByIdentity_notFoundIsNilNil(t *testing.T) {
	app, err := testDB.LatestApplicationByIdentity(context.Background(), "없는사람", "", "01000000000")
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestFromEnv_unconfigured(t *testing.T) {
	// package-level vars were read at init; with a clean environment the
	// constructor must report ErrNotConfigured rather than dialing anything
	cfg := &DBConfig{}
	_, err := cfg.getDsn()
	assert.ErrorIs(t, err, ErrNotConfigured)
}
