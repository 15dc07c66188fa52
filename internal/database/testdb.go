package database

import (
	"context"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/pollmap/cbnugeumeundong/internal/model"
)

var testDBInstance *Service
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Seeded applications, exported for tests in other packages.
var (
	TestApplicationOld   m.Application
	TestApplicationNewer m.Application
	TestApplicationOther m.Application
)

// GetTestDB starts a PostgreSQL test container, migrates and seeds it, and
// returns a teardown function, the service, and any setup error.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *Service, error) {
	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	service, err := New(&DBConfig{
		Host:     dbHost,
		Port:     dbPort.Port(),
		User:     dbUser,
		Password: dbPwd,
		DBName:   dbName,
	})
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedApplications(service); err != nil {
		return dbContainer.Terminate, nil, err
	}

	testDBInstance = service
	teardown = dbContainer.Terminate
	return teardown, testDBInstance, nil
}

// seedApplications inserts two rows for the same identity with distinct
// timestamps, plus one unrelated row. CreatedAt is set explicitly so the
// "newest wins" ordering is deterministic.
func seedApplications(s *Service) error {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	TestApplicationOld = m.Application{
		CreatedAt:  base,
		Name:       "홍길동",
		StudentID:  "2023123456",
		Department: "경영학부",
		Grade:      "2학년",
		Phone:      "01012345678",
		Email:      "hong@cbnu.ac.kr",
		CanCommit:  "예",
		IsEnrolled: "예, 재학 중입니다",
		Experience: "없음",
		Motivation: "첫 번째 제출",
	}
	TestApplicationNewer = m.Application{
		CreatedAt:  base.Add(30 * time.Minute),
		Name:       "홍길동",
		StudentID:  "2023123456",
		Department: "경영학부",
		Grade:      "2학년",
		Phone:      "01012345678",
		Email:      "hong@cbnu.ac.kr",
		CanCommit:  "예",
		IsEnrolled: "예, 재학 중입니다",
		Experience: "없음",
		Motivation: "수정해서 다시 낸 제출",
	}
	TestApplicationOther = m.Application{
		CreatedAt:  base.Add(time.Hour),
		Name:       "김영희",
		StudentID:  "2024987654",
		Department: "전자공학부",
		Grade:      "1학년",
		Phone:      "01087654321",
		Email:      "kim@cbnu.ac.kr",
		CanCommit:  "예",
		IsEnrolled: "예, 재학 중입니다",
		Experience: "1~3년",
		Motivation: "다른 지원자",
	}

	for _, app := range []*m.Application{&TestApplicationOld, &TestApplicationNewer, &TestApplicationOther} {
		if err := s.Create(app).Error; err != nil {
			return err
		}
	}
	return nil
}
