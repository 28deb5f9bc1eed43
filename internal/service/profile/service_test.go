package profile_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	"github.com/xinyujieHong/CSEN174-Project/internal/cache"
	"github.com/xinyujieHong/CSEN174-Project/internal/config"
	"github.com/xinyujieHong/CSEN174-Project/internal/db"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/service/profile"
)

func setupService(t *testing.T) *profile.Service {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbase.AutoMigrate(&db.User{}, &db.Profile{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return profile.NewService(app.New(cfg, dbase, redisCache, logger))
}

func validInput() profile.SaveInput {
	return profile.SaveInput{
		Name:           "Alice",
		College:        "Santa Clara University",
		Major:          "Computer Science",
		GraduationYear: time.Now().Year() + 1,
	}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	saved, err := svc.Save(ctx, "u1", validInput())
	require.NoError(t, err)
	assert.Equal(t, "Santa Clara University", saved.College)

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", got.Major)
	assert.False(t, got.HasCar)
}

func TestSaveOverwritesInPlace(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.Save(ctx, "u1", validInput())
	require.NoError(t, err)

	in := validInput()
	in.Major = "Mathematics"
	in.Bio = "Transferred majors"
	_, err = svc.Save(ctx, "u1", in)
	require.NoError(t, err)

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", got.Major)
	assert.Equal(t, "Transferred majors", got.Bio)
}

func TestSaveRequiresBaseFields(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	in := validInput()
	in.College = ""
	_, err := svc.Save(ctx, "u1", in)
	status, _ := svcErr.Status(err)
	assert.Equal(t, 400, status)

	in = validInput()
	in.GraduationYear = time.Now().Year() - 1
	_, err = svc.Save(ctx, "u1", in)
	status, _ = svcErr.Status(err)
	assert.Equal(t, 400, status)
}

func TestSaveRequiresCarDetailsWhenHasCar(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	in := validInput()
	in.HasCar = true
	_, err := svc.Save(ctx, "u1", in)
	status, _ := svcErr.Status(err)
	assert.Equal(t, 400, status)

	in.CarModel = "Honda Civic"
	in.CarCapacity = 4
	in.CarLicense = "7ABC123"
	saved, err := svc.Save(ctx, "u1", in)
	require.NoError(t, err)
	assert.True(t, saved.HasCar)
	assert.Equal(t, 4, saved.CarCapacity)
}

func TestSaveRejectsBadPhone(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	in := validInput()
	in.PhoneNumber = "12345"
	_, err := svc.Save(ctx, "u1", in)
	status, _ := svcErr.Status(err)
	assert.Equal(t, 400, status)

	// Empty phone is fine; the field is optional.
	in.PhoneNumber = ""
	_, err = svc.Save(ctx, "u1", in)
	assert.NoError(t, err)
}

func TestGetMissingProfile(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.Get(ctx, "nobody")
	status, _ := svcErr.Status(err)
	assert.Equal(t, 404, status)
}
