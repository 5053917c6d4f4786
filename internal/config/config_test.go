package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "JHRIS", cfg.AppName)
	assert.Equal(t, "/api/v1", cfg.APIV1Prefix)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL())
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL())
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.False(t, cfg.DepartmentDeleteGuard)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DEPARTMENT_DELETE_GUARD", "true")
	t.Setenv("BACKEND_CORS_ORIGINS", " http://a.test/ , ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.True(t, cfg.DepartmentDeleteGuard)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		SecretKey:                "s3cret",
		AccessTokenExpireMinutes: 30,
		RefreshTokenExpireDays:   7,
		DBDriver:                 "postgres",
	}
	require.NoError(t, cfg.Validate())

	cfg.DBDriver = "mysql"
	cfg.AccessTokenExpireMinutes = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "ACCESS_TOKEN_EXPIRE_MINUTES")
}
