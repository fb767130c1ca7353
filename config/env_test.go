package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.Set("CORS_ORIGINS", "https://anshapparels.com, http://localhost:3000")
	v.Set("ADMIN_EMAILS", "Owner@AnshApparels.com,,ops@anshapparels.com")
	v.Set("DATABASE_URL", "postgres://localhost:5432")
	v.Set("DB_NAME", "ansh")
	return v
}

func TestFromViperParsesLists(t *testing.T) {
	cfg, err := fromViper(baseViper())
	require.NoError(t, err)

	assert.Equal(t, []string{"https://anshapparels.com", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"owner@anshapparels.com", "ops@anshapparels.com"}, cfg.AdminEmails)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadSize)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestFromViperRequiresVariables(t *testing.T) {
	for _, key := range []string{"CORS_ORIGINS", "ADMIN_EMAILS", "DATABASE_URL", "DB_NAME"} {
		v := baseViper()
		v.Set(key, "  ")

		_, err := fromViper(v)
		require.Error(t, err, key)
		assert.Equal(t, "missing environment variable: "+key, err.Error())
	}
}

func TestFromViperOptionalValues(t *testing.T) {
	v := baseViper()
	v.Set("APP_ENV", "production")
	v.Set("DB_MAX_CONNS", 25)
	v.Set("SMTP_HOST", "smtp.example.com")
	v.Set("SMTP_USER", "bot")
	v.Set("SMTP_PASS", "secret")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.True(t, cfg.SMTP.Enabled())
	assert.Empty(t, cfg.JWTSecret)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList(" a, b,,c ,"))
	assert.Equal(t, []string{}, SplitList(""))
}
