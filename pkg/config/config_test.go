package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 10, cfg.Trivia.PageSize)
	assert.Equal(t, StorePostgres, cfg.Trivia.Store)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.False(t, cfg.JWT.Enabled())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("TRIVIA_STORE", "Memory")
	v.Set("TRIVIA_PAGE_SIZE", "5")
	v.Set("HTTP_PORT", 8080)
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Trivia.Store)
	assert.Equal(t, 5, cfg.Trivia.PageSize)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.JWT.Enabled())
}

func TestFromViper_StoreInvalido(t *testing.T) {
	v := viper.New()
	v.Set("TRIVIA_STORE", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_PageSizeInvalido(t *testing.T) {
	v := viper.New()
	v.Set("TRIVIA_PAGE_SIZE", "0")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "trivia", Password: "p@ss:word", DBName: "trivia", SSLMode: "disable"}
	assert.Equal(t, "postgres://trivia:p%40ss%3Aword@db:5432/trivia?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@h/x"
	assert.Equal(t, "postgres://u:p@h/x", c.ConnectionString())
}
