package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("DATABASE_USER", "reseller")
	t.Setenv("DATABASE_PASSWORD", "s3cret")
	t.Setenv("DATABASE_URL", "db:5432/resale")
	t.Setenv("EBAY_SCOPES", "scope.a,scope.b")
	t.Setenv("EBAY_TIMEOUT", "5s")
	t.Setenv("SOLD_ITEMS_SYNC_LOOKBACK_DAYS", "90")
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://reseller:s3cret@db:5432/resale", cfg.Database.DSN)
	assert.Equal(t, []string{"scope.a", "scope.b"}, cfg.Ebay.Scopes)
	assert.Equal(t, 5*time.Second, cfg.Ebay.Timeout)
	assert.Equal(t, 60, cfg.SoldItemsSync.LookbackDays)
	assert.Equal(t, 30, cfg.Insights.DefaultRangeDays)
	assert.Equal(t, "967", cfg.Ebay.CompatibilityLevel)
}
