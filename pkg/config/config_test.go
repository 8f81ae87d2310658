package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sales-service", cfg.App.Name)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "salesdb", cfg.DB.DBName)
	assert.Equal(t, "UTC", cfg.Ledger.Timezone)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("LEDGER_TIMEZONE", "America/New_York")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())

	loc, err := cfg.Ledger.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoadRejectsInvalidTimezone(t *testing.T) {
	t.Setenv("LEDGER_TIMEZONE", "Not/AZone")

	_, err := Load()
	assert.Error(t, err)
}
