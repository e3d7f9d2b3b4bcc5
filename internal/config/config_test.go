package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[database]
host = "localhost"
dbname = "barbershop"

[auth_service]
url = "http://auth:8080"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30*time.Minute, cfg.Drafts.TTL.Duration)
	assert.Equal(t, 30*time.Second, cfg.Drafts.SubmitLatchTTL.Duration)
	assert.Equal(t, "appointments", cfg.Kafka.Topic)
	assert.Equal(t, "09:00", cfg.Schedule.OpenTime)
	assert.Equal(t, "19:00", cfg.Schedule.CloseTime)
	assert.Equal(t, 30, cfg.Schedule.SlotStepMinutes)
	assert.False(t, cfg.Booking.StrictTransitions)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.IdleTTL.Duration)
	assert.Equal(t, time.Minute, cfg.RateLimit.SweepInterval.Duration)
	assert.Empty(t, cfg.RateLimit.TrustedProxies)
}

func TestParse_FullConfig(t *testing.T) {
	data := `
[server]
http_port = 9000

[database]
host = "db"
port = 6432
user = "app"
password = "secret"
dbname = "barbershop"
sslmode = "require"

[auth_service]
url = "http://auth:8080"
timeout = 2

[redis]
enabled = true
address = "redis:6379"

[drafts]
ttl = "15m"
submit_latch_ttl = "10s"

[kafka]
enabled = true
brokers = ["kafka:9092"]
topic = "barbershop.appointments"
write_timeout = "3s"

[booking]
strict_transitions = true

[schedule]
open_time = "08:30"
close_time = "18:00"
slot_step_minutes = 15
min_notice_minutes = 60

[rate_limit]
enabled = true
rps = 2
burst = 4
trusted_proxies = ["10.0.0.1"]
idle_ttl = "5m"
`
	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db port=6432 user=app password=secret dbname=barbershop sslmode=require", cfg.Database.DSN())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Drafts.TTL.Duration)
	assert.Equal(t, 10*time.Second, cfg.Drafts.SubmitLatchTTL.Duration)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Kafka.WriteTimeout.Duration)
	assert.True(t, cfg.Booking.StrictTransitions)
	assert.Equal(t, 15, cfg.Schedule.SlotStepMinutes)
	assert.Equal(t, 60, cfg.Schedule.MinNoticeMinutes)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.RateLimit.TrustedProxies)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.IdleTTL.Duration)
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("BOOKING_DB_PASSWORD", "from-env")

	cfg, err := Parse([]byte(minimalConfig + "\n" + `
[redis]
password = "${BOOKING_DB_PASSWORD}"
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Redis.Password)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing database host",
			data: "[database]\ndbname = \"x\"\n[auth_service]\nurl = \"http://a\"\n",
		},
		{
			name: "missing auth url",
			data: "[database]\nhost = \"db\"\ndbname = \"x\"\n",
		},
		{
			name: "redis without address",
			data: minimalConfig + "\n[redis]\nenabled = true\n",
		},
		{
			name: "kafka without brokers",
			data: minimalConfig + "\n[kafka]\nenabled = true\n",
		},
		{
			name: "open after close",
			data: minimalConfig + "\n[schedule]\nopen_time = \"20:00\"\nclose_time = \"09:00\"\n",
		},
		{
			name: "bad duration",
			data: minimalConfig + "\n[drafts]\nttl = \"soon\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad_WithoutEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "barbershop", cfg.Database.DBName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
