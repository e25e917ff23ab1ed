package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/config"
	"github.com/dmitrymomot/notifykit/pkg/environment"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
	"github.com/dmitrymomot/notifykit/pkg/roster"
)

func defaultConfig() config.Config {
	return config.Config{
		Env:     environment.Development,
		Service: "notifydemo",
		Channel: "email",
		Message: config.DefaultMessage,
	}
}

// runWith builds the logger the same way main does and runs the broadcast.
func runWith(t *testing.T, cfg config.Config) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = run(context.Background(), cfg, newLogger(cfg, stderr), stdout)
	return stdout, stderr, err
}

func TestRun_DefaultRoster(t *testing.T) {
	stdout, stderr, err := runWith(t, defaultConfig())
	require.NoError(t, err)

	assert.Equal(t,
		"Enviando EMAIL a Emily (emily@gmail.com): Nueva actualización disponible en la app\n"+
			"Enviando EMAIL a Carlos (carlos@gmail.com): Nueva actualización disponible en la app\n",
		stdout.String(),
	)
	assert.Contains(t, stderr.String(), "notifying subscribers")
	assert.Contains(t, stderr.String(), "broadcast_id=")
}

func TestRun_SwitchChannel(t *testing.T) {
	cfg := defaultConfig()
	cfg.Channel = "push"

	stdout, _, err := runWith(t, cfg)
	require.NoError(t, err)
	assert.Equal(t,
		"Enviando PUSH a Emily: Nueva actualización disponible en la app\n"+
			"Enviando PUSH a Carlos: Nueva actualización disponible en la app\n",
		stdout.String(),
	)
}

func TestRun_UnknownChannel(t *testing.T) {
	cfg := defaultConfig()
	cfg.Channel = "whatsapp"

	stdout, _, err := runWith(t, cfg)
	require.ErrorIs(t, err, notifications.ErrUnknownChannelKind)
	assert.Empty(t, stdout.String())
}

func TestRun_RosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := "subscribers:\n" +
		"  - name: Bob\n    phone: \"+5215550002222\"\n    channel: sms\n" +
		"  - name: Diego\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := defaultConfig()
	cfg.Channel = "push"
	cfg.Message = "Prueba"
	cfg.RosterPath = path
	cfg.Env = environment.Production

	stdout, stderr, err := runWith(t, cfg)
	require.NoError(t, err)
	assert.Equal(t,
		"Enviando SMS a Bob (+5215550002222): Prueba\n"+
			"Enviando PUSH a Diego: Prueba\n",
		stdout.String(),
	)
	assert.Contains(t, stderr.String(), `"env":"production"`)
}

func TestRun_MissingRosterFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.RosterPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, _, err := runWith(t, cfg)
	require.ErrorIs(t, err, roster.ErrReadRoster)
}

func TestNewLogger_Overrides(t *testing.T) {
	tests := []struct {
		name   string
		format string
	}{
		{name: "lowercase json", format: "json"},
		{name: "uppercase json", format: "JSON"},
		{name: "mixed case json", format: "Json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"NOTIFY_ENV", "NOTIFY_MESSAGE", "NOTIFY_CHANNEL", "NOTIFY_ROSTER"} {
				t.Setenv(k, "")
			}
			t.Setenv("NOTIFY_LOG_LEVEL", "error")
			t.Setenv("NOTIFY_LOG_FORMAT", tt.format)

			cfg, err := config.Load()
			require.NoError(t, err)

			var buf bytes.Buffer
			var log *slog.Logger
			require.NotPanics(t, func() {
				log = newLogger(cfg, &buf)
			})
			log.Info("hidden")
			assert.Empty(t, buf.String())

			log.Error("shown")
			assert.Contains(t, buf.String(), `"msg":"shown"`)
		})
	}
}

func TestNewLogger_UnnormalizedFormat(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogFormat = " Text "

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		newLogger(cfg, &buf).Info("hello")
	})
	assert.Contains(t, buf.String(), "msg=hello")
}
