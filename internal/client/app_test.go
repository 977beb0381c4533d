package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smscli/internal/config"
	"github.com/MKhiriev/smscli/internal/logger"
	"github.com/MKhiriev/smscli/models"
)

func TestNewApp(t *testing.T) {
	tests := []struct {
		name          string
		notifications bool
	}{
		{name: "notifications disabled", notifications: false},
		{name: "notifications enabled", notifications: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.ClientConfig{
				Session: config.ClientSession{MaxChunkSize: 160},
				UI:      config.ClientUI{MaxViews: 6, MessageWidthPercent: 80, Notifications: tt.notifications},
			}

			app, err := NewApp(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

			require.NoError(t, err)
			assert.NotNil(t, app.session)
			assert.NotNil(t, app.ui)
		})
	}
}

func TestNewApp_BadTheme(t *testing.T) {
	cfg := &config.ClientConfig{
		UI: config.ClientUI{MaxViews: 6, Theme: map[string]string{"nope": "red"}},
	}

	_, err := NewApp(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Error(t, err)
}
