package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Ridhi Sidhi Tours & Travels", cfg.Branding.CompanyName)
	assert.Equal(t, "Rs.", cfg.Branding.CurrencySymbol)
	assert.Equal(t, [3]int{69, 130, 181}, cfg.Branding.PrimaryColor)
	assert.Equal(t, 9.0, cfg.Branding.FontSize)
	assert.Equal(t, "a4", cfg.Branding.PageSize)
	assert.Equal(t, "./invoices", cfg.Output.ExportDir)
	assert.Equal(t, "./spool", cfg.Output.SpoolDir)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BRANDING_COMPANY_NAME", "ABC Tours & Travels")
	t.Setenv("BRANDING_PRIMARY_COLOR", "10, 20, 30")
	t.Setenv("BRANDING_FONT_SIZE", "10.5")
	t.Setenv("OUTPUT_SPOOL_DIR", "/var/spool/invoices")

	cfg, err := fromViper(envViper())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "ABC Tours & Travels", cfg.Branding.CompanyName)
	assert.Equal(t, [3]int{10, 20, 30}, cfg.Branding.PrimaryColor)
	assert.Equal(t, 10.5, cfg.Branding.FontSize)
	assert.Equal(t, "/var/spool/invoices", cfg.Output.SpoolDir)
}

func TestFromViper_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"BRANDING_ACCENT_COLOR": "255,0",
		"BRANDING_FONT_SIZE":    "large",
		"HTTP_PORT":             "70000",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := fromViper(envViper())
			assert.Error(t, err)
		})
	}
}

func TestGetRGB_OutOfRange(t *testing.T) {
	t.Setenv("BRANDING_PRIMARY_COLOR", "0,0,256")
	_, err := getRGB(envViper(), "BRANDING_PRIMARY_COLOR", [3]int{})
	assert.Error(t, err)
}
