package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application settings (read through Viper from env and, optionally, a file).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Branding BrandingConfig
	Output   OutputConfig
}

// AppConfig general settings.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// HTTPConfig operator console listener. Loopback by default.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig logger level.
type LogConfig struct {
	Level string
}

// BrandingConfig is everything printed on the invoice that is not booking data.
type BrandingConfig struct {
	CompanyName    string
	Tagline        string
	Badge          string
	AddressLine    string
	ContactLine    string
	ThankYouLine   string
	BankName       string
	UPIHandle      string
	CurrencySymbol string
	Locale         string
	TaxRateLabel   string
	PrimaryColor   [3]int
	AccentColor    [3]int
	FontFamily     string
	FontSize       float64
	PageSize       string
}

// OutputConfig where exports and print jobs go.
type OutputConfig struct {
	ExportDir string
	SpoolDir  string
}

// Load reads configuration from environment variables (and optionally from a file).
// Env vars win. Expected names: APP_ENV, HTTP_PORT, BRANDING_COMPANY_NAME, OUTPUT_EXPORT_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	primary, err := getRGB(v, "BRANDING_PRIMARY_COLOR", [3]int{69, 130, 181})
	if err != nil {
		return nil, err
	}
	accent, err := getRGB(v, "BRANDING_ACCENT_COLOR", [3]int{252, 166, 0})
	if err != nil {
		return nil, err
	}
	fontSize, err := getFloat(v, "BRANDING_FONT_SIZE", 9)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tour-invoice-desk"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Branding: BrandingConfig{
			CompanyName:    getString(v, "BRANDING_COMPANY_NAME", "Ridhi Sidhi Tours & Travels"),
			Tagline:        getString(v, "BRANDING_TAGLINE", "Your Journey, Our Responsibility"),
			Badge:          getString(v, "BRANDING_BADGE", "TRAVEL AGENCY"),
			AddressLine:    getString(v, "BRANDING_ADDRESS_LINE", "123 Travel Street, Tourism City - 400001"),
			ContactLine:    getString(v, "BRANDING_CONTACT_LINE", "Contact: +91-1234567890 | Email: info@ridhisidhitours.com"),
			ThankYouLine:   getString(v, "BRANDING_THANK_YOU_LINE", "Thank you for choosing Ridhi Sidhi Tours & Travels!"),
			BankName:       getString(v, "BRANDING_BANK_NAME", "XYZ Bank"),
			UPIHandle:      getString(v, "BRANDING_UPI_HANDLE", ""),
			CurrencySymbol: getString(v, "BRANDING_CURRENCY_SYMBOL", "Rs."),
			Locale:         getString(v, "BRANDING_LOCALE", "en-IN"),
			TaxRateLabel:   getString(v, "BRANDING_TAX_RATE_LABEL", "0%"),
			PrimaryColor:   primary,
			AccentColor:    accent,
			FontFamily:     getString(v, "BRANDING_FONT_FAMILY", "helvetica"),
			FontSize:       fontSize,
			PageSize:       getString(v, "BRANDING_PAGE_SIZE", "a4"),
		},
		Output: OutputConfig{
			ExportDir: getString(v, "OUTPUT_EXPORT_DIR", "./invoices"),
			SpoolDir:  getString(v, "OUTPUT_SPOOL_DIR", "./spool"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT out of range: %d", cfg.HTTP.Port)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) (float64, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

// getRGB reads "r,g,b" with each component in 0..255.
func getRGB(v *viper.Viper, key string, def [3]int) ([3]int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := v.GetString(key)
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return def, fmt.Errorf("config: %s: want r,g,b, got %q", key, raw)
	}
	var out [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return def, fmt.Errorf("config: %s: bad component %q", key, p)
		}
		out[i] = n
	}
	return out, nil
}
