package configs

// Config holds all configuration for the application.
type Config struct {
	CRM    CRMConfig    `mapstructure:"crm" validate:"required"`
	Sheets SheetsConfig `mapstructure:"sheets" validate:"required"`
	Store  StoreConfig  `mapstructure:"store" validate:"required"`
	Report ReportConfig `mapstructure:"report" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
}

// CRMConfig holds CRM vendor API configuration.
//
// Either long_live_token is set (static bearer auth) or the oauth fields are
// set (client_id, client_secret, redirect_uri, auth_code, token_dir). The
// token source decides which mode applies at startup.
type CRMConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	LongLiveToken string `mapstructure:"long_live_token"`
	ClientID      string `mapstructure:"client_id"`
	ClientSecret  string `mapstructure:"client_secret"`
	RedirectURI   string `mapstructure:"redirect_uri"`
	AuthCode      string `mapstructure:"auth_code"`
	TokenDir      string `mapstructure:"token_dir"`
}

// SheetsConfig holds Google Sheets output configuration.
type SheetsConfig struct {
	SpreadsheetID      string `mapstructure:"spreadsheet_id" validate:"required"`
	ServiceAccountPath string `mapstructure:"service_account_path" validate:"required"`
}

// StoreConfig holds local latency store configuration.
type StoreConfig struct {
	SQLitePath string `mapstructure:"sqlite_path" validate:"required"`
}

// ReportConfig holds report shaping configuration.
type ReportConfig struct {
	TopEventsLimit int    `mapstructure:"top_events_limit" validate:"required,min=1"`
	Timezone       string `mapstructure:"timezone" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}
