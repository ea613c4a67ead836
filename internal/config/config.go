package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App         `mapstructure:",squash"`
	Server        Server      `mapstructure:",squash"`
	Database      Database    `mapstructure:",squash"`
	Auth          Auth        `mapstructure:",squash"`
	Meta          Meta        `mapstructure:",squash"`
	Client        Client      `mapstructure:",squash"`
	Cors          Cors        `mapstructure:",squash"`
	RateLimit     RateLimit   `mapstructure:",squash"`
	Campaigns     Campaigns   `mapstructure:",squash"`
	MetricsSync   MetricsSync `mapstructure:",squash"`
	Cleanup       Cleanup     `mapstructure:",squash"`
	TokenExpiry   TokenExpiry `mapstructure:",squash"`
	StateLedger   StateLedger `mapstructure:",squash"`
	Sentry        Sentry      `mapstructure:",squash"`
	Seed          Seed        `mapstructure:",squash"`
	EncryptionKey string      `mapstructure:"encryption_key"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Meta agrupa as credenciais do app da plataforma e os parâmetros da Graph API
type Meta struct {
	BaseURL     string        `mapstructure:"meta_base_url"`
	Version     string        `mapstructure:"meta_version"`
	URL         string        `mapstructure:"-"`
	DialogURL   string        `mapstructure:"meta_dialog_url"`
	AppID       string        `mapstructure:"meta_app_id"`
	AppSecret   string        `mapstructure:"meta_app_secret"`
	ConfigID    string        `mapstructure:"meta_config_id"`
	RedirectURI string        `mapstructure:"meta_redirect_uri"`
	AppRecordID string        `mapstructure:"meta_app_record_id"`
	Scopes      []string      `mapstructure:"meta_oauth_scopes"`
	Timeout     time.Duration `mapstructure:"meta_timeout"`
	StateWindow time.Duration `mapstructure:"meta_state_window"`
	StateSecret string        `mapstructure:"-"`
}

type Client struct {
	URL string `mapstructure:"client_url"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type RateLimit struct {
	Enabled      bool          `mapstructure:"rate_limit_enabled"`
	AuthRequests int           `mapstructure:"rate_limit_auth_requests"`
	AuthWindow   time.Duration `mapstructure:"rate_limit_auth_window"`
	APIRequests  int           `mapstructure:"rate_limit_api_requests"`
	APIWindow    time.Duration `mapstructure:"rate_limit_api_window"`
	MetaRequests int           `mapstructure:"rate_limit_meta_requests"`
	MetaWindow   time.Duration `mapstructure:"rate_limit_meta_window"`
}

type Campaigns struct {
	BulkMaxConcurrent int `mapstructure:"campaign_bulk_max_concurrent"`
}

type MetricsSync struct {
	CronSchedule      string        `mapstructure:"metrics_sync_cron"`
	Enabled           bool          `mapstructure:"metrics_sync_enabled"`
	MaxConcurrentJobs int           `mapstructure:"metrics_sync_max_concurrent_jobs"`
	BatchSize         int           `mapstructure:"metrics_sync_batch_size"`
	Window            time.Duration `mapstructure:"metrics_sync_window"`
}

type Cleanup struct {
	CronSchedule         string `mapstructure:"cleanup_cron"`
	Enabled              bool   `mapstructure:"cleanup_enabled"`
	MetricsRetentionDays int    `mapstructure:"cleanup_metrics_retention_days"`
	InactiveAccountDays  int    `mapstructure:"cleanup_inactive_account_days"`
}

type TokenExpiry struct {
	CronSchedule string `mapstructure:"token_expiry_cron"`
	Enabled      bool   `mapstructure:"token_expiry_enabled"`
	WarningDays  int    `mapstructure:"token_expiry_warning_days"`
	AutoRefresh  bool   `mapstructure:"token_expiry_auto_refresh"`
}

type StateLedger struct {
	Driver   string `mapstructure:"oauth_state_ledger"`
	RedisURL string `mapstructure:"redis_url"`
}

// Seed alimenta o cmd/migrate: administrador inicial e registro do app da plataforma
type Seed struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
	AdminName     string `mapstructure:"admin_name"`
}

type Sentry struct {
	DSN              string  `mapstructure:"sentry_dsn"`
	TracesSampleRate float64 `mapstructure:"sentry_traces_sample_rate"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/meta_ads?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("ENCRYPTION_KEY", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v23.0")
	viper.SetDefault("META_DIALOG_URL", "https://www.facebook.com/dialog/oauth")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_CONFIG_ID", "")
	viper.SetDefault("META_REDIRECT_URI", "http://localhost:8000/api/facebook/callback")
	viper.SetDefault("META_APP_RECORD_ID", "")
	viper.SetDefault("META_OAUTH_SCOPES", "ads_management,ads_read,pages_show_list,pages_read_engagement,pages_manage_posts,business_management")
	viper.SetDefault("META_TIMEOUT", "30s")
	viper.SetDefault("META_STATE_WINDOW", "5m")

	viper.SetDefault("CLIENT_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_AUTH_REQUESTS", 5)
	viper.SetDefault("RATE_LIMIT_AUTH_WINDOW", "15m")
	viper.SetDefault("RATE_LIMIT_API_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_API_WINDOW", "1h")
	viper.SetDefault("RATE_LIMIT_META_REQUESTS", 200)
	viper.SetDefault("RATE_LIMIT_META_WINDOW", "1h")

	viper.SetDefault("CAMPAIGN_BULK_MAX_CONCURRENT", 5)

	// Sincronização de métricas a cada 30 minutos
	viper.SetDefault("METRICS_SYNC_CRON", "*/30 * * * *")
	viper.SetDefault("METRICS_SYNC_ENABLED", true)
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_JOBS", 5)
	viper.SetDefault("METRICS_SYNC_BATCH_SIZE", 100)
	viper.SetDefault("METRICS_SYNC_WINDOW", "24h")

	// Limpeza diária às 2h da manhã
	viper.SetDefault("CLEANUP_CRON", "0 2 * * *")
	viper.SetDefault("CLEANUP_ENABLED", true)
	viper.SetDefault("CLEANUP_METRICS_RETENTION_DAYS", 90)
	viper.SetDefault("CLEANUP_INACTIVE_ACCOUNT_DAYS", 30)

	// Verificação de tokens a cada hora
	viper.SetDefault("TOKEN_EXPIRY_CRON", "0 * * * *")
	viper.SetDefault("TOKEN_EXPIRY_ENABLED", true)
	viper.SetDefault("TOKEN_EXPIRY_WARNING_DAYS", 7)
	viper.SetDefault("TOKEN_EXPIRY_AUTO_REFRESH", false)

	viper.SetDefault("OAUTH_STATE_LEDGER", "none")
	viper.SetDefault("REDIS_URL", "localhost:6379")

	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("ADMIN_NAME", "Administrador")

	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("SENTRY_TRACES_SAMPLE_RATE", 0.0)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Meta.StateSecret = config.Auth.Secret

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

var ErrEncryptionKeyRequired = errors.New("ENCRYPTION_KEY é obrigatória fora do ambiente de desenvolvimento")

// CipherKey retorna a chave dos tokens criptografados. Só em desenvolvimento cai para AUTH_SECRET,
// sinalizado pelo segundo retorno.
func (c *Config) CipherKey() (string, bool, error) {
	if c.EncryptionKey != "" {
		return c.EncryptionKey, false, nil
	}
	if !c.IsDevelopment() {
		return "", false, ErrEncryptionKeyRequired
	}
	return c.Auth.Secret, true, nil
}

// IsDevelopment indica se a aplicação roda em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || c.App.Env == "development" || c.App.Env == "dev"
}

// loadEnvFile tenta carregar o .env de algumas localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
