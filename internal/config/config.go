package config

import (
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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Ebay          Ebay          `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	SoldItemsSync SoldItemsSync `mapstructure:",squash"`
	Insights      Insights      `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Ebay struct {
	TradingURL         string        `mapstructure:"ebay_trading_url"`
	FinancesURL        string        `mapstructure:"ebay_finances_url"`
	IdentityURL        string        `mapstructure:"ebay_identity_url"`
	AppID              string        `mapstructure:"ebay_app_id"`
	DevID              string        `mapstructure:"ebay_dev_id"`
	CertID             string        `mapstructure:"ebay_cert_id"`
	RefreshToken       string        `mapstructure:"ebay_refresh_token"`
	Scopes             []string      `mapstructure:"ebay_scopes"`
	SiteID             string        `mapstructure:"ebay_site_id"`
	CompatibilityLevel string        `mapstructure:"ebay_compatibility_level"`
	RequestsPerSecond  float64       `mapstructure:"ebay_requests_per_second"`
	Timeout            time.Duration `mapstructure:"ebay_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type SoldItemsSync struct {
	CronSchedule string `mapstructure:"sold_items_sync_cron"`
	LookbackDays int    `mapstructure:"sold_items_sync_lookback_days"`
	PageSize     int    `mapstructure:"sold_items_sync_page_size"`
	Enabled      bool   `mapstructure:"sold_items_sync_enabled"`
}

type Insights struct {
	DefaultRangeDays int `mapstructure:"insights_default_range_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/resale?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("EBAY_TRADING_URL", "https://api.ebay.com/ws/api.dll")
	viper.SetDefault("EBAY_FINANCES_URL", "https://apiz.ebay.com/sell/finances/v1")
	viper.SetDefault("EBAY_IDENTITY_URL", "https://api.ebay.com/identity/v1/oauth2/token")
	viper.SetDefault("EBAY_APP_ID", "")
	viper.SetDefault("EBAY_DEV_ID", "")
	viper.SetDefault("EBAY_CERT_ID", "")
	viper.SetDefault("EBAY_REFRESH_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("EBAY_SCOPES", "https://api.ebay.com/oauth/api_scope,https://api.ebay.com/oauth/api_scope/sell.finances")
	viper.SetDefault("EBAY_SITE_ID", "0")
	viper.SetDefault("EBAY_COMPATIBILITY_LEVEL", "967")
	viper.SetDefault("EBAY_REQUESTS_PER_SECOND", 2)
	viper.SetDefault("EBAY_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("SOLD_ITEMS_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("SOLD_ITEMS_SYNC_LOOKBACK_DAYS", 30)   // Máximo aceito pela Trading API é 60
	viper.SetDefault("SOLD_ITEMS_SYNC_PAGE_SIZE", 200)
	viper.SetDefault("SOLD_ITEMS_SYNC_ENABLED", false)

	viper.SetDefault("INSIGHTS_DEFAULT_RANGE_DAYS", 30)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

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

	if config.SoldItemsSync.LookbackDays > 60 {
		logrus.Warnf("SOLD_ITEMS_SYNC_LOOKBACK_DAYS=%d acima do limite da Trading API, usando 60", config.SoldItemsSync.LookbackDays)
		config.SoldItemsSync.LookbackDays = 60
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
