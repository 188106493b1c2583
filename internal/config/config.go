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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Logging        Logging        `mapstructure:",squash"`
	Storage        Storage        `mapstructure:",squash"`
	Upload         Upload         `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	RetentionSweep RetentionSweep `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	S3             S3             `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Logging struct {
	Dir        string `mapstructure:"log_dir"`
	MaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	MaxAgeDays int    `mapstructure:"log_max_age_days"`
	Compress   bool   `mapstructure:"log_compress"`
}

type Storage struct {
	UploadDir string `mapstructure:"upload_dir"`
	ExportDir string `mapstructure:"export_dir"`
}

type Upload struct {
	MaxSizeMB     int64         `mapstructure:"max_upload_mb"`
	MaxConcurrent int64         `mapstructure:"max_concurrent_uploads"`
	ParseTimeout  time.Duration `mapstructure:"parse_timeout"`
}

// MaxBytes é o limite do corpo da requisição de upload em bytes
func (u Upload) MaxBytes() int64 {
	return u.MaxSizeMB << 20
}

type Report struct {
	TopProducts int `mapstructure:"report_top_products"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type RetentionSweep struct {
	CronSchedule string `mapstructure:"retention_sweep_cron"`
	Enabled      bool   `mapstructure:"retention_sweep_enabled"`
	Days         int    `mapstructure:"retention_days"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type S3 struct {
	Enabled      bool   `mapstructure:"s3_enabled"`
	Endpoint     string `mapstructure:"s3_endpoint"`
	Region       string `mapstructure:"s3_region"`
	Bucket       string `mapstructure:"s3_bucket"`
	AccessKey    string `mapstructure:"s3_access_key"`
	SecretKey    string `mapstructure:"s3_secret_key"`
	UsePathStyle bool   `mapstructure:"s3_use_path_style"`
	Prefix       string `mapstructure:"s3_prefix"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("LOG_DIR", "logs")
	viper.SetDefault("LOG_MAX_SIZE_MB", 10)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 30)
	viper.SetDefault("LOG_COMPRESS", true)

	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("EXPORT_DIR", "exports")

	viper.SetDefault("MAX_UPLOAD_MB", 50)
	viper.SetDefault("MAX_CONCURRENT_UPLOADS", 2)
	viper.SetDefault("PARSE_TIMEOUT", "60s")

	viper.SetDefault("REPORT_TOP_PRODUCTS", 20)

	viper.SetDefault("DATABASE_DRIVER", "sqlite3") // sqlite3, postgres ou none
	viper.SetDefault("DATABASE_URL", "data/hanami.db")
	viper.SetDefault("DATABASE_USER", "")
	viper.SetDefault("DATABASE_PASSWORD", "")

	// Limpeza de arquivos enviados e relatórios exportados
	viper.SetDefault("RETENTION_SWEEP_ENABLED", false)
	viper.SetDefault("RETENTION_SWEEP_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("RETENTION_DAYS", 30)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("S3_ENABLED", false)
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_USE_PATH_STYLE", true)
	viper.SetDefault("S3_PREFIX", "exports/")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

// buildDSN monta a string de conexão. Para sqlite3 a URL já é o caminho do arquivo.
func buildDSN(db Database) string {
	switch db.Driver {
	case "postgres":
		return fmt.Sprintf("postgres://%s:%s@%s", db.User, db.Password, db.URL)
	default:
		return db.URL
	}
}

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

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
