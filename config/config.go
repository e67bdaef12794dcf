package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Storage StorageConfig
	Client  ClientConfig
	Payment PaymentConfig
	Receipt ReceiptConfig
}

type AppConfig struct {
	Port          string
	Env           string
	LogLevel      string
	TimeZone      string
	AllowedOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig selects the backends for booking sessions and for the
// per-client key-value storage that holds receipt identifiers.
type StorageConfig struct {
	SessionDriver       string // redis | memory
	ClientStorageDriver string // redis | postgres | memory
	SessionTTL          time.Duration
	SweepSchedule       string
}

type ClientConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	CookieName  string
}

type PaymentConfig struct {
	CardDelay         time.Duration
	MobileMoneyDelay  time.Duration
	BankTransferDelay time.Duration
	InsuranceDelay    time.Duration
	HospitalDelay     time.Duration
	CompletionDelay   time.Duration
	SuccessRate       float64
}

type ReceiptConfig struct {
	VATRate         float64
	QRBaseURL       string
	HospitalName    string
	HospitalAddress string
	HospitalPhone   string
	TaxPIN          string
}

const (
	DriverRedis    = "redis"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_TIMEZONE", "Africa/Nairobi")
	v.SetDefault("APP_ALLOWED_ORIGIN", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "medicare_plus")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_DRIVER", DriverRedis)
	v.SetDefault("CLIENT_STORAGE_DRIVER", DriverRedis)
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("SESSION_SWEEP_SCHEDULE", "@every 5m")

	v.SetDefault("CLIENT_TOKEN_SECRET", "change-me")
	v.SetDefault("CLIENT_TOKEN_EXPIRY", "8760h")
	v.SetDefault("CLIENT_COOKIE_NAME", "mcp_client")

	v.SetDefault("PAYMENT_CARD_DELAY", "3s")
	v.SetDefault("PAYMENT_MOBILE_MONEY_DELAY", "3s")
	v.SetDefault("PAYMENT_BANK_TRANSFER_DELAY", "2s")
	v.SetDefault("PAYMENT_INSURANCE_DELAY", "2s")
	v.SetDefault("PAYMENT_HOSPITAL_DELAY", "1s")
	v.SetDefault("PAYMENT_COMPLETION_DELAY", "1500ms")
	v.SetDefault("PAYMENT_SUCCESS_RATE", 0.9)

	v.SetDefault("RECEIPT_VAT_RATE", 0.16)
	v.SetDefault("RECEIPT_QR_BASE_URL", "https://api.qrserver.com/v1/create-qr-code/")
	v.SetDefault("RECEIPT_HOSPITAL_NAME", "MediCare Plus Hospital")
	v.SetDefault("RECEIPT_HOSPITAL_ADDRESS", "Upper Hill, Nairobi")
	v.SetDefault("RECEIPT_HOSPITAL_PHONE", "+254 700 000 000")
	v.SetDefault("RECEIPT_TAX_PIN", "P051234567X")
}

// LoadConfig reads the given env file (missing file is fine) and the process
// environment. Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			TimeZone:      v.GetString("APP_TIMEZONE"),
			AllowedOrigin: v.GetString("APP_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Storage: StorageConfig{
			SessionDriver:       v.GetString("SESSION_DRIVER"),
			ClientStorageDriver: v.GetString("CLIENT_STORAGE_DRIVER"),
			SessionTTL:          v.GetDuration("SESSION_TTL"),
			SweepSchedule:       v.GetString("SESSION_SWEEP_SCHEDULE"),
		},
		Client: ClientConfig{
			TokenSecret: v.GetString("CLIENT_TOKEN_SECRET"),
			TokenExpiry: v.GetDuration("CLIENT_TOKEN_EXPIRY"),
			CookieName:  v.GetString("CLIENT_COOKIE_NAME"),
		},
		Payment: PaymentConfig{
			CardDelay:         v.GetDuration("PAYMENT_CARD_DELAY"),
			MobileMoneyDelay:  v.GetDuration("PAYMENT_MOBILE_MONEY_DELAY"),
			BankTransferDelay: v.GetDuration("PAYMENT_BANK_TRANSFER_DELAY"),
			InsuranceDelay:    v.GetDuration("PAYMENT_INSURANCE_DELAY"),
			HospitalDelay:     v.GetDuration("PAYMENT_HOSPITAL_DELAY"),
			CompletionDelay:   v.GetDuration("PAYMENT_COMPLETION_DELAY"),
			SuccessRate:       v.GetFloat64("PAYMENT_SUCCESS_RATE"),
		},
		Receipt: ReceiptConfig{
			VATRate:         v.GetFloat64("RECEIPT_VAT_RATE"),
			QRBaseURL:       v.GetString("RECEIPT_QR_BASE_URL"),
			HospitalName:    v.GetString("RECEIPT_HOSPITAL_NAME"),
			HospitalAddress: v.GetString("RECEIPT_HOSPITAL_ADDRESS"),
			HospitalPhone:   v.GetString("RECEIPT_HOSPITAL_PHONE"),
			TaxPIN:          v.GetString("RECEIPT_TAX_PIN"),
		},
	}

	if config.Storage.SessionTTL <= 0 {
		config.Storage.SessionTTL = 2 * time.Hour
	}

	return config, nil
}

// IsProduction reports whether cookies should be marked Secure
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Location resolves the hospital time zone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
