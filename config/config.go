package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"gocatalog/internal/stockpolicy"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config armazena todas as configurações do aplicativo GoCatalog.
type Config struct {
	// Geral
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Armazenamento
	StoreDriver string        `envconfig:"STORE_DRIVER" default:"postgres"`
	DatabaseURL string        `envconfig:"DATABASE_URL"`
	DBTimeout   time.Duration `envconfig:"DB_TIMEOUT" default:"5s"`

	// Rate Limiting (REDIS_ADDR vazio desativa)
	RedisAddr            string        `envconfig:"REDIS_ADDR"`
	RateLimitMaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100"`
	RateLimitPeriod      time.Duration `envconfig:"RATE_LIMIT_PERIOD" default:"1m"`

	// Segurança (JWT)
	JWTSecretKey string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	TokenExpiry  time.Duration `envconfig:"JWT_EXPIRY" default:"60m"`

	// Política de estoque usada quando a requisição não escolhe uma.
	StockPolicy string `envconfig:"STOCK_POLICY" default:"shortage"`
}

// LoadConfig carrega o .env (se existir) e decodifica as variáveis de ambiente.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// As variáveis podem vir do ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "erro de configuração")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate verifica as combinações que as tags não expressam.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL deve ser definida quando STORE_DRIVER=postgres")
		}
	case StoreDriverMemory:
	default:
		return errors.Errorf("STORE_DRIVER desconhecido %q (use %q ou %q)", c.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}

	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY não pode ser vazia")
	}
	if c.DBTimeout <= 0 {
		return errors.New("DB_TIMEOUT deve ser positivo")
	}
	if c.RedisAddr != "" && (c.RateLimitMaxRequests <= 0 || c.RateLimitPeriod <= 0) {
		return errors.New("RATE_LIMIT_MAX_REQUESTS e RATE_LIMIT_PERIOD devem ser positivos")
	}
	if _, err := stockpolicy.ByName(c.StockPolicy); err != nil {
		return errors.Wrap(err, "STOCK_POLICY")
	}
	return nil
}
