package config

import (
	"log"
	"strings"

	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// FOBCostPolicy controls whether stored fob_expenses/disassembly values
	// of FOB-incoterm purchases count toward financial summaries.
	FOBCostPolicy domain.FOBCostPolicy

	// RateLimit is the ulule/limiter formatted rate, e.g. "300-M".
	RateLimit string

	// CORSAllowedOrigins is the comma-separated list of allowed origins.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FOB_COST_POLICY", string(domain.FOBPolicyInclude))
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	fobPolicy := domain.FOBCostPolicy(viper.GetString("FOB_COST_POLICY"))
	switch fobPolicy {
	case domain.FOBPolicyInclude, domain.FOBPolicyExclude:
		cfg.FOBCostPolicy = fobPolicy
	default:
		log.Printf("Warning: Invalid value for FOB_COST_POLICY ('%s'). Defaulting to %s.\n", fobPolicy, domain.FOBPolicyInclude)
		cfg.FOBCostPolicy = domain.FOBPolicyInclude
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "300-M"
	}

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
