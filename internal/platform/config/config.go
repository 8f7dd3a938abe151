package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// TemplateAccounts holds the chart-of-accounts codes the posting templates
// post against. Codes follow the hierarchical dash convention of the chart.
type TemplateAccounts struct {
	VasClientClearing string
	VasSupplierFloat  string
	VasFeeRevenue     string
	VasVatControl     string

	PayShapBankClearing string
	PayShapClientFloat  string
	PayShapSchemeFee    string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// EnableDemoPostings gates the draft posting endpoints that generate
	// representative journal entries without a live upstream event. Never
	// enabled by default.
	EnableDemoPostings bool

	// Rate limiting for the posting route (webhook deliveries are bursty).
	PostingRateLimit  int64
	PostingRatePeriod time.Duration

	TemplateAccounts TemplateAccounts
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ENABLE_DEMO_POSTINGS", false)
	viper.SetDefault("POSTING_RATE_LIMIT", 100)
	viper.SetDefault("POSTING_RATE_PERIOD", "1m")

	viper.SetDefault("VAS_CLIENT_CLEARING_ACCOUNT", "1200-10-06")
	viper.SetDefault("VAS_SUPPLIER_FLOAT_ACCOUNT", "2300-20-01")
	viper.SetDefault("VAS_FEE_REVENUE_ACCOUNT", "4100-01-06")
	viper.SetDefault("VAS_VAT_CONTROL_ACCOUNT", "2500-01-01")
	viper.SetDefault("PAYSHAP_BANK_CLEARING_ACCOUNT", "1100-01-02")
	viper.SetDefault("PAYSHAP_CLIENT_FLOAT_ACCOUNT", "2200-10-01")
	viper.SetDefault("PAYSHAP_SCHEME_FEE_ACCOUNT", "5200-03-01")

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
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.EnableDemoPostings = viper.GetBool("ENABLE_DEMO_POSTINGS")
	if cfg.EnableDemoPostings && cfg.IsProduction {
		// Demo postings must never be reachable in production.
		log.Println("Warning: ENABLE_DEMO_POSTINGS ignored because IS_PRODUCTION is set.")
		cfg.EnableDemoPostings = false
	}

	cfg.PostingRateLimit = viper.GetInt64("POSTING_RATE_LIMIT")
	ratePeriodStr := viper.GetString("POSTING_RATE_PERIOD")
	ratePeriod, err := time.ParseDuration(ratePeriodStr)
	if err != nil {
		ratePeriod = time.Minute
		if ratePeriodStr != "" {
			log.Printf("Warning: Invalid value for POSTING_RATE_PERIOD ('%s'). Defaulting to %s.\n", ratePeriodStr, ratePeriod)
		}
	}
	cfg.PostingRatePeriod = ratePeriod

	cfg.TemplateAccounts = TemplateAccounts{
		VasClientClearing:   viper.GetString("VAS_CLIENT_CLEARING_ACCOUNT"),
		VasSupplierFloat:    viper.GetString("VAS_SUPPLIER_FLOAT_ACCOUNT"),
		VasFeeRevenue:       viper.GetString("VAS_FEE_REVENUE_ACCOUNT"),
		VasVatControl:       viper.GetString("VAS_VAT_CONTROL_ACCOUNT"),
		PayShapBankClearing: viper.GetString("PAYSHAP_BANK_CLEARING_ACCOUNT"),
		PayShapClientFloat:  viper.GetString("PAYSHAP_CLIENT_FLOAT_ACCOUNT"),
		PayShapSchemeFee:    viper.GetString("PAYSHAP_SCHEME_FEE_ACCOUNT"),
	}

	return cfg, nil
}
