package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	cfg := Load()

	if cfg.App.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Billing.TaxRatePercent != 0 {
		t.Errorf("default tax rate percent = %v, want 0", cfg.Billing.TaxRatePercent)
	}
	if cfg.Billing.DefaultMode != "Retail" {
		t.Errorf("default billing mode = %q, want Retail", cfg.Billing.DefaultMode)
	}
	if cfg.Printer.Type != "none" {
		t.Errorf("default printer type = %q, want none", cfg.Printer.Type)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("default redis addr = %q, want empty", cfg.Redis.Addr)
	}
}

func TestTaxRate(t *testing.T) {
	b := BillingConfig{TaxRatePercent: 5}
	if got := b.TaxRate(); got != 0.05 {
		t.Errorf("TaxRate() = %v, want 0.05", got)
	}

	b = BillingConfig{}
	if got := b.TaxRate(); got != 0 {
		t.Errorf("TaxRate() = %v, want 0", got)
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		Name:     "kadai",
		User:     "postgres",
		Password: "secret",
		SSLMode:  "disable",
		Timezone: "Asia/Kolkata",
	}

	want := "host=localhost user=postgres password=secret dbname=kadai port=5432 sslmode=disable TimeZone=Asia/Kolkata"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
