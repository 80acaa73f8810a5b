package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, CatalogMemory, cfg.Shop.CatalogSource)
	assert.Equal(t, []string{"SAVE10:percentage:10", "OFF50:amount:50"}, cfg.Shop.DiscountCodes)
	assert.Equal(t, "200", cfg.Shop.FreeShippingThreshold.String())
	assert.Equal(t, "5", cfg.Shop.ShippingFee.String())
	assert.Equal(t, 5, cfg.Shop.MaxRating)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DISCOUNT_CODES", "WELCOME:amount:15")
	t.Setenv("SHIPPING_FEE", "7.5")
	t.Setenv("DB_NAME", "catalog")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, CatalogPostgres, cfg.Shop.CatalogSource)
	assert.Equal(t, []string{"WELCOME:amount:15"}, cfg.Shop.DiscountCodes)
	assert.Equal(t, "7.5", cfg.Shop.ShippingFee.String())
	assert.Contains(t, cfg.DB.DSN(), "/catalog?sslmode=disable")
}

func TestLoad_RejectsUnknownCatalogSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "mongo")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadMaxRating(t *testing.T) {
	t.Setenv("MAX_RATING", "0")
	_, err := Load()
	assert.Error(t, err)
}
