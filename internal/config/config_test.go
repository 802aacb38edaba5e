package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_HasNoResultCap(t *testing.T) {
	cfg := Default()
	assert.Negative(t, cfg.MaxResults)
	assert.Empty(t, cfg.Paths)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Query = "div > p"
	assert.NoError(t, cfg.Validate())

	cfg.Query = ""
	assert.Error(t, cfg.Validate())

	cfg.Query = "   "
	assert.Error(t, cfg.Validate())
}
