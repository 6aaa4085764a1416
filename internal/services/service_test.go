package service

import (
	"testing"

	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount string
		ok     bool
	}{
		{"199", true},
		{"0.01", true},
		{"35.50", true},
		{"1.100", true},
		{"99999999.99", true},
		{"0", false},
		{"-5", false},
		{"0.001", false},
		{"12.345", false},
		{"100000000", false},
		{"123456789", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := validateAmount("price", decimal.RequireFromString(tt.amount))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
		})
	}
}
