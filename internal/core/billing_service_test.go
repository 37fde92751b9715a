package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v76"
)

type fakeIntentCreator struct {
	lastParams *stripe.PaymentIntentParams
	intent     *stripe.PaymentIntent
	err        error
}

func (f *fakeIntentCreator) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}

func TestCreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		wantAmount int64
	}{
		{name: "whole_dollars", price: 25, wantAmount: 2500},
		{name: "with_cents", price: 10.5, wantAmount: 1050},
		// Truncation, not rounding: 19.99*100 is 1998.99... in float64.
		{name: "truncated", price: 19.99, wantAmount: 1998},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			creator := &fakeIntentCreator{intent: &stripe.PaymentIntent{ClientSecret: "cs_test_123"}}
			svc := NewBillingService(creator)

			secret, err := svc.CreatePaymentIntent(context.Background(), tc.price)
			require.NoError(t, err)
			assert.Equal(t, "cs_test_123", secret)

			require.NotNil(t, creator.lastParams)
			assert.Equal(t, tc.wantAmount, *creator.lastParams.Amount)
			assert.Equal(t, string(stripe.CurrencyUSD), *creator.lastParams.Currency)
			require.Len(t, creator.lastParams.PaymentMethodTypes, 1)
			assert.Equal(t, "card", *creator.lastParams.PaymentMethodTypes[0])
		})
	}
}

func TestCreatePaymentIntentGatewayError(t *testing.T) {
	creator := &fakeIntentCreator{err: errors.New("stripe unreachable")}
	svc := NewBillingService(creator)

	_, err := svc.CreatePaymentIntent(context.Background(), 10)
	assert.ErrorIs(t, err, ErrGateway)
}
