package core

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
)

// ErrGateway wraps failures from the external card-payment processor.
var ErrGateway = errors.New("payment gateway operation failed")

// PaymentIntentCreator is the slice of the Stripe client the billing
// service needs; *paymentintent.Client satisfies it.
type PaymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// billingService implements the BillingService interface against Stripe.
type billingService struct {
	intents PaymentIntentCreator
}

// NewBillingService creates a new BillingService using the given payment
// intent client.
func NewBillingService(intents PaymentIntentCreator) BillingService {
	return &billingService{intents: intents}
}

// CreatePaymentIntent requests a card payment intent for the given
// major-unit price and returns its client secret. The amount sent to the
// gateway is price*100 truncated to an integer. There is no retry and no
// idempotency key.
func (s *billingService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return intent.ClientSecret, nil
}
