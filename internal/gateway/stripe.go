package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

type customersAPI interface {
	New(params *stripe.CustomerParams) (*stripe.Customer, error)
}

type intentsAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Cancel(id string, params *stripe.PaymentIntentCancelParams) (*stripe.PaymentIntent, error)
}

// StripeGateway клиент платёжного шлюза. Ключ и таймаут приходят из конфига,
// никакого глобального stripe.Key.
type StripeGateway struct {
	customers customersAPI
	intents   intentsAPI
	currency  string
}

func NewStripeGateway(cfg config.Stripe) *StripeGateway {
	backends := stripe.NewBackends(&http.Client{Timeout: cfg.Timeout})
	sc := client.New(cfg.SecretKey, backends)

	return &StripeGateway{
		customers: sc.Customers,
		intents:   sc.PaymentIntents,
		currency:  cfg.Currency,
	}
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, deviceToken string) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	params.Metadata = map[string]string{"device_token": deviceToken}

	customer, err := g.customers.New(params)
	if err != nil {
		return "", wrapStripeErr("create customer", err)
	}
	return customer.ID, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency, gatewayCustomerID string) (entities.GatewayIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if gatewayCustomerID != "" {
		params.Customer = stripe.String(gatewayCustomerID)
	}

	intent, err := g.intents.New(params)
	if err != nil {
		return entities.GatewayIntent{}, wrapStripeErr("create intent", err)
	}
	return intentToEntity(intent), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (entities.GatewayIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.intents.Get(intentID, params)
	if err != nil {
		return entities.GatewayIntent{}, wrapStripeErr("retrieve intent", err)
	}
	return intentToEntity(intent), nil
}

func (g *StripeGateway) CancelIntent(ctx context.Context, intentID string) (entities.PaymentStatus, error) {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	intent, err := g.intents.Cancel(intentID, params)
	if err != nil {
		return "", wrapStripeErr("cancel intent", err)
	}
	return entities.PaymentStatus(intent.Status), nil
}

func intentToEntity(intent *stripe.PaymentIntent) entities.GatewayIntent {
	return entities.GatewayIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.Amount,
		Currency:     string(intent.Currency),
		Status:       entities.PaymentStatus(intent.Status),
	}
}

// Транспортные ошибки и 5xx шлюза сворачиваются в ErrGatewayUnavailable,
// ошибки API уровня 4xx возвращаются как есть.
func wrapStripeErr(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode < 500 {
		return fmt.Errorf("stripe: %s: %w", op, err)
	}
	return fmt.Errorf("stripe: %s: %w: %v", op, entities.ErrGatewayUnavailable, err)
}
