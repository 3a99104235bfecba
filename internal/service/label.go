package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/EasyPost/easypost-go/v4"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/shipping"
	"github.com/rs/zerolog/log"
)

// FallbackErrorMessage is reported when an upstream failure carries no message.
const FallbackErrorMessage = "Unable to create label"

// ErrMissingCredential matches every *CredentialError.
var ErrMissingCredential = errors.New("shipping API credential is missing")

// CredentialError reports that the named environment variable is unset or empty.
type CredentialError struct {
	Name string
}

func (e *CredentialError) Error() string {
	return e.Name + " is missing"
}

// Is makes errors.Is(err, ErrMissingCredential) true.
func (e *CredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

// UpstreamError wraps any failure of the shipping API: transport, error
// response, undecodable body or a quote without a matching rate.
type UpstreamError struct {
	Op  string
	Err error
}

// Error returns the provider's message verbatim, or FallbackErrorMessage.
func (e *UpstreamError) Error() string {
	if msg := shipping.Message(e.Err); msg != "" {
		return msg
	}
	return FallbackErrorMessage
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ShippingClient is the subset of the shipping API the label service needs.
type ShippingClient interface {
	CreateShipment(ctx context.Context, apiKey string, shipment model.Shipment, opts shipping.Options) (*easypost.Shipment, error)
	LowestRate(shipment *easypost.Shipment, carriers []string) (easypost.Rate, error)
	BuyShipment(ctx context.Context, apiKey, shipmentID string, rate *easypost.Rate) (*shipping.Purchase, error)
}

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// LabelService buys postage labels.
type LabelService interface {
	// CheckCredential returns a *CredentialError when the API key is not set.
	CheckCredential() error

	// PurchaseLabel quotes the shipment, picks the cheapest rate of the
	// configured carrier and buys it. Every call makes a new purchase.
	PurchaseLabel(ctx context.Context, shipment model.Shipment) (*model.LabelResult, error)
}

// LabelServiceConfig configures the label service.
type LabelServiceConfig struct {
	// CredentialEnv names the environment variable holding the API key.
	CredentialEnv string
	// Carriers restricts rate selection; matched case-insensitively.
	Carriers []string
	// Options are sent with every quote request.
	Options shipping.Options
}

// LabelServiceImpl implements LabelService.
type LabelServiceImpl struct {
	client ShippingClient
	config LabelServiceConfig
	lookup LookupFunc
}

// NewLabelService creates a label service. A nil lookup uses os.LookupEnv.
func NewLabelService(client ShippingClient, config LabelServiceConfig, lookup LookupFunc) LabelService {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if config.CredentialEnv == "" {
		config.CredentialEnv = "EASYPOST_API_KEY"
	}
	return &LabelServiceImpl{
		client: client,
		config: config,
		lookup: lookup,
	}
}

// CheckCredential reads the credential from the environment on every call.
func (s *LabelServiceImpl) CheckCredential() error {
	_, err := s.credential()
	return err
}

func (s *LabelServiceImpl) credential() (string, error) {
	key, ok := s.lookup(s.config.CredentialEnv)
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", &CredentialError{Name: s.config.CredentialEnv}
	}
	return key, nil
}

// PurchaseLabel runs quote, select and buy strictly in sequence.
func (s *LabelServiceImpl) PurchaseLabel(ctx context.Context, shipment model.Shipment) (*model.LabelResult, error) {
	start := time.Now()

	apiKey, err := s.credential()
	if err != nil {
		metrics.RecordLabelPurchase(0, metrics.OutcomeConfigError)
		return nil, err
	}

	result, err := s.purchase(ctx, apiKey, shipment)
	if err != nil {
		metrics.RecordLabelPurchase(time.Since(start), metrics.OutcomeUpstreamError)
		log.Ctx(ctx).Warn().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("Label purchase failed")
		return nil, err
	}

	metrics.RecordLabelPurchase(time.Since(start), metrics.OutcomeSuccess)
	return result, nil
}

func (s *LabelServiceImpl) purchase(ctx context.Context, apiKey string, shipment model.Shipment) (*model.LabelResult, error) {
	quoted, err := s.client.CreateShipment(ctx, apiKey, shipment, s.config.Options)
	if err != nil {
		return nil, &UpstreamError{Op: "create_shipment", Err: err}
	}
	if quoted == nil {
		return nil, &UpstreamError{Op: "create_shipment"}
	}

	rate, err := s.client.LowestRate(quoted, s.config.Carriers)
	if err != nil {
		return nil, &UpstreamError{Op: "select_rate", Err: err}
	}

	log.Ctx(ctx).Debug().
		Str("shipment_id", quoted.ID).
		Str("rate_id", rate.ID).
		Str("carrier", rate.Carrier).
		Str("service", rate.Service).
		Str("rate", rate.Rate).
		Msg("Selected lowest rate")

	bought, err := s.client.BuyShipment(ctx, apiKey, quoted.ID, &rate)
	if err != nil {
		return nil, &UpstreamError{Op: "buy_shipment", Err: err}
	}
	if bought == nil || bought.Shipment == nil {
		return nil, &UpstreamError{Op: "buy_shipment"}
	}

	log.Ctx(ctx).Info().
		Str("shipment_id", bought.Shipment.ID).
		Str("carrier", rate.Carrier).
		Str("service", rate.Service).
		Str("rate", rate.Rate).
		Msg("Label purchased")

	return normalize(bought), nil
}

// normalize maps the purchase onto the response. rate is only set when the
// provider returned a selected rate.
func normalize(bought *shipping.Purchase) *model.LabelResult {
	result := &model.LabelResult{
		TrackingCode: bought.Shipment.TrackingCode,
		LabelBase64:  bought.LabelBase64,
		Rate:         bought.SelectedRate,
	}
	if bought.Shipment.PostageLabel != nil {
		result.LabelURL = bought.Shipment.PostageLabel.LabelURL
	}
	return result
}
