package shipping

import (
	"context"
	"time"

	"github.com/EasyPost/easypost-go/v4"
	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/metrics"
)

// ClientWithCircuitBreaker wraps Client with circuit breaker protection and
// per-call metrics. Calls are never retried.
type ClientWithCircuitBreaker struct {
	client         *Client
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewClientWithCircuitBreaker creates a new client wrapper with circuit breaker.
func NewClientWithCircuitBreaker(client *Client, cb *circuitbreaker.CircuitBreaker) *ClientWithCircuitBreaker {
	return &ClientWithCircuitBreaker{
		client:         client,
		circuitBreaker: cb,
	}
}

// CreateShipment creates a shipment with circuit breaker protection.
func (c *ClientWithCircuitBreaker) CreateShipment(ctx context.Context, apiKey string, shipment model.Shipment, opts Options) (*easypost.Shipment, error) {
	var result *easypost.Shipment
	start := time.Now()
	err := c.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = c.client.CreateShipment(ctx, apiKey, shipment, opts)
		return cbErr
	})
	metrics.RecordUpstreamCall("create_shipment", time.Since(start), err)
	return result, err
}

// LowestRate is local and bypasses the breaker.
func (c *ClientWithCircuitBreaker) LowestRate(shipment *easypost.Shipment, carriers []string) (easypost.Rate, error) {
	return c.client.LowestRate(shipment, carriers)
}

// BuyShipment buys a rate with circuit breaker protection.
func (c *ClientWithCircuitBreaker) BuyShipment(ctx context.Context, apiKey, shipmentID string, rate *easypost.Rate) (*Purchase, error) {
	var result *Purchase
	start := time.Now()
	err := c.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = c.client.BuyShipment(ctx, apiKey, shipmentID, rate)
		return cbErr
	})
	metrics.RecordUpstreamCall("buy_shipment", time.Since(start), err)
	return result, err
}
