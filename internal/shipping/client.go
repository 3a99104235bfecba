// Package shipping quotes and buys postage through the EasyPost Go SDK.
package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EasyPost/easypost-go/v4"
	"github.com/guttosm/label-service/internal/domain/model"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.easypost.com/v2/"

const defaultTimeout = 60 * time.Second

// Options are the shipment options sent with every quote.
type Options struct {
	LabelFormat string
	LabelSize   string
}

// Purchase is a bought shipment. SelectedRate and LabelBase64 come from the
// raw response: the SDK types drop label_base64 and re-encode the rate.
type Purchase struct {
	Shipment     *easypost.Shipment
	SelectedRate json.RawMessage
	LabelBase64  string
}

// Client is safe for concurrent use. An SDK client is built per call so the
// API key can be read fresh for every request; all calls share one
// transport.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a client. An empty baseURL uses DefaultBaseURL and a nil
// httpClient gets a client with a 60 second timeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	// The SDK resolves relative paths such as "shipments" against the base.
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse shipping API URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("shipping API URL %q is not absolute", baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// CreateShipment quotes the shipment and returns it with its rates.
func (c *Client) CreateShipment(ctx context.Context, apiKey string, shipment model.Shipment, opts Options) (*easypost.Shipment, error) {
	in := &easypost.Shipment{
		ToAddress:   toSDKAddress(shipment.To),
		FromAddress: toSDKAddress(shipment.From),
		Parcel: &easypost.Parcel{
			Weight: shipment.Parcel.Weight,
			Length: shipment.Parcel.Length,
			Width:  shipment.Parcel.Width,
			Height: shipment.Parcel.Height,
		},
		Options: &easypost.ShipmentOptions{
			LabelFormat: opts.LabelFormat,
			LabelSize:   opts.LabelSize,
		},
	}
	return c.sdk(apiKey, c.callClient(nil)).CreateShipmentWithContext(ctx, in)
}

// LowestRate picks the cheapest rate of the given carriers. It makes no
// network call; a quote without a matching rate fails with the SDK's error.
func (c *Client) LowestRate(shipment *easypost.Shipment, carriers []string) (easypost.Rate, error) {
	return c.sdk("", c.httpClient).LowestShipmentRateWithCarrier(shipment, carriers)
}

// BuyShipment buys rate for the shipment.
func (c *Client) BuyShipment(ctx context.Context, apiKey, shipmentID string, rate *easypost.Rate) (*Purchase, error) {
	if shipmentID == "" || rate == nil || rate.ID == "" {
		return nil, fmt.Errorf("buy shipment: shipment and rate ids are required")
	}

	rec := &bodyRecorder{}
	bought, err := c.sdk(apiKey, c.callClient(rec)).BuyShipmentWithContext(ctx, shipmentID, rate, "")
	if err != nil {
		return nil, err
	}

	purchase := &Purchase{Shipment: bought}
	var raw struct {
		SelectedRate json.RawMessage `json:"selected_rate"`
		PostageLabel *struct {
			LabelBase64 string `json:"label_base64"`
		} `json:"postage_label"`
	}
	if body := rec.Body(); len(body) > 0 && json.Unmarshal(body, &raw) == nil {
		if len(raw.SelectedRate) > 0 && string(raw.SelectedRate) != "null" {
			purchase.SelectedRate = raw.SelectedRate
		}
		if raw.PostageLabel != nil {
			purchase.LabelBase64 = raw.PostageLabel.LabelBase64
		}
	}
	return purchase, nil
}

func (c *Client) sdk(apiKey string, httpClient *http.Client) *easypost.Client {
	timeout := httpClient.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &easypost.Client{
		APIKey:  apiKey,
		BaseURL: c.baseURL,
		Client:  httpClient,
		Timeout: int(timeout / time.Millisecond),
	}
}

// callClient returns a per-call copy of the shared client so nothing the SDK
// does to it leaks into other requests. rec, when set, sees every response.
func (c *Client) callClient(rec *bodyRecorder) *http.Client {
	hc := *c.httpClient
	if rec != nil {
		rec.next = hc.Transport
		if rec.next == nil {
			rec.next = http.DefaultTransport
		}
		hc.Transport = rec
	}
	return &hc
}

func toSDKAddress(a model.Address) *easypost.Address {
	return &easypost.Address{
		Name:    a.Name,
		Company: a.Company,
		Street1: a.Street1,
		Street2: a.Street2,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Phone:   a.Phone,
	}
}
