package paystack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

type PaystackRepository interface {
	InitializeTransaction(ctx context.Context, req InitializeRequest) (InitializeResponse, error)
	VerifyTransaction(ctx context.Context, reference string) (VerifyResponse, error)
	Refund(ctx context.Context, req RefundRequest) (RefundResponse, error)
	Transfer(ctx context.Context, req TransferRequest) (TransferResponse, error)
	VerifyTransfer(ctx context.Context, reference string) (TransferResponse, error)
}

type paystackRepository struct {
	baseURL    string
	secretKey  string
	log        log.Logger
	httpClient *circuit.HTTPClient
}

func NewPaystackRepository(baseURL, secretKey string, log log.Logger, httpClient *circuit.HTTPClient) PaystackRepository {
	return &paystackRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		log:        log,
		httpClient: httpClient,
	}
}

// InitializeTransaction implements PaystackRepository.
func (r *paystackRepository) InitializeTransaction(ctx context.Context, req InitializeRequest) (InitializeResponse, error) {
	var resp InitializeResponse
	if err := r.call(ctx, http.MethodPost, "/transaction/initialize", req, &resp); err != nil {
		return InitializeResponse{}, err
	}
	return resp, nil
}

// VerifyTransaction implements PaystackRepository.
func (r *paystackRepository) VerifyTransaction(ctx context.Context, reference string) (VerifyResponse, error) {
	var data Transaction
	path := fmt.Sprintf("/transaction/verify/%s", url.PathEscape(reference))
	if err := r.call(ctx, http.MethodGet, path, nil, &data); err != nil {
		return VerifyResponse{}, err
	}
	return VerifyResponse{Status: true, Data: data}, nil
}

// Refund implements PaystackRepository.
func (r *paystackRepository) Refund(ctx context.Context, req RefundRequest) (RefundResponse, error) {
	var resp RefundResponse
	if err := r.call(ctx, http.MethodPost, "/refund", req, &resp); err != nil {
		return RefundResponse{}, err
	}
	return resp, nil
}

// Transfer implements PaystackRepository.
func (r *paystackRepository) Transfer(ctx context.Context, req TransferRequest) (TransferResponse, error) {
	var resp TransferResponse
	if err := r.call(ctx, http.MethodPost, "/transfer", req, &resp); err != nil {
		return TransferResponse{}, err
	}
	return resp, nil
}

// VerifyTransfer looks a transfer up by the reference it was created with.
func (r *paystackRepository) VerifyTransfer(ctx context.Context, reference string) (TransferResponse, error) {
	var resp TransferResponse
	path := fmt.Sprintf("/transfer/verify/%s", url.PathEscape(reference))
	if err := r.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return TransferResponse{}, err
	}
	return resp, nil
}

func (r *paystackRepository) call(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return errors.InternalServerError("error encode paystack request")
		}
		body = bytes.NewBuffer(buf)
	}

	hr, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		r.log.Error(ctx, "error build paystack request", err)
		return errors.ExternalProviderError("error build paystack request")
	}

	hr.Header.Set("Authorization", "Bearer "+r.secretKey)
	hr.Header.Set("Accept", "application/json")
	if payload != nil {
		hr.Header.Set("Content-Type", "application/json")
	}

	hresp, err := r.httpClient.Do(hr)
	if err != nil {
		r.log.Error(ctx, "error call paystack", err)
		return errors.ExternalProviderError("payment provider unreachable")
	}
	defer hresp.Body.Close()

	respBody, err := io.ReadAll(hresp.Body)
	if err != nil {
		r.log.Error(ctx, "error read paystack response", err)
		return errors.ExternalProviderError("error read payment provider response")
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		r.log.Error(ctx, "error decode paystack response", err, hresp.StatusCode)
		return errors.ExternalProviderError("invalid payment provider response")
	}

	if hresp.StatusCode < 200 || hresp.StatusCode > 299 || !env.Status {
		r.log.Warn(ctx, "paystack rejected request", path, hresp.StatusCode, env.Message)
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("payment provider returned status %d", hresp.StatusCode)
		}
		return errors.ExternalProviderError(msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			r.log.Error(ctx, "error decode paystack data", err)
			return errors.ExternalProviderError("invalid payment provider response")
		}
	}

	return nil
}
