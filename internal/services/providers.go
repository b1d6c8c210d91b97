package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SignatureSender is the minimal contract an external e-signature provider
// must honor: submit a document for signing and return an opaque reference.
type SignatureSender interface {
	Send(ctx context.Context, document, recipientEmail string) (string, error)
}

// ESignClient is a thin HTTP client for an external e-signature provider's
// envelope-creation endpoint.
type ESignClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewESignClient(baseURL, apiKey string) *ESignClient {
	return &ESignClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type esignRequest struct {
	Document       string `json:"document"`
	RecipientEmail string `json:"recipient_email"`
}

type esignResponse struct {
	ReferenceID string `json:"reference_id"`
}

// Send submits the document and returns the provider's reference id.
func (c *ESignClient) Send(ctx context.Context, document, recipientEmail string) (string, error) {
	body, err := json.Marshal(esignRequest{Document: document, RecipientEmail: recipientEmail})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/envelopes", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	var out esignResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ReferenceID == "" {
		return "", fmt.Errorf("provider returned no reference id")
	}
	return out.ReferenceID, nil
}
