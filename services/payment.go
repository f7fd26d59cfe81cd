package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"pethotel-backend/errors"
)

// PaymentClient talks to the external card processor. The protocol
// internals stay on the processor's side; this client only creates an
// intent for an amount and asks whether it was confirmed.
type PaymentClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// PaymentIntent is the processor's view of a pending charge.
type PaymentIntent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
}

func NewPaymentClient(baseURL, apiKey string) *PaymentClient {
	return &PaymentClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateIntent registers a charge for amount (in the hotel's currency)
// and returns the intent the front-end completes with the processor.
func (p *PaymentClient) CreateIntent(amount float64, currency, reference string) (*PaymentIntent, error) {
	body, err := json.Marshal(map[string]interface{}{
		"amount":    amount,
		"currency":  currency,
		"reference": reference,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, p.baseURL+"/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodePaymentFailure, "cannot reach payment processor", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, errors.NewAppError(errors.ErrCodePaymentFailure,
			fmt.Sprintf("payment processor returned status %d: %s", resp.StatusCode, string(raw)), nil)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, errors.NewAppError(errors.ErrCodePaymentFailure, "cannot parse processor response", err)
	}
	return &intent, nil
}

// ConfirmIntent asks the processor whether the intent succeeded. Anything
// but an explicit "succeeded" is treated as not paid; no state is assumed.
func (p *PaymentClient) ConfirmIntent(intentID string) (bool, error) {
	req, err := http.NewRequest(http.MethodGet, p.baseURL+"/payment_intents/"+intentID, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodePaymentFailure, "cannot reach payment processor", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, errors.NewAppError(errors.ErrCodePaymentFailure,
			fmt.Sprintf("payment processor returned status %d", resp.StatusCode), nil)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return false, errors.NewAppError(errors.ErrCodePaymentFailure, "cannot parse processor response", err)
	}
	return intent.Status == "succeeded", nil
}
