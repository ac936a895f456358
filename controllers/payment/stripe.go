package paymentControllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const defaultStripeBaseURL = "https://api.stripe.com"

func getStripeConfig() (secretKey, baseURL string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	baseURL = os.Getenv("STRIPE_BASE_URL")
	if baseURL == "" {
		baseURL = defaultStripeBaseURL
	}
	if secretKey == "" {
		return "", "", fmt.Errorf("stripe configuration missing")
	}
	return secretKey, baseURL, nil
}

// PaymentIntent is the subset of the intent object the payment flow reads.
type PaymentIntent struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func stripePost(ctx context.Context, path string, form url.Values) (*PaymentIntent, error) {
	secretKey, baseURL, err := getStripeConfig()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(secretKey, "")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach stripe: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse stripe response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		if intent.Error != nil {
			return nil, fmt.Errorf("stripe error: %s", intent.Error.Message)
		}
		return nil, fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}
	return &intent, nil
}

// createPaymentIntent opens a card intent for the amount, given in the
// currency's smallest unit.
func createPaymentIntent(ctx context.Context, amount float64, currency string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(amount), 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")
	form.Set("capture_method", "automatic")
	return stripePost(ctx, "/v1/payment_intents", form)
}

// confirmPaymentIntent attempts the charge with the client's payment method
// token; the returned status is "succeeded" on a captured payment.
func confirmPaymentIntent(ctx context.Context, intentID, paymentMethodID string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("payment_method", paymentMethodID)
	return stripePost(ctx, "/v1/payment_intents/"+intentID+"/confirm", form)
}
