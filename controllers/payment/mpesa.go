package paymentControllers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultMpesaBaseURL = "https://sandbox.safaricom.co.ke"

// getMpesaConfig reads the Daraja credentials from the environment.
func getMpesaConfig() (consumerKey, consumerSecret, shortCode, passKey, callbackURL, baseURL string, err error) {
	consumerKey = os.Getenv("MPESA_CONSUMER_KEY")
	consumerSecret = os.Getenv("MPESA_CONSUMER_SECRET")
	shortCode = os.Getenv("MPESA_SHORT_CODE")
	passKey = os.Getenv("MPESA_PASS_KEY")
	callbackURL = os.Getenv("MPESA_CALLBACK_URL")

	baseURL = os.Getenv("MPESA_BASE_URL")
	if baseURL == "" {
		baseURL = defaultMpesaBaseURL
	}

	if consumerKey == "" || consumerSecret == "" || shortCode == "" || passKey == "" {
		return "", "", "", "", "", "", fmt.Errorf("mpesa configuration missing")
	}
	return consumerKey, consumerSecret, shortCode, passKey, callbackURL, baseURL, nil
}

type mpesaTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// STKPushResponse is the provider's answer to a push request. ResponseCode
// "0" means the prompt was accepted for delivery to the handset.
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// generateMpesaToken fetches an OAuth access token from the provider.
func generateMpesaToken(ctx context.Context) (string, error) {
	consumerKey, consumerSecret, _, _, _, baseURL, err := getMpesaConfig()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		baseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(consumerKey + ":" + consumerSecret))
	req.Header.Set("Authorization", "Basic "+auth)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach mpesa: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mpesa token error (%d): %s", resp.StatusCode, string(body))
	}

	var tokenResp mpesaTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse mpesa token response: %v", err)
	}
	return tokenResp.AccessToken, nil
}

// initiateMpesaPayment issues an STK push request-to-pay to the phone.
func initiateMpesaPayment(ctx context.Context, phoneNumber string, amount float64, token string) (*STKPushResponse, error) {
	_, _, shortCode, passKey, callbackURL, baseURL, err := getMpesaConfig()
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString([]byte(shortCode + passKey + timestamp))

	payload := map[string]interface{}{
		"BusinessShortCode": shortCode,
		"Password":          password,
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            amount,
		"PartyA":            phoneNumber,
		"PartyB":            shortCode,
		"PhoneNumber":       phoneNumber,
		"CallBackURL":       callbackURL,
		"AccountReference":  "Vice Queen Industries",
		"TransactionDesc":   "Payment for order",
	}
	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		baseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach mpesa: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mpesa API error (%d): %s", resp.StatusCode, string(body))
	}

	var pushResp STKPushResponse
	if err := json.Unmarshal(body, &pushResp); err != nil {
		return nil, fmt.Errorf("failed to parse mpesa response: %v", err)
	}
	return &pushResp, nil
}
