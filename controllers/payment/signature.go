package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw callback body.
const SignatureHeader = "X-Callback-Signature"

// verifyCallbackSignature checks the provider callback against the shared
// secret. Verification is enforced whenever MPESA_CALLBACK_SECRET is set;
// production always sets it.
func verifyCallbackSignature(body []byte, signature string) bool {
	secret := os.Getenv("MPESA_CALLBACK_SECRET")
	if secret == "" {
		return true
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
