package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer implements the gateway's signature scheme: HMAC-SHA256 over
// "<orderID>|<paymentRef>" with the shared key secret, hex encoded.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(orderID, paymentRef string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(orderID + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the expected signature and compares in constant time.
func (s *Signer) Verify(orderID, paymentRef, signature string) bool {
	expected := s.Sign(orderID, paymentRef)
	return hmac.Equal([]byte(expected), []byte(signature))
}
