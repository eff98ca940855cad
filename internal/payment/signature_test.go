package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigner_SignAndVerify(t *testing.T) {
	s := NewSigner("key-secret")

	sig := s.Sign("order_abc", "pay_xyz")

	assert.Len(t, sig, 64) // hex sha256
	assert.True(t, s.Verify("order_abc", "pay_xyz", sig))
}

func TestSigner_Verify_Tampered(t *testing.T) {
	s := NewSigner("key-secret")

	sig := s.Sign("order_abc", "pay_xyz")

	assert.False(t, s.Verify("order_abc", "pay_other", sig))
	assert.False(t, s.Verify("order_other", "pay_xyz", sig))
	assert.False(t, s.Verify("order_abc", "pay_xyz", sig[:63]+"0"))
	assert.False(t, s.Verify("order_abc", "pay_xyz", ""))
}

func TestSigner_Verify_DifferentSecret(t *testing.T) {
	sig := NewSigner("secret-a").Sign("order_abc", "pay_xyz")

	assert.False(t, NewSigner("secret-b").Verify("order_abc", "pay_xyz", sig))
}

func TestSigner_Sign_Deterministic(t *testing.T) {
	s := NewSigner("key-secret")

	assert.Equal(t, s.Sign("order_abc", "pay_xyz"), s.Sign("order_abc", "pay_xyz"))
}
