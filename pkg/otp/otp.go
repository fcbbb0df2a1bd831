package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// TTL vigencia de un código OTP.
const TTL = 10 * time.Minute

// Generate produce un código numérico de 6 dígitos con crypto/rand.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generar otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Expired informa si un OTP venció. expiresAt nil cuenta como vencido.
func Expired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt == nil || now.After(*expiresAt)
}
