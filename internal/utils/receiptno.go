package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Receipt number prefixes for the two transaction kinds.
const (
	ReceiptPrefixCollection = "COL"
	ReceiptPrefixSale       = "SAL"
)

const receiptSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReceiptNumber builds a receipt number of the form
// {PREFIX}-{6 digit time suffix}-{3 random alphanumerics}, uppercase.
// The time suffix rolls every millisecond and the random suffix keeps
// the collision risk low; uniqueness is probabilistic, not guaranteed.
func GenerateReceiptNumber(prefix string) (string, error) {
	timeSuffix := time.Now().UnixMilli() % 1_000_000

	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = receiptSuffixAlphabet[int(b[i])%len(receiptSuffixAlphabet)]
	}

	return fmt.Sprintf("%s-%06d-%s", prefix, timeSuffix, string(b)), nil
}
