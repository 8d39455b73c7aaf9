package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapdesk/scrap_ledger_app/internal/utils"
)

var receiptNumberPattern = regexp.MustCompile(`^(COL|SAL)-\d{6}-[A-Z0-9]{3}$`)

func TestGenerateReceiptNumber_Format(t *testing.T) {
	for _, prefix := range []string{utils.ReceiptPrefixCollection, utils.ReceiptPrefixSale} {
		number, err := utils.GenerateReceiptNumber(prefix)
		require.NoError(t, err)
		assert.Regexp(t, receiptNumberPattern, number)
		assert.Equal(t, prefix, number[:3])
	}
}

func TestGenerateReceiptNumber_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := utils.GenerateReceiptNumber(utils.ReceiptPrefixSale)
		require.NoError(t, err)
		seen[number] = true
	}
	// 100 draws over a millisecond clock plus 3 random characters should
	// not all land on one value.
	assert.Greater(t, len(seen), 1)
}
