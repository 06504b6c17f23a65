package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeExpenseToken(t *testing.T) {
	token := EncodeExpenseToken("2025-03-12", "7f3c2a1e")
	assert.NotEmpty(t, token, "Token should not be empty")

	date, expenseID, err := DecodeExpenseToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, "2025-03-12", date, "Date should match after decode")
	assert.Equal(t, "7f3c2a1e", expenseID, "Expense id should match after decode")
}

func TestDecodeExpenseTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeExpenseToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	_, _, err = DecodeExpenseToken("MjAyNS0wMy0xMg==") // "2025-03-12" without a separator
	assert.Error(t, err, "Should return an error for a token without a separator")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Empty field
	_, _, err = DecodeExpenseToken("fDdmM2MyYTFl") // "|7f3c2a1e"
	assert.Error(t, err, "Should return an error for an empty field")
	assert.Contains(t, err.Error(), "empty field", "Error should mention the empty field")
}
