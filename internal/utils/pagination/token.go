package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeExpenseToken creates a base64 encoded cursor from an expense's date
// and id. The pair matches the stable ordering used by the expense listing
// query (expense_date DESC, expense_id DESC).
func EncodeExpenseToken(date string, expenseID string) string {
	tokenStr := fmt.Sprintf("%s|%s", date, expenseID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeExpenseToken parses the base64 encoded cursor back into the expense
// date and id it was built from.
func DecodeExpenseToken(token string) (string, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid pagination token format (empty field)")
	}
	return parts[0], parts[1], nil
}
