package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// BatchCursor is the position of the last batch of a page. Listing is ordered
// by transaction date, then creation time, then id, all descending.
type BatchCursor struct {
	TransactionDate time.Time
	CreatedAt       time.Time
	BatchID         string
}

// EncodeBatchCursor creates an opaque token from a cursor.
func EncodeBatchCursor(c BatchCursor) string {
	tokenStr := strings.Join([]string{
		c.TransactionDate.UTC().Format(timeFormat),
		c.CreatedAt.UTC().Format(timeFormat),
		c.BatchID,
	}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeBatchCursor parses a token produced by EncodeBatchCursor.
func DecodeBatchCursor(token string) (BatchCursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return BatchCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return BatchCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	txDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return BatchCursor{}, fmt.Errorf("invalid pagination token format (transaction date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return BatchCursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return BatchCursor{TransactionDate: txDate, CreatedAt: createdAt, BatchID: parts[2]}, nil
}
