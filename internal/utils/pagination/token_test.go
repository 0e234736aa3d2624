package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBatchCursor(t *testing.T) {
	cursor := BatchCursor{
		TransactionDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2024, 3, 9, 14, 30, 45, 123456789, time.UTC),
		BatchID:         "0b6c7d5e-2f1a-4d7e-9c47-3a1f2b3c4d5e",
	}

	token := EncodeBatchCursor(cursor)
	assert.NotEmpty(t, token)

	decoded, err := DecodeBatchCursor(token)
	require.NoError(t, err)
	assert.True(t, cursor.TransactionDate.Equal(decoded.TransactionDate))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.BatchID, decoded.BatchID)
}

func TestEncodeBatchCursorNormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2024, 3, 9, 10, 0, 0, 0, loc)

	decoded, err := DecodeBatchCursor(EncodeBatchCursor(BatchCursor{TransactionDate: local, CreatedAt: local, BatchID: "b1"}))
	require.NoError(t, err)
	assert.True(t, local.Equal(decoded.CreatedAt))
	assert.Equal(t, time.UTC, decoded.CreatedAt.Location())
}

func TestDecodeBatchCursorErrors(t *testing.T) {
	_, err := DecodeBatchCursor("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.RawURLEncoding.EncodeToString([]byte("2024-03-09T00:00:00Z"))
	_, err = DecodeBatchCursor(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	emptyID := base64.RawURLEncoding.EncodeToString([]byte("2024-03-09T00:00:00Z|2024-03-09T00:00:00Z|"))
	_, err = DecodeBatchCursor(emptyID)
	assert.Error(t, err)

	badDate := base64.RawURLEncoding.EncodeToString([]byte("yesterday|2024-03-09T00:00:00Z|b1"))
	_, err = DecodeBatchCursor(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "transaction date parse")

	badCreated := base64.RawURLEncoding.EncodeToString([]byte("2024-03-09T00:00:00Z|later|b1"))
	_, err = DecodeBatchCursor(badCreated)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}
