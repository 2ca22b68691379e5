package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2024, 3, 10, 14, 30, 45, 123456789, time.UTC)
	id := "0d7f3b1a-1f7e-4a7f-9b6c-2f1c9a8d4e5f"

	token := EncodeCursor(createdAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
	assert.Equal(t, id, decodedID, "Row ID should match after decode")

	// Zero time still round-trips
	zeroToken := EncodeCursor(time.Time{}, "id")
	decodedZero, decodedZeroID, err := DecodeCursor(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, time.Time{}, decodedZero)
	assert.Equal(t, "id", decodedZeroID)
}

func TestDecodeCursorError(t *testing.T) {
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Base64 encoded value without a separator
	_, _, err = DecodeCursor("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")

	// Base64 encoded "notadate|some-id"
	_, _, err = DecodeCursor("bm90YWRhdGV8c29tZS1pZA==")
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields := []string{"2024-03-10T14:30:45Z", "loan-123", "PENDING_VERIFICATION"}
	token := EncodeMultiFieldToken(fields...)

	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, fields, decoded)
}
