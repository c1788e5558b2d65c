package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func rawDocument(t *testing.T, doc bson.D) bson.Raw {
	t.Helper()

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestDuplicateKeyField(t *testing.T) {
	tests := []struct {
		name     string
		err      func(t *testing.T) error
		expected string
	}{
		{
			name: "short code index",
			err: func(t *testing.T) error {
				return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
					Code: duplicateKeyCode,
					Raw:  rawDocument(t, bson.D{{Key: "keyPattern", Value: bson.D{{Key: shortCodeField, Value: 1}}}}),
				}}}
			},
			expected: shortCodeField,
		},
		{
			name: "original url index behind wrapping",
			err: func(t *testing.T) error {
				return fmt.Errorf("insert: %w", mongo.WriteException{WriteErrors: mongo.WriteErrors{{
					Code: duplicateKeyCode,
					Raw:  rawDocument(t, bson.D{{Key: "keyPattern", Value: bson.D{{Key: originalURLField, Value: 1}}}}),
				}}})
			},
			expected: originalURLField,
		},
		{
			name: "index name in message only",
			err: func(*testing.T) error {
				return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
					Code:    duplicateKeyCode,
					Message: "E11000 duplicate key error collection: db.urls index: originalUrl_1",
				}}}
			},
			expected: "",
		},
		{
			name: "other write error",
			err: func(t *testing.T) error {
				return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
					Code: 121,
					Raw:  rawDocument(t, bson.D{{Key: "keyPattern", Value: bson.D{{Key: shortCodeField, Value: 1}}}}),
				}}}
			},
			expected: "",
		},
		{
			name:     "not a write exception",
			err:      func(*testing.T) error { return errors.New("E11000 shortCode_1") },
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, duplicateKeyField(tt.err(t)))
		})
	}
}

func TestFindSingleFieldIndex(t *testing.T) {
	// Arrange
	specs := []*mongo.IndexSpecification{
		{Name: "_id_", KeysDocument: rawDocument(t, bson.D{{Key: "_id", Value: int32(1)}})},
		{Name: "shortCode_-1", KeysDocument: rawDocument(t, bson.D{{Key: shortCodeField, Value: int32(-1)}})},
		{Name: "compound", KeysDocument: rawDocument(t, bson.D{{Key: originalURLField, Value: 1}, {Key: shortCodeField, Value: 1}})},
		{Name: "shortCode_1", KeysDocument: rawDocument(t, bson.D{{Key: shortCodeField, Value: int32(1)}})},
		{Name: "originalUrl_1", KeysDocument: rawDocument(t, bson.D{{Key: originalURLField, Value: 1.0}})},
	}

	// Act
	byCode := findSingleFieldIndex(specs, shortCodeField)
	byURL := findSingleFieldIndex(specs, originalURLField)
	missing := findSingleFieldIndex(specs, clickCountField)

	// Assert
	require.NotNil(t, byCode)
	assert.Equal(t, "shortCode_1", byCode.Name)
	require.NotNil(t, byURL)
	assert.Equal(t, "originalUrl_1", byURL.Name)
	assert.Nil(t, missing)
}
