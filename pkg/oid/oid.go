package oid

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is a parsed record identifier: a 24-character hexadecimal key in
// MongoDB ObjectID layout. Every storage backend uses this format so ids
// look the same regardless of store type.
type ID = primitive.ObjectID

// ErrInvalidID reports a raw string that is not a well-formed record key.
var ErrInvalidID = errors.New("invalid id format")

// Parse validates raw as a record key. Anything that is not exactly 24 hex
// characters (wrong length, non-hex, empty) fails with ErrInvalidID. No
// side effects; callers reject bad input before any store lookup.
func Parse(raw string) (ID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// New generates a fresh record key.
func New() ID {
	return primitive.NewObjectID()
}

// IsValid checks if a string is a well-formed record key.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}
