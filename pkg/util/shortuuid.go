package util

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewUUID returns a new base58 encoded UUID. It is used as the identifier of every record
// created by the server (shipments, stops, check calls and master data).
func NewUUID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}

// IsUUID reports whether s is a base58 encoded UUID produced by NewUUID.
func IsUUID(s string) bool {
	raw, err := base58.Decode(s)
	if err != nil || len(raw) != 16 {
		return false
	}
	_, err = uuid.FromBytes(raw)
	return err == nil
}
