package postgres

import "github.com/oklog/ulid/v2"

// ULIDGenerator implements usecase.IDGenerator. ULIDs sort by creation time,
// which keeps ledger rows roughly chronological under their primary key.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a new ULID string.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
