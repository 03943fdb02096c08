// Package ordercode issues customer-facing order codes.
package ordercode

import (
	"storefront/internal/domain/service"

	"github.com/oklog/ulid/v2"
)

// Prefix starts every order code.
const Prefix = "ORD"

type ulidGenerator struct {
	next func() ulid.ULID
}

// NewGenerator returns a generator of "ORD" followed by a ULID. Codes sort by creation time.
func NewGenerator() service.OrderCodeGenerator {
	return &ulidGenerator{next: ulid.Make}
}

func (g *ulidGenerator) Generate() string {
	return Prefix + g.next().String()
}
