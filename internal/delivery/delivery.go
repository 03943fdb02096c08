// Package delivery holds the transport entry points of the storefront.
package delivery

import "context"

// Delivery is a long-running transport server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
