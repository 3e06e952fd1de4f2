// Package delivery contains the inbound adapters that drive the use cases.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application.
// Serve blocks until the adapter stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
