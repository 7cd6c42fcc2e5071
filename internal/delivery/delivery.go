// Package delivery holds the transports exposing the cart engine.
package delivery

import "context"

// Delivery is a server started by the application and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
