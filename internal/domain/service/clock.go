// Package service defines domain service contracts implemented by the infrastructure layer.
package service

import "time"

// Clock abstracts the current time for timestamping cart mutations.
type Clock interface {
	Now() time.Time
}
