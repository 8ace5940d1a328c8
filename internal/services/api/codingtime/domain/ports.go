package domain

import "context"

// ServicePort defines the service contract for codingtime
type ServicePort interface {
	Stats(ctx context.Context, rng string) (CodingStats, error)
}
