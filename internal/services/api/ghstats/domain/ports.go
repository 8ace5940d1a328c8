package domain

import "context"

// ServicePort defines the service contract for ghstats
type ServicePort interface {
	Stats(ctx context.Context) (Stats, error)
}
