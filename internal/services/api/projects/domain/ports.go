package domain

import "context"

// ServicePort defines the service contract for projects
type ServicePort interface {
	Latest(ctx context.Context, count int) ([]Project, error)
}
