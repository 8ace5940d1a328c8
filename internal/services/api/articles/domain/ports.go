package domain

import "context"

// ServicePort defines the service contract for articles
type ServicePort interface {
	List(ctx context.Context, username string, perPage int) ([]BlogPost, error)
	Get(ctx context.Context, id int) (BlogPost, error)
}
