package models

import "context"

type Querier interface {
	Query(ctx context.Context) error
}
