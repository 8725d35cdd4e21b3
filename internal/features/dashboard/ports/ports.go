package ports

import "context"

// StatusCounter is the slice of a repository the stats service needs.
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
