package repository

import "context"

// LogRepository returns the most recent application log lines, oldest first.
type LogRepository interface {
	Tail(ctx context.Context, lines int) ([]string, error)
}
