package repository

import (
	"context"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// RecordReader reads all rows of one record store collection.
type RecordReader interface {
	FetchRows(ctx context.Context, url string) ([]model.Row, error)
}

// Receipt describes the outcome of a write.
type Receipt struct {
	Endpoint string
	// Confirmed is true only when the backend acknowledged the write.
	Confirmed bool
}

// RecordWriter appends rows to a record store collection.
type RecordWriter interface {
	Append(ctx context.Context, url string, payload any) (Receipt, error)
}
