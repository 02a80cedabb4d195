// Package storage provides blob storage for files uploaded to the job board.
// It defines the Storage interface (port) and implementations for local disk
// and S3.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrBlobNotFound is returned when a stored blob does not exist.
var ErrBlobNotFound = errors.New("blob not found")

// Storage defines the interface for file content storage.
type Storage interface {
	// Put stores data under key and returns the location to read it back.
	Put(ctx context.Context, key string, data io.Reader) (location string, err error)

	// Open returns a reader for the blob at location.
	// The caller is responsible for closing the returned ReadCloser.
	// Returns ErrBlobNotFound if nothing is stored there.
	Open(ctx context.Context, location string) (io.ReadCloser, error)

	// Remove deletes the blob at location. Removing a missing blob is not an error.
	Remove(ctx context.Context, location string) error
}
