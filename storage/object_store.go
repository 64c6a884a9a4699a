package storage

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectStore - минимальный интерфейс S3-совместимого бакета.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, body []byte) error
	// Get возвращает ErrObjectNotFound, если ключа нет.
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
