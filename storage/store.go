package storage

import (
	"context"
	"errors"
)

// ErrFolderNotResolved is returned when the images action is invoked with no
// usable folder prefix, or the prefix cannot be listed.
var ErrFolderNotResolved = errors.New("storage folder not resolved")

// ErrObjectNotFound is returned by Get when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// Object is one fetched object. ContentType may be empty when the backend
// does not track one; callers are expected to sniff in that case.
type Object struct {
	Data        []byte
	ContentType string
}

// ObjectInfo describes one listed object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStore 는 워크북과 이미지 폴더가 올라가 있는 오브젝트 스토리지 추상화다.
// 프로덕션은 S3Store, 로컬 개발/테스트는 LocalStore 를 사용한다.
type ObjectStore interface {
	// Get reads the full object body and its content type.
	Get(ctx context.Context, key string) (Object, error)

	// List enumerates objects under prefix, in backend listing order.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// Ping verifies the backend is reachable. (health check 용)
	Ping(ctx context.Context) error
}
