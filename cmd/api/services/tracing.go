package services

import (
	"context"
	"time"

	"portfolio-api/cmd/api/trace"
	"portfolio-api/cmd/internal/logger"
	"portfolio-api/storage"
)

// 모든 아웃바운드 오브젝트 스토어 호출은 여기서 공통 로깅을 거친다.
// 한 요청 안에서 호출이 여러 번 일어나면 span_id 는 1,2,3,... 순차 증가한다.

func tracedGet(ctx context.Context, store storage.ObjectStore, key string) (storage.Object, error) {
	requestID, spanID := trace.NextSpanID(ctx)
	start := time.Now()

	obj, err := store.Get(ctx, key)
	fields := logger.Fields{
		"op":         "get",
		"key":        key,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("object store call failed", fields)
		return storage.Object{}, err
	}
	logger.DebugWithFields("object store call completed", fields)
	return obj, nil
}

func tracedList(ctx context.Context, store storage.ObjectStore, prefix string) ([]storage.ObjectInfo, error) {
	requestID, spanID := trace.NextSpanID(ctx)
	start := time.Now()

	infos, err := store.List(ctx, prefix)
	fields := logger.Fields{
		"op":         "list",
		"prefix":     prefix,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("object store call failed", fields)
		return nil, err
	}
	logger.DebugWithFields("object store call completed", fields)
	return infos, nil
}
