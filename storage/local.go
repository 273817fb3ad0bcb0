package storage

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalStore 는 로컬 디렉터리를 오브젝트 스토어처럼 노출한다.
// 키는 디렉터리 루트 기준 상대 경로(슬래시 구분)를 사용한다.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("local store: %s is not a directory", root)
	}
	return &LocalStore{root: root}, nil
}

func (l *LocalStore) Get(ctx context.Context, key string) (Object, error) {
	data, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return Object{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return Object{}, fmt.Errorf("failed to read %s: %w", key, err)
	}

	// 확장자 기반 추정. 알 수 없으면 비워 두고 호출 측에서 스니핑한다.
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	return Object{Data: data, ContentType: contentType}, nil
}

func (l *LocalStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var infos []ObjectInfo

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		infos = append(infos, ObjectInfo{Key: key, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
	}

	// WalkDir 는 사전순이지만, 테스트 재현성을 위해 명시적으로 고정한다.
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })

	return infos, nil
}

func (l *LocalStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(l.root); err != nil {
		return fmt.Errorf("local store unreachable: %w", err)
	}
	return nil
}
