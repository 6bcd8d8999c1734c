package store

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoteNotFound 操作引用的笔记 ID 不在集合中
	// The tolerant-update behavior of the source is replaced by an explicit
	// error, applied consistently across toggle/update/delete/restore/purge.
	ErrNoteNotFound = errors.New("store: note not found")

	// ErrImport 导入载荷的顶层结构不是笔记数组
	ErrImport = errors.New("store: import payload is not a note array")
)

// StorageError marks a failed read or write of the backing medium. It is
// never swallowed: data loss would otherwise be invisible to the user.
// StorageError 介质读写失败，必须向上传播。
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageFailure reports whether err is (or wraps) a StorageError.
func IsStorageFailure(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
