// Package sqlite_db 以 SQLite 单表为介质的键值存储
package sqlite_db

import (
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// record 键值记录
type record struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (record) TableName() string {
	return "kv"
}

type SQLiteDB struct {
	db *gorm.DB
}

func NewClient(path string) (*SQLiteDB, error) {
	if path == "" {
		return nil, errors.New("sqlite_db: path is required")
	}
	// 数据库文件的父目录需要预先存在
	if err := os.MkdirAll(filepath.Dir(path), 0754); err != nil {
		return nil, errors.Wrap(err, "sqlite_db: create dir")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "sqlite_db: open")
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, errors.Wrap(err, "sqlite_db: migrate")
	}
	return &SQLiteDB{db: db}, nil
}

func (s *SQLiteDB) Get(key string) (string, bool, error) {
	var rec record
	err := s.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "sqlite_db: get %s", key)
	}
	return rec.Value, true, nil
}

func (s *SQLiteDB) Set(key string, value string) error {
	rec := record{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Save(&rec).Error
	if err != nil {
		return errors.Wrapf(err, "sqlite_db: set %s", key)
	}
	return nil
}

func (s *SQLiteDB) Delete(key string) error {
	err := s.db.Where("key = ?", key).Delete(&record{}).Error
	if err != nil {
		return errors.Wrapf(err, "sqlite_db: delete %s", key)
	}
	return nil
}

func (s *SQLiteDB) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
