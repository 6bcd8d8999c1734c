// Package memory 内存键值存储，主要用于测试
package memory

import (
	"sync"
)

type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewClient() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *Memory) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Memory) Close() error {
	return nil
}
