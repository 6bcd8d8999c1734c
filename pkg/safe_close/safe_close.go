// Package safe_close 提供优雅关闭协调器
package safe_close

import (
	"sync"
)

// SafeClose coordinates the shutdown of multiple background routines.
// Routines are attached with Attach and observe the close signal channel;
// WaitClosed blocks until every attached routine has called done.
// SafeClose 协调多个后台协程的关闭：Attach 注册协程并监听关闭信号，
// WaitClosed 阻塞直到所有协程完成。
type SafeClose struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	closeSignal chan struct{}
	closed      bool
	err         error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine. f must call done when it has fully
// stopped and should return promptly once closeSignal is closed.
// Attach 启动协程，f 结束时必须调用 done；closeSignal 关闭后应尽快返回。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var once sync.Once
	done := func() {
		once.Do(s.wg.Done)
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal closes the signal channel. The first non-nil error wins.
// SendCloseSignal 发送关闭信号，首个非 nil 错误会被保留。
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until all attached routines are done and returns the
// error passed to SendCloseSignal, if any.
// WaitClosed 等待所有协程退出，返回关闭时记录的错误。
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// CloseSignal exposes the signal channel for ad-hoc select loops.
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}
