package global

import (
	"fmt"
	"runtime"

	dumpx "github.com/gookit/goutil/dump"
	"go.uber.org/zap"
)

// Logger 进程级日志器，服务启动时注入
var Logger *zap.Logger

func Log() *zap.Logger {
	return Logger
}

// Dump prints values with the caller position, debug-mode console helper.
// Dump 带调用位置的控制台调试输出，仅在 debug 模式使用。
func Dump(a ...any) {
	if _, file, line, ok := runtime.Caller(1); ok {
		fmt.Printf("\033[32m%s:%d:\033[0m\n", file, line)
	}
	dumpx.P(a...)
}
