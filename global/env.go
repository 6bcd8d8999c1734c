package global

import (
	"github.com/haierkeys/note-vault/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Note Vault Service"
	// Version 与构建注入的版本保持一致，供中间件上报
	Version string = "1.0.0"
)

func init() {
	filename := fileurl.GetExePath()
	ROOT = filename + "/"
}
