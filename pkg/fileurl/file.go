// Package fileurl 提供文件路径相关的工具函数
package fileurl

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsExist determines if a file or directory exists
// IsExist 判断文件或目录是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates the parent directory of dst
// CreatePath 创建目标文件的父级目录
func CreatePath(dst string, perm os.FileMode) error {
	dir := filepath.Dir(dst)
	return os.MkdirAll(dir, perm)
}

// GetExePath gets path of current execution file
// GetExePath 获取当前执行文件的路径
func GetExePath() string {
	file, _ := exec.LookPath(os.Args[0])
	path, _ := filepath.Abs(file)
	index := strings.LastIndex(path, string(os.PathSeparator))
	return path[:index]
}
