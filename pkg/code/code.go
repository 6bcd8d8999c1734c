// Package code 定义 API 状态码注册表
package code

import (
	"fmt"
	"net/http"
)

// Code carries an API status code, its localized message and optional
// response payload. Codes are registered once at init time; duplicate
// registration panics.
// Code 携带 API 状态码、本地化消息与可选数据；重复注册会 panic。
type Code struct {
	// 状态码
	code int
	// 状态
	status bool
	// 消息文本
	Lang lang
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}
var sussCodes = map[int]string{}

// NewError registers a failure code.
// NewError 注册一个错误码
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("error code %d already exists, please choose another one", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, status: false, Lang: l}
}

// NewSuss registers a success code.
// NewSuss 注册一个成功码
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("success code %d already exists, please choose another one", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本，避免 WithData/WithDetails 修改共享实例
func (e *Code) Clone() *Code {
	return &Code{
		code:   e.code,
		status: e.status,
		Lang:   e.Lang,
	}
}

// Error 实现 error 接口
func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

// WithData 返回携带数据的副本
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

// WithDetails 返回携带详情的副本
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

// StatusCode HTTP 状态码恒为 200，业务状态由 code 字段表达
func (e *Code) StatusCode() int {
	return http.StatusOK
}
