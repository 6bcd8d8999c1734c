package model

import (
	"github.com/haierkeys/note-vault/pkg/timex"
)

// UserSettings 用户偏好设置
type UserSettings struct {
	// Theme 界面主题
	Theme string `json:"theme"`
	// DefaultView 默认视图
	DefaultView string `json:"defaultView"`
}

// User is a mock-auth account persisted in the storage medium under the
// shared "users" key. The password is a bcrypt hash; nothing beyond that
// pretends to be real credential handling.
// User 持久化在介质 "users" 键下的模拟账号，密码为 bcrypt 哈希。
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	PasswordHash string       `json:"passwordHash"`
	CreatedAt    timex.Time   `json:"createdAt"`
	Settings     UserSettings `json:"settings"`
}
