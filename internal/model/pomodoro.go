package model

import (
	"github.com/haierkeys/note-vault/pkg/timex"
)

// PomodoroState 每个身份一份的番茄钟设置与完成计数
// Persisted under "pomodoro_<ownerID>"; the countdown itself runs client-side.
type PomodoroState struct {
	// FocusMinutes 专注时长（分钟）
	FocusMinutes int `json:"focusMinutes"`
	// BreakMinutes 休息时长（分钟）
	BreakMinutes int `json:"breakMinutes"`
	// CompletedSessions 已完成的专注次数
	CompletedSessions int `json:"completedSessions"`
	// UpdatedAt 最后修改时间
	UpdatedAt timex.Time `json:"updatedAt"`
}

// DefaultPomodoroState 默认 25/5 设置
func DefaultPomodoroState() *PomodoroState {
	return &PomodoroState{FocusMinutes: 25, BreakMinutes: 5}
}
