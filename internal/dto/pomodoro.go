package dto

// PomodoroUpdateRequest 番茄钟设置更新参数
type PomodoroUpdateRequest struct {
	FocusMinutes int `json:"focusMinutes" form:"focusMinutes" binding:"required,min=1,max=180"`
	BreakMinutes int `json:"breakMinutes" form:"breakMinutes" binding:"required,min=1,max=60"`
}
