package service

import (
	"context"
	"time"

	"github.com/haierkeys/note-vault/internal/dto"
)

// dailyPrompts 每日写作提示语料，按年内天数轮换
var dailyPrompts = []string{
	"What made you smile today?",
	"Describe a challenge you overcame recently.",
	"What are three things you're grateful for?",
	"Write about a place you'd love to visit.",
	"What skill would you like to learn and why?",
	"Describe your perfect day.",
	"What advice would you give your younger self?",
	"Write about someone who inspires you.",
	"What's a goal you're working toward?",
	"Describe a memorable meal you've had.",
	"What book or movie changed your perspective?",
	"Write about a small moment of kindness you witnessed.",
	"What does success mean to you?",
	"Describe something you built or created.",
}

// PromptService 每日写作提示
type PromptService interface {
	Daily(ctx context.Context) *dto.PromptDTO
}

type promptService struct {
	now func() time.Time
}

// NewPromptService 创建 PromptService 实例
func NewPromptService() PromptService {
	return &promptService{now: time.Now}
}

// Daily picks the prompt for today. The same calendar day always yields the
// same prompt: index is day-of-year modulo the prompt count.
func (svc *promptService) Daily(ctx context.Context) *dto.PromptDTO {
	today := svc.now()
	return &dto.PromptDTO{
		Date:   today.Format("2006-01-02"),
		Prompt: dailyPrompts[today.YearDay()%len(dailyPrompts)],
	}
}
