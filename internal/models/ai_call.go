package models

import "time"

const (
	AICallOutcomeOK          = "ok"
	AICallOutcomeFallback    = "fallback"
	AICallOutcomeRateLimited = "rate_limited"
	AICallOutcomeError       = "error"
)

type AICall struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Operation        string    `gorm:"not null" json:"operation"`
	Model            string    `gorm:"not null" json:"model"`
	Attempts         int       `gorm:"not null" json:"attempts"`
	Outcome          string    `gorm:"not null" json:"outcome"`
	LatencyMS        int64     `gorm:"column:latency_ms;not null" json:"latencyMs"`
	PromptTokens     int       `gorm:"not null" json:"promptTokens"`
	CompletionTokens int       `gorm:"not null" json:"completionTokens"`
	Error            string    `gorm:"not null" json:"error,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TableName pins the table name; the default naming splits the initialism.
func (AICall) TableName() string {
	return "ai_calls"
}

// AICallOutcomeCount aggregates recorded calls per operation and outcome.
type AICallOutcomeCount struct {
	Operation string `gorm:"column:operation" json:"operation"`
	Outcome   string `gorm:"column:outcome" json:"outcome"`
	Calls     int64  `gorm:"column:calls" json:"calls"`
	Attempts  int64  `gorm:"column:attempts" json:"attempts"`
}
