package model

// ProcessedAttempt 已消费的判分结果，attempt_id 唯一索引用于挡住重放提交
type ProcessedAttempt struct {
	BaseModel
	AttemptID  string  `gorm:"uniqueIndex;size:36;not null" json:"attemptId"`
	StudentID  uint    `gorm:"index;type:bigint unsigned;not null" json:"studentId"`
	Percentage float64 `gorm:"not null" json:"percentage"`
	OldProfile int     `json:"oldProfile"`
	NewProfile int     `json:"newProfile"`
	ChangeType string  `gorm:"size:10" json:"changeType"`
}

func (ProcessedAttempt) TableName() string {
	return "processed_attempts"
}
