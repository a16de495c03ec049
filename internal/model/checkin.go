package model

import "time"

// Checkin 记录学生的每日签到，连续天数喂给 login_streak 徽章计数
// (student_id, checkin_date) 唯一索引保证并发签到只会落库一条
// swagger:model Checkin
type Checkin struct {
	BaseModel
	StudentID   uint      `gorm:"uniqueIndex:idx_student_checkin_date;type:bigint unsigned;not null" json:"studentId"`
	CheckinAt   time.Time `gorm:"not null" json:"checkinAt"`
	CheckinDate string    `gorm:"uniqueIndex:idx_student_checkin_date;size:10;not null" json:"-"`
	StreakDays  int       `gorm:"default:1" json:"streakDays"` // 连续签到天数
}

// DateKey 自然日归一化成索引键
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (Checkin) TableName() string {
	return "checkins"
}
