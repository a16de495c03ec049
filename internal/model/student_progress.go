package model

// StudentProgress 学生的进阶档案，每个学生一条
// swagger:model StudentProgress
type StudentProgress struct {
	BaseModel
	StudentID        uint `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"studentId"`
	CurrentProfile   *int `gorm:"default:null" json:"currentProfile"` // 1-10，定位测试前为空
	ConsecutiveFails int  `gorm:"default:0" json:"consecutiveFails"`  // 连续不及格次数
	TotalPoints      int  `gorm:"default:0" json:"totalPoints"`       // 可消费积分余额
	LifetimePoints   int  `gorm:"default:0" json:"lifetimePoints"`    // 历史累计获得积分，只增不减
	PlacementDone    bool `gorm:"default:false" json:"placementCompleted"`

	// 徽章判定使用的行为计数器，由判分流程维护
	QuizzesCompleted int `gorm:"default:0" json:"quizzesCompleted"`
	PerfectScores    int `gorm:"default:0" json:"perfectScores"`
	HighScores       int `gorm:"default:0" json:"highScores"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}

// ProfileOrZero 定位前返回 0，方便日志与响应里统一处理
func (p *StudentProgress) ProfileOrZero() int {
	if p.CurrentProfile == nil {
		return 0
	}
	return *p.CurrentProfile
}
