package model

import "time"

// BadgeCriteriaType 徽章判定依据的计数器类型
type BadgeCriteriaType string

const (
	CriteriaQuizzesCompleted     BadgeCriteriaType = "quizzes_completed"
	CriteriaLoginStreak          BadgeCriteriaType = "login_streak"
	CriteriaPerfectScores        BadgeCriteriaType = "perfect_scores"
	CriteriaHighScores           BadgeCriteriaType = "high_scores"
	CriteriaPointsEarned         BadgeCriteriaType = "points_earned"
	CriteriaAssignmentsCompleted BadgeCriteriaType = "assignments_completed"
)

// ValidCriteriaType 判断是否是已知的判定类型
func ValidCriteriaType(t BadgeCriteriaType) bool {
	switch t {
	case CriteriaQuizzesCompleted, CriteriaLoginStreak, CriteriaPerfectScores,
		CriteriaHighScores, CriteriaPointsEarned, CriteriaAssignmentsCompleted:
		return true
	}
	return false
}

// BadgeRarity 仅用于展示排序，不参与解锁判定
type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

// Badge 管理员维护的徽章目录
// swagger:model Badge
type Badge struct {
	BaseModel
	Name          string            `gorm:"size:100;not null" json:"name"`
	Description   string            `gorm:"size:255" json:"description"`
	Icon          string            `gorm:"size:255" json:"icon"`
	CriteriaType  BadgeCriteriaType `gorm:"size:30;not null" json:"criteriaType"`
	CriteriaValue int               `gorm:"not null" json:"criteriaValue"`
	Rarity        BadgeRarity       `gorm:"size:15;default:'common'" json:"rarity"`
	Enabled       bool              `gorm:"default:true" json:"enabled"`
}

func (Badge) TableName() string {
	return "badges"
}

// EarnedBadge 获得记录，(student_id, badge_id) 唯一，一经写入永不撤销
// 同时快照当时的判定条件，目录后续修改不影响已获得的徽章
type EarnedBadge struct {
	BaseModel
	StudentID     uint              `gorm:"uniqueIndex:idx_student_badge;type:bigint unsigned;not null" json:"studentId"`
	BadgeID       uint              `gorm:"uniqueIndex:idx_student_badge;type:bigint unsigned;not null" json:"badgeId"`
	EarnedAt      time.Time         `gorm:"not null" json:"earnedAt"`
	CriteriaType  BadgeCriteriaType `gorm:"size:30" json:"criteriaType"`
	CriteriaValue int               `json:"criteriaValue"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
}

func (EarnedBadge) TableName() string {
	return "earned_badges"
}
