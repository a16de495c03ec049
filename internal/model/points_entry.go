package model

// PointsReason 积分流水的来源
type PointsReason string

const (
	PointsReasonQuizReward   PointsReason = "quiz_reward"
	PointsReasonShopPurchase PointsReason = "shop_purchase"
	PointsReasonAdminGrant   PointsReason = "admin_grant"
)

// PointsEntry 积分流水，只追加不修改；余额维护在 StudentProgress 上
type PointsEntry struct {
	BaseModel
	StudentID uint         `gorm:"index;type:bigint unsigned;not null" json:"studentId"`
	Delta     int          `gorm:"not null" json:"delta"` // 正为获得，负为消费
	Reason    PointsReason `gorm:"size:30;not null" json:"reason"`
	Reference string       `gorm:"size:64" json:"reference"` // 关联的测验/订单标识
}

func (PointsEntry) TableName() string {
	return "points_entries"
}
