package model

// UnlimitedStock stock 为 -1 表示不限量，0 表示售罄
const UnlimitedStock = -1

// ShopItem 积分商城的商品
// swagger:model ShopItem
type ShopItem struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Image       string `gorm:"size:255" json:"image"`
	Cost        int    `gorm:"not null" json:"cost"`
	Stock       int    `gorm:"default:-1" json:"stock"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
}

func (ShopItem) TableName() string {
	return "shop_items"
}

// Purchase 购买事实记录，创建时与扣积分、减库存在同一事务内提交
type Purchase struct {
	UUIDBase
	StudentID uint `gorm:"index;type:bigint unsigned;not null" json:"studentId"`
	ItemID    uint `gorm:"index;type:bigint unsigned;not null" json:"itemId"`
	CostPaid  int  `gorm:"not null" json:"costPaid"`

	Item ShopItem `gorm:"foreignKey:ItemID" json:"item"`
}

func (Purchase) TableName() string {
	return "purchases"
}
