package database

import (
	"fmt"
	"log"
	"mathquest_backend/internal/config"
	"mathquest_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.StudentProgress{},
		&model.SkillState{},
		&model.PointsEntry{},
		&model.ProcessedAttempt{},
		&model.Badge{},
		&model.EarnedBadge{},
		&model.ShopItem{},
		&model.Purchase{},
		&model.Checkin{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedBadges(db)
	seedShopItems(db)

	return db, nil
}

// seedBadges 空库时插入默认徽章目录
func seedBadges(db *gorm.DB) {
	var count int64
	db.Model(&model.Badge{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Badge{
		{Name: "初试身手", Description: "完成第一次测验", CriteriaType: model.CriteriaQuizzesCompleted, CriteriaValue: 1, Rarity: model.RarityCommon, Enabled: true},
		{Name: "测验达人", Description: "累计完成 25 次测验", CriteriaType: model.CriteriaQuizzesCompleted, CriteriaValue: 25, Rarity: model.RarityRare, Enabled: true},
		{Name: "百战不殆", Description: "累计完成 100 次测验", CriteriaType: model.CriteriaQuizzesCompleted, CriteriaValue: 100, Rarity: model.RarityEpic, Enabled: true},
		{Name: "满分时刻", Description: "拿到第一个满分", CriteriaType: model.CriteriaPerfectScores, CriteriaValue: 1, Rarity: model.RarityRare, Enabled: true},
		{Name: "完美主义者", Description: "累计 10 次满分", CriteriaType: model.CriteriaPerfectScores, CriteriaValue: 10, Rarity: model.RarityLegendary, Enabled: true},
		{Name: "高分选手", Description: "累计 10 次高分测验", CriteriaType: model.CriteriaHighScores, CriteriaValue: 10, Rarity: model.RarityRare, Enabled: true},
		{Name: "坚持一周", Description: "连续签到 7 天", CriteriaType: model.CriteriaLoginStreak, CriteriaValue: 7, Rarity: model.RarityRare, Enabled: true},
		{Name: "风雨无阻", Description: "连续签到 30 天", CriteriaType: model.CriteriaLoginStreak, CriteriaValue: 30, Rarity: model.RarityEpic, Enabled: true},
		{Name: "积分新秀", Description: "累计获得 100 积分", CriteriaType: model.CriteriaPointsEarned, CriteriaValue: 100, Rarity: model.RarityCommon, Enabled: true},
		{Name: "积分大亨", Description: "累计获得 1000 积分", CriteriaType: model.CriteriaPointsEarned, CriteriaValue: 1000, Rarity: model.RarityEpic, Enabled: true},
		{Name: "作业能手", Description: "完成 10 次作业", CriteriaType: model.CriteriaAssignmentsCompleted, CriteriaValue: 10, Rarity: model.RarityCommon, Enabled: true},
	}
	for i := range defaults {
		db.Create(&defaults[i])
	}
	log.Println("Seeded default badge catalog")
}

// seedShopItems 空库时插入默认商品
func seedShopItems(db *gorm.DB) {
	var count int64
	db.Model(&model.ShopItem{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.ShopItem{
		{Name: "星空头像框", Description: "个人主页头像装饰", Cost: 50, Stock: model.UnlimitedStock, Enabled: true},
		{Name: "金色昵称", Description: "排行榜上的金色昵称特效", Cost: 120, Stock: model.UnlimitedStock, Enabled: true},
		{Name: "错题重做券", Description: "重做一次测验且不计入连败", Cost: 80, Stock: model.UnlimitedStock, Enabled: true},
		{Name: "限定徽章挂饰", Description: "限量发售的徽章展示挂饰", Cost: 200, Stock: 100, Enabled: true},
	}
	for i := range defaults {
		db.Create(&defaults[i])
	}
	log.Println("Seeded default shop items")
}
