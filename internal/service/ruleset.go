package service

import (
	"mathquest_backend/internal/config"
	"mathquest_backend/internal/model"
	"sync"
)

// Ruleset 持有进阶引擎的全部阈值表，支持配置热更新时整体换入
// 规则推导都是纯函数，读多写少，用读写锁保护快照
type Ruleset struct {
	mu  sync.RWMutex
	cfg config.ProgressionConfig
}

func NewRuleset(cfg config.ProgressionConfig) *Ruleset {
	return &Ruleset{cfg: cfg}
}

// Update 校验通过后换入新阈值表，失败时保留旧表
func (r *Ruleset) Update(cfg config.ProgressionConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()
	return nil
}

// Snapshot 返回当前阈值表的副本，同一次判分只用一份快照
func (r *Ruleset) Snapshot() config.ProgressionConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// ProfileForScore 定位测试得分率映射到初始档位
// 分段按 MinPercent 升序排列，取满足下限的最高段
func ProfileForScore(cfg config.ProgressionConfig, percentage float64) int {
	profile := cfg.PlacementBands[0].Profile
	for _, band := range cfg.PlacementBands {
		if percentage >= band.MinPercent {
			profile = band.Profile
		}
	}
	return profile
}

// LevelForPoints 技能积分映射到等级，阈值下闭上开，末档无上限
func LevelForPoints(cfg config.ProgressionConfig, points int) int {
	level := 0
	for i, min := range cfg.SkillLevelThresholds {
		if points >= min {
			level = i
		}
	}
	return level
}

// SkillUnlocked 乘除法需要档位达到门槛，加减法始终解锁
// 解锁状态每次读取时从当前档位现算，不落库
func SkillUnlocked(cfg config.ProgressionConfig, skill model.SkillName, profile int) bool {
	if !model.AdvancedSkill(skill) {
		return true
	}
	return profile >= cfg.SkillUnlockProfile
}

// QuizReward 测验积分：不及格不给分，及格给基础分，满分追加奖励
func QuizReward(cfg config.ProgressionConfig, percentage float64) int {
	if percentage < cfg.FailThreshold {
		return 0
	}
	reward := cfg.QuizBasePoints
	if percentage >= 100 {
		reward += cfg.PerfectBonusPoints
	}
	return reward
}
