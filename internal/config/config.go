package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Storage     StorageConfig
	Tracing     TracingConfig     `mapstructure:"tracing"`
	CORS        CORSConfig        `mapstructure:"cors"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	Progression ProgressionConfig `mapstructure:"progression"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"` // 强制执行数据库迁移
	MigrateOnly  bool `mapstructure:"-"` // 仅迁移模式（迁移后退出）
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// PlacementBand 定位测试分段：得分率达到 MinPercent 及以上进入 Profile 档位
type PlacementBand struct {
	MinPercent float64 `mapstructure:"min_percent"`
	Profile    int     `mapstructure:"profile"`
}

// ProgressionConfig 进阶引擎的全部调参项，集中在一张表里，避免散落的魔法数字
type ProgressionConfig struct {
	AdvanceThreshold     float64         `mapstructure:"advance_threshold"`      // 得分率 >= 该值则晋级
	FailThreshold        float64         `mapstructure:"fail_threshold"`         // 得分率 < 该值计一次连败
	DemoteStreak         int             `mapstructure:"demote_streak"`          // 连败达到该次数则降级
	HighScoreThreshold   float64         `mapstructure:"high_score_threshold"`   // 高分徽章计数阈值
	MinProfile           int             `mapstructure:"min_profile"`
	MaxProfile           int             `mapstructure:"max_profile"`
	SkillUnlockProfile   int             `mapstructure:"skill_unlock_profile"`   // 乘除法解锁所需档位
	SkillLevelThresholds []int           `mapstructure:"skill_level_thresholds"` // 技能等级积分下限，下闭上开
	PlacementBands       []PlacementBand `mapstructure:"placement_bands"`
	QuizBasePoints       int             `mapstructure:"quiz_base_points"`       // 及格测验的基础积分
	PerfectBonusPoints   int             `mapstructure:"perfect_bonus_points"`   // 满分额外奖励
}

// applyDefaults 补齐缺省的进阶参数，缺省值即产品当前的行为基线
func (p *ProgressionConfig) applyDefaults() {
	if p.AdvanceThreshold == 0 {
		p.AdvanceThreshold = 70
	}
	if p.FailThreshold == 0 {
		p.FailThreshold = 50
	}
	if p.DemoteStreak == 0 {
		p.DemoteStreak = 6
	}
	if p.HighScoreThreshold == 0 {
		p.HighScoreThreshold = 90
	}
	if p.MinProfile == 0 {
		p.MinProfile = 1
	}
	if p.MaxProfile == 0 {
		p.MaxProfile = 10
	}
	if p.SkillUnlockProfile == 0 {
		p.SkillUnlockProfile = 6
	}
	if len(p.SkillLevelThresholds) == 0 {
		p.SkillLevelThresholds = []int{0, 25, 50, 100, 200, 400}
	}
	if len(p.PlacementBands) == 0 {
		for i := 0; i < 10; i++ {
			p.PlacementBands = append(p.PlacementBands, PlacementBand{
				MinPercent: float64(i * 10),
				Profile:    i + 1,
			})
		}
	}
	if p.QuizBasePoints == 0 {
		p.QuizBasePoints = 10
	}
	if p.PerfectBonusPoints == 0 {
		p.PerfectBonusPoints = 5
	}
}

// Validate 校验进阶参数的一致性，配置热更新时同样会走这里
func (p *ProgressionConfig) Validate() error {
	if p.FailThreshold >= p.AdvanceThreshold {
		return fmt.Errorf("fail_threshold (%v) must be below advance_threshold (%v)", p.FailThreshold, p.AdvanceThreshold)
	}
	if p.DemoteStreak < 1 {
		return fmt.Errorf("demote_streak must be at least 1, got %d", p.DemoteStreak)
	}
	if p.MinProfile < 1 || p.MaxProfile <= p.MinProfile {
		return fmt.Errorf("invalid profile range [%d, %d]", p.MinProfile, p.MaxProfile)
	}
	if len(p.SkillLevelThresholds) == 0 {
		return fmt.Errorf("skill_level_thresholds must not be empty")
	}
	if !sort.IntsAreSorted(p.SkillLevelThresholds) || p.SkillLevelThresholds[0] != 0 {
		return fmt.Errorf("skill_level_thresholds must be ascending and start at 0")
	}
	bands := p.PlacementBands
	if len(bands) == 0 {
		return fmt.Errorf("placement_bands must not be empty")
	}
	if bands[0].MinPercent != 0 {
		return fmt.Errorf("placement_bands must cover 0%% upward")
	}
	for i, b := range bands {
		if b.Profile < p.MinProfile || b.Profile > p.MaxProfile {
			return fmt.Errorf("placement band %d maps to profile %d outside [%d, %d]", i, b.Profile, p.MinProfile, p.MaxProfile)
		}
		if i > 0 && bands[i].MinPercent <= bands[i-1].MinPercent {
			return fmt.Errorf("placement_bands must be strictly ascending at index %d", i)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("MATHQUEST")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Progression.applyDefaults()
	if err := cfg.Progression.Validate(); err != nil {
		return nil, err
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
