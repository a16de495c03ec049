package model

// SkillName 四项固定算术技能
type SkillName string

const (
	SkillAddition       SkillName = "addition"
	SkillSubtraction    SkillName = "subtraction"
	SkillMultiplication SkillName = "multiplication"
	SkillDivision       SkillName = "division"
)

// AllSkills 按展示顺序排列
var AllSkills = []SkillName{SkillAddition, SkillSubtraction, SkillMultiplication, SkillDivision}

func ValidSkill(name SkillName) bool {
	for _, s := range AllSkills {
		if s == name {
			return true
		}
	}
	return false
}

// AdvancedSkill 乘除法受档位门槛限制，加减法始终开放
func AdvancedSkill(name SkillName) bool {
	return name == SkillMultiplication || name == SkillDivision
}

// SkillState 每个学生每项技能一条，只存原始积分
// 等级与解锁状态都是读取时由积分和当前档位推导的，不落库
type SkillState struct {
	BaseModel
	StudentID uint      `gorm:"uniqueIndex:idx_student_skill;type:bigint unsigned;not null" json:"studentId"`
	SkillName SkillName `gorm:"uniqueIndex:idx_student_skill;size:20;not null" json:"skillName"`
	Points    int       `gorm:"default:0" json:"points"`
}

func (SkillState) TableName() string {
	return "skill_states"
}
