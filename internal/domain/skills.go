package domain

import "fmt"

// Skill is one of the six base skills. The declaration order is the
// canonical order used for pair keys and reports.
type Skill int

const (
	Command Skill = iota
	Science
	Security
	Engineering
	Diplomacy
	Medicine
)

// Skills lists every skill in canonical order.
var Skills = []Skill{Command, Science, Security, Engineering, Diplomacy, Medicine}

var skillNames = [...]string{
	Command:     "command_skill",
	Science:     "science_skill",
	Security:    "security_skill",
	Engineering: "engineering_skill",
	Diplomacy:   "diplomacy_skill",
	Medicine:    "medicine_skill",
}

var skillCodes = [...]string{
	Command:     "CMD",
	Science:     "SCI",
	Security:    "SEC",
	Engineering: "ENG",
	Diplomacy:   "DIP",
	Medicine:    "MED",
}

func (s Skill) valid() bool {
	return s >= Command && s <= Medicine
}

// Name is the base_skills key, e.g. "command_skill".
func (s Skill) Name() string {
	if !s.valid() {
		return fmt.Sprintf("skill(%d)", int(s))
	}
	return skillNames[s]
}

// Code is the short form used in rank keys, e.g. "CMD".
func (s Skill) Code() string {
	if !s.valid() {
		return fmt.Sprintf("skill(%d)", int(s))
	}
	return skillCodes[s]
}

func (s Skill) String() string {
	return s.Code()
}

// SkillByCode resolves a short code such as "SCI".
func SkillByCode(code string) (Skill, bool) {
	for _, s := range Skills {
		if skillCodes[s] == code {
			return s, true
		}
	}
	return 0, false
}

// SkillByName resolves a base_skills key such as "science_skill".
func SkillByName(name string) (Skill, bool) {
	for _, s := range Skills {
		if skillNames[s] == name {
			return s, true
		}
	}
	return 0, false
}

// StatsFor returns the crew member's values for s; ok is false when the
// crew member does not have the skill.
func (c *CrewMember) StatsFor(s Skill) (SkillStats, bool) {
	st, ok := c.BaseSkills[s.Name()]
	return st, ok
}
