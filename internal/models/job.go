package models

import "time"

// JobPosting is a company's job offer. It stays invisible to students until
// a TPO verifies it.
type JobPosting struct {
	BaseModel
	CompanyID           string     `gorm:"not null;index" json:"companyId"`
	JobTitle            string     `gorm:"not null" json:"jobTitle"`
	Description         string     `gorm:"type:text" json:"description"`
	Location            string     `json:"location"`
	ImgURL              string     `gorm:"column:imgurl" json:"imgurl"`
	Salary              *float64   `json:"salary,omitempty"`
	PostedDate          time.Time  `json:"postedDate"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Active              bool       `gorm:"default:true" json:"active"`
	Verified            bool       `gorm:"default:false" json:"verified"`
	Degree              string     `json:"degree"`
	MinCGPA             *float64   `gorm:"column:min_cgpa" json:"minCgpa,omitempty"`
	MinExperienceMonths *int       `json:"minExperienceMonths,omitempty"`

	Branches     []JobBranch   `gorm:"foreignKey:JobID" json:"branches,omitempty"`
	Skills       []JobSkill    `gorm:"foreignKey:JobID" json:"skills,omitempty"`
	ProcessSteps []ProcessStep `gorm:"foreignKey:JobID" json:"processSteps,omitempty"`
}

// JobBranch restricts a posting to an academic branch.
type JobBranch struct {
	BaseModel
	JobID      string `gorm:"not null;index" json:"jobId"`
	BranchName string `gorm:"not null" json:"branchName"`
}

type JobSkill struct {
	BaseModel
	JobID     string `gorm:"not null;index" json:"jobId"`
	SkillName string `gorm:"not null" json:"skillName"`
}

// ProcessStep is a named stage of a company's hiring pipeline, defined per
// job posting (e.g. "Technical Interview").
type ProcessStep struct {
	BaseModel
	JobID           string     `gorm:"not null;index" json:"jobId"`
	StepNumber      int        `gorm:"not null" json:"stepNumber"`
	StepName        string     `gorm:"not null" json:"stepName"`
	Description     string     `json:"description"`
	FromDate        *time.Time `json:"fromDate,omitempty"`
	TillDate        *time.Time `json:"tillDate,omitempty"`
	Location        string     `json:"location"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
}

// IsOpen reports whether students may currently apply.
func (j *JobPosting) IsOpen(now time.Time) bool {
	if !j.Active || !j.Verified {
		return false
	}
	if j.ApplicationDeadline != nil && now.After(*j.ApplicationDeadline) {
		return false
	}
	return true
}
