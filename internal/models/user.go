package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	ProfileImage string     `json:"profileImage,omitempty"`

	// Relations
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID" json:"studentProfile,omitempty"`
	CompanyProfile *CompanyProfile `gorm:"foreignKey:UserID" json:"companyProfile,omitempty"`
	Skills         []UserSkill     `gorm:"foreignKey:UserID" json:"skills,omitempty"`
	Experiences    []Experience    `gorm:"foreignKey:UserID" json:"experiences,omitempty"`
	Projects       []UserProject   `gorm:"foreignKey:UserID" json:"projects,omitempty"`
	Certifications []Certification `gorm:"foreignKey:UserID" json:"certifications,omitempty"`
	InterestedRoles     []InterestedRole    `gorm:"foreignKey:UserID" json:"interestedRoles,omitempty"`
	InterestedCompanies []InterestedCompany `gorm:"foreignKey:UserID" json:"interestedCompanies,omitempty"`
	Resumes        []Resume       `gorm:"foreignKey:UserID" json:"resumes,omitempty"`
	RefreshTokens  []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}

// UserSkill is a single named skill on a student profile.
type UserSkill struct {
	BaseModel
	UserID    string `gorm:"not null;index" json:"userId"`
	SkillName string `gorm:"not null" json:"skillName"`
}

type Experience struct {
	BaseModel
	UserID      string     `gorm:"not null;index" json:"userId"`
	Company     string     `json:"company"`
	Profile     string     `json:"profile"`
	FromDate    *time.Time `json:"fromDate,omitempty"`
	ToDate      *time.Time `json:"toDate,omitempty"`
	Description string     `json:"description"`
}

type UserProject struct {
	BaseModel
	UserID      string `gorm:"not null;index" json:"userId"`
	ProjectName string `gorm:"not null" json:"projectName"`
	Description string `json:"description"`
}

type Certification struct {
	BaseModel
	UserID            string     `gorm:"not null;index" json:"userId"`
	CertificationName string     `gorm:"not null" json:"certificationName"`
	Organization      string     `json:"organization"`
	IssueDate         *time.Time `json:"issueDate,omitempty"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty"`
	CredentialID      string     `json:"credentialId"`
}

// InterestedRole is a role the student wants to be matched against.
type InterestedRole struct {
	BaseModel
	UserID   string `gorm:"not null;index" json:"userId"`
	RoleName string `gorm:"not null" json:"roleName"`
}

// InterestedCompany is a company the student wants to be matched against.
type InterestedCompany struct {
	BaseModel
	UserID      string `gorm:"not null;index" json:"userId"`
	CompanyName string `gorm:"not null" json:"companyName"`
}
