package dto

import "time"

// --- Student Profile ---

type UpdateStudentProfileRequest struct {
	FirstName        *string  `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName         *string  `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Phone            *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address          *string  `json:"address,omitempty" validate:"omitempty,max=500"`
	MotherName       *string  `json:"motherName,omitempty" validate:"omitempty,max=100"`
	Degree           *string  `json:"degree,omitempty" validate:"omitempty,max=100"`
	Branch           *string  `json:"branch,omitempty" validate:"omitempty,max=100"`
	YearOfGraduation *int     `json:"yearOfGraduation,omitempty" validate:"omitempty,min=1950,max=2100"`
	CGPA             *float64 `json:"cgpa,omitempty" validate:"omitempty,min=0,max=10"`
	RollNo           *string  `json:"rollno,omitempty" validate:"omitempty,max=50"`
	UniversityName   *string  `json:"universityName,omitempty" validate:"omitempty,max=200"`
}

// --- Company Profile ---

type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"companyName,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
}

// --- Profile Sub-Collections ---

type AddSkillRequest struct {
	SkillName string `json:"skillName" validate:"required,max=100"`
}

type AddExperienceRequest struct {
	Company     string     `json:"company" validate:"required,max=200"`
	Profile     string     `json:"profile" validate:"omitempty,max=200"`
	FromDate    *time.Time `json:"fromDate,omitempty"`
	ToDate      *time.Time `json:"toDate,omitempty"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
}

type AddProjectRequest struct {
	ProjectName string `json:"projectName" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type AddCertificationRequest struct {
	CertificationName string     `json:"certificationName" validate:"required,max=200"`
	Organization      string     `json:"organization" validate:"omitempty,max=200"`
	IssueDate         *time.Time `json:"issueDate,omitempty"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty"`
	CredentialID      string     `json:"credentialId" validate:"omitempty,max=200"`
}

type AddInterestedRoleRequest struct {
	RoleName string `json:"roleName" validate:"required,max=100"`
}

type AddInterestedCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=200"`
}
