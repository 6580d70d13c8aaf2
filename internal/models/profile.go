package models

// StudentProfile carries the personal and education fields shown on the
// student dashboard and used for job matching.
type StudentProfile struct {
	BaseModel
	UserID           string  `gorm:"not null;uniqueIndex" json:"userId"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	MotherName       string  `json:"motherName"`
	Degree           string  `json:"degree"`
	Branch           string  `json:"branch"`
	YearOfGraduation int     `json:"yearOfGraduation"`
	CGPA             float64 `gorm:"column:cgpa" json:"cgpa"`
	RollNo           string  `gorm:"column:rollno" json:"rollno"`
	UniversityName   string  `json:"universityName"`
}

// CompanyProfile is the public face of a company account.
type CompanyProfile struct {
	BaseModel
	UserID      string `gorm:"not null;uniqueIndex" json:"userId"`
	CompanyName string `gorm:"not null" json:"companyName"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Verified    bool   `gorm:"default:false" json:"verified"`
}
