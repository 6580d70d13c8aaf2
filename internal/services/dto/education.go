package dto

// EducationInfoResponse is the education subset of a student profile.
type EducationInfoResponse struct {
	Degree           string  `json:"degree"`
	Branch           string  `json:"branch"`
	YearOfGraduation int     `json:"yearOfGraduation"`
	CGPA             float64 `json:"cgpa"`
	RollNo           string  `json:"rollno"`
	UniversityName   string  `json:"universityName"`
}

type UpdateEducationInfoRequest struct {
	Degree           *string  `json:"degree,omitempty" validate:"omitempty,max=100"`
	Branch           *string  `json:"branch,omitempty" validate:"omitempty,max=100"`
	YearOfGraduation *int     `json:"yearOfGraduation,omitempty" validate:"omitempty,min=1950,max=2100"`
	CGPA             *float64 `json:"cgpa,omitempty" validate:"omitempty,min=0,max=10"`
	RollNo           *string  `json:"rollno,omitempty" validate:"omitempty,max=50"`
	UniversityName   *string  `json:"universityName,omitempty" validate:"omitempty,max=200"`
}
