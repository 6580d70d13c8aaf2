package dto

// OverviewResponse is the TPO dashboard summary.
type OverviewResponse struct {
	TotalStudents        int64            `json:"totalStudents"`
	TotalCompanies       int64            `json:"totalCompanies"`
	ActiveJobs           int64            `json:"activeJobs"`
	VerifiedJobs         int64            `json:"verifiedJobs"`
	TotalApplications    int64            `json:"totalApplications"`
	ApplicationsByStage  map[string]int64 `json:"applicationsByStage"`
	TotalStepCompletions int64            `json:"totalStepCompletions"`
}
