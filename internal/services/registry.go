package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         *AuthService
	UserService         *UserService
	ProfileService      *ProfileService
	EducationService    *EducationService
	JobService          *JobService
	ApplicationService  *ApplicationService
	MatchingService     *MatchingService
	NotificationService *NotificationService
	AnalyticsService    *AnalyticsService
	ResumeService       *ResumeService
}
