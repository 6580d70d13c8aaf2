package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	EducationHandler    *EducationHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	CompanyHandler      *CompanyHandler
	NotificationHandler *NotificationHandler
	ResumeHandler       *ResumeHandler
	AnalyticsHandler    *AnalyticsHandler
}
