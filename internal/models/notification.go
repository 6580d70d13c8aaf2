package models

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index" json:"userId"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`
}
