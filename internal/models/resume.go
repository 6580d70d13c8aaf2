package models

// Resume is an uploaded resume file. The bytes live in object storage
// (local disk or Cloudflare R2); this record carries the metadata.
type Resume struct {
	BaseModel
	UserID     string `gorm:"not null;index" json:"userId"`
	FileName   string `gorm:"not null" json:"fileName"`
	StorageKey string `gorm:"not null;uniqueIndex" json:"-"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mimeType"`
}
