// Package devserver is a small local backend for manual testing of the
// client: it serves the same REST surface the gateway consumes, backed by
// gorm over sqlite and a local file directory.
package devserver

import "time"

// Item is the flat wire record. Folders carry Type "folder"; media carry the
// mime category in Type for older clients plus the full MimeType.
type Item struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	OwnerID     string    `gorm:"index" json:"-"`
	URL         string    `json:"url"`
	CoverURL    string    `json:"coverUrl"`
	Size        int64     `json:"size"`
	MimeType    string    `json:"mimeType"`
	ParentID    string    `json:"parentId"`
	IsFavorite  bool      `json:"isFavorite"`
	IsDeleted   bool      `json:"isDeleted"`
	IsPublic    bool      `json:"isPublic"`
	IsShared    bool      `json:"isShared"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	StoragePath string    `json:"-"`
}
