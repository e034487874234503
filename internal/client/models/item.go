// Package models defines the canonical storage item shape shared by every
// data source. Remote wire formats are normalized into StorageItem at the
// gateway boundary and never leak past it.
package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ItemKind classifies an item as a folder (album) or a media file.
type ItemKind string

const (
	ItemKindFolder ItemKind = "folder"
	ItemKindMedia  ItemKind = "media"
)

// MimeCategory is a coarse media classification derived from the MIME type.
type MimeCategory string

const (
	MimeCategoryImage    MimeCategory = "image"
	MimeCategoryVideo    MimeCategory = "video"
	MimeCategoryDocument MimeCategory = "document"
	MimeCategoryOther    MimeCategory = "other"
)

// PhotoMeta carries technical metadata for photos, when known.
type PhotoMeta struct {
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	CameraModel string `json:"cameraModel,omitempty"`
	ISO         int    `json:"iso,omitempty"`
	Aperture    string `json:"aperture,omitempty"`
}

// VideoMeta carries technical metadata for videos, when known.
type VideoMeta struct {
	Duration   float64 `json:"duration,omitempty"`
	Resolution string  `json:"resolution,omitempty"`
	FrameRate  float64 `json:"frameRate,omitempty"`
}

// StorageItem is the canonical representation of a folder or media file.
//
// The flag fields are independent booleans, not lifecycle states: an item can
// be deleted and favorited at the same time. ParentID references a
// folder-kind item; empty means root level. Dangling parent references are
// tolerated (the item renders as orphaned), never fatal.
type StorageItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Kind         ItemKind     `json:"kind"`
	MimeCategory MimeCategory `json:"mimeCategory,omitempty"`
	MimeType     string       `json:"mimeType,omitempty"`
	Size         int64        `json:"size"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	IsFavorite   bool         `json:"isFavorite"`
	IsDeleted    bool         `json:"isDeleted"`
	IsPublic     bool         `json:"isPublic"`
	IsShared     bool         `json:"isShared"`
	ParentID     string       `json:"parentId,omitempty"`
	URI          string       `json:"uri,omitempty"`
	CoverURL     string       `json:"coverUrl,omitempty"`
	PhotoMeta    *PhotoMeta   `json:"photoMeta,omitempty"`
	VideoMeta    *VideoMeta   `json:"videoMeta,omitempty"`
}

// IsFolder reports whether the item is a folder/album.
func (i StorageItem) IsFolder() bool {
	return i.Kind == ItemKindFolder
}

// PendingIDPrefix namespaces client-assigned temporary ids so they can never
// collide with server-assigned ids during reconciliation.
const PendingIDPrefix = "pending-"

// NewPendingID mints a temporary id for a not-yet-confirmed media item.
func NewPendingID() string {
	return PendingIDPrefix + uuid.NewString()
}

// NewPendingAlbumID mints a temporary id for a not-yet-confirmed album.
func NewPendingAlbumID() string {
	return PendingIDPrefix + "album-" + uuid.NewString()
}

// IsPendingID reports whether id was minted client-side and still awaits
// server confirmation.
func IsPendingID(id string) bool {
	return strings.HasPrefix(id, PendingIDPrefix)
}

// ClassifyMime maps a MIME type onto a coarse category. image/* and video/*
// map directly; an empty type is "other"; anything else is a document.
func ClassifyMime(mimeType string) MimeCategory {
	switch {
	case mimeType == "":
		return MimeCategoryOther
	case strings.HasPrefix(mimeType, "image/"):
		return MimeCategoryImage
	case strings.HasPrefix(mimeType, "video/"):
		return MimeCategoryVideo
	default:
		return MimeCategoryDocument
	}
}

// SniffMime detects the MIME type from content. Used when the caller supplies
// no declared type for an upload.
func SniffMime(data []byte) string {
	return mimetype.Detect(data).String()
}

// FormatSize renders a byte count for display ("—" for zero or unknown,
// otherwise e.g. "3.81 MB").
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "—"
	}
	const k = 1024
	sizes := []string{"B", "KB", "MB", "GB", "TB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	v := float64(bytes) / math.Pow(k, float64(i))
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + sizes[i]
}
