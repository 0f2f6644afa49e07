package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentType is the category of an informational content item.
type ContentType string

const (
	ContentTypeRules     ContentType = "rules"
	ContentTypeMap       ContentType = "map"
	ContentTypeHandwash  ContentType = "handwash"
	ContentTypeEducation ContentType = "education"
	ContentTypeOther     ContentType = "other"
)

// ContentTypes lists the recognized types in display order.
var ContentTypes = []ContentType{
	ContentTypeRules,
	ContentTypeMap,
	ContentTypeHandwash,
	ContentTypeEducation,
	ContentTypeOther,
}

var contentTypeLabels = map[ContentType]string{
	ContentTypeRules:     "Tata Tertib ICU",
	ContentTypeMap:       "Denah Kamar ICU",
	ContentTypeHandwash:  "Panduan Cuci Tangan",
	ContentTypeEducation: "Edukasi Kesehatan",
	ContentTypeOther:     "Lainnya",
}

func (t ContentType) Valid() bool {
	_, ok := contentTypeLabels[t]
	return ok
}

// Label returns the human readable name shown on admin and public pages.
func (t ContentType) Label() string {
	if label, ok := contentTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// ImageRef is a single gallery entry. Path is relative to the storage disk,
// URL is derived from it by the disk in use.
type ImageRef struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Content is an informational page: visiting rules, floor maps, hand-washing
// guides or health education articles.
type Content struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string                       `gorm:"type:varchar(255);not null" json:"title"`
	Body        string                       `gorm:"type:text;not null" json:"body"`
	Type        ContentType                  `gorm:"type:varchar(20);not null;index" json:"type"`
	IsPublished bool                         `gorm:"not null;default:false;index" json:"is_published"`
	Images      datatypes.JSONSlice[ImageRef] `gorm:"type:jsonb" json:"images"`
	CreatedAt   time.Time                    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                    `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt               `gorm:"index" json:"-"`
}

func (Content) TableName() string {
	return "contents"
}

// ImagePaths returns the storage paths of every gallery image in order.
func (c *Content) ImagePaths() []string {
	paths := make([]string, 0, len(c.Images))
	for _, image := range c.Images {
		paths = append(paths, image.Path)
	}
	return paths
}
