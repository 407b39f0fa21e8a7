package entity

import "time"

// StoredFile is an object in the uploads bucket.
type StoredFile struct {
	Key         string    `json:"key"`
	Size        int64     `json:"size"`
	HumanSize   string    `json:"human_size"`
	ContentType string    `json:"content_type,omitempty"`
	ModTime     time.Time `json:"mod_time"`
	URL         string    `json:"url,omitempty"`
}
