package model

import "io"

// File - a file stored in object storage
type File struct {
	Name     string    `json:"name"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	Type     string    `json:"type"`
	ETag     string    `json:"etag,omitempty"`
	URL      string    `json:"url,omitempty"`
	Key      string    `json:"key,omitempty"`
	Reader   io.Reader `json:"-"`
}

// FileStorage - the interface all storage adapters satisfy
type FileStorage interface {
	GetFile(key string, name string) (*File, error)
	StoreFile(key, fileName string, file *File) (*File, error)
	DeleteFile(key, fileName string) error
	GetPresignedDownloadURL(key, name string) (string, error)
}
