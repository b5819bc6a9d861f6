package storage

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/agrimandi/agrimandi-server/model"
)

// LocalStorage - storage adapter for storing files to local filesystem
type LocalStorage struct {
	Root string
}

// NewLocalStorage - creates a new local storage adapter
func NewLocalStorage(rootPath string) (*LocalStorage, error) {
	return &LocalStorage{
		Root: rootPath,
	}, nil
}

// GetFile - get requested file
func (s *LocalStorage) GetFile(key string, name string) (*model.File, error) {
	filePath := fmt.Sprintf("%s/%s%s", s.Root, key, name)
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	reader, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	f := &model.File{
		Name:     info.Name(),
		Filename: info.Name(),
		Size:     info.Size(),
		Type:     mime.TypeByExtension(filepath.Ext(info.Name())),
		Key:      key + name,
		Reader:   reader,
	}
	return f, nil
}

// StoreFile - stores file on the local filesystem
func (s *LocalStorage) StoreFile(key, fileName string, file *model.File) (*model.File, error) {
	folder := fmt.Sprintf("%s/%s", s.Root, key)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, err
	}
	filePath := path.Join(folder, fileName)
	out, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	size, err := io.Copy(out, file.Reader)
	if err != nil {
		return nil, err
	}
	return &model.File{
		Name:     fileName,
		Filename: filePath,
		Size:     size,
		Type:     file.Type,
		URL:      filePath,
		Key:      key + fileName,
	}, nil
}

// DeleteFile - removes a file from the local filesystem
func (s *LocalStorage) DeleteFile(key, fileName string) error {
	filePath := fmt.Sprintf("%s/%s%s", s.Root, key, fileName)
	return os.Remove(filePath)
}

// GetPresignedDownloadURL - local files are served directly, no presigning
func (s *LocalStorage) GetPresignedDownloadURL(key, name string) (string, error) {
	return "", nil
}
