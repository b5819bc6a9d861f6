package storage

import (
	"fmt"

	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Service - file upload/download operations against object storage
type Service interface {
	UploadUserFile(userID, fileName string, file *model.File) (*model.File, error)
	GetUserFile(key, name string) (*model.File, error)
	DeleteUserFile(key, fileName string) error
}

type service struct {
	config       *config.Config
	fileStore    model.FileStorage
	tmpFileStore model.FileStorage
}

// NewService create new storage service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config:       conf,
		fileStore:    repos.Storage,
		tmpFileStore: repos.TmpStorage,
	}
}

// UploadUserFile stores the file under a per-user key with a random
// prefix so repeated uploads of the same filename never collide.
func (s *service) UploadUserFile(userID, fileName string, file *model.File) (*model.File, error) {
	key := fmt.Sprintf("%s/%s", userID, uuid.New().String())
	stored, err := s.fileStore.StoreFile(key, fileName, file)
	if err != nil {
		return nil, errors.Wrap(err, "unable to store file")
	}
	return stored, nil
}

func (s *service) GetUserFile(key, name string) (*model.File, error) {
	url, err := s.fileStore.GetPresignedDownloadURL(key, name)
	if err != nil {
		return nil, err
	} else if url != "" {
		return &model.File{
			Name:     name,
			Filename: url,
			URL:      url,
			Key:      key,
		}, nil
	}
	return s.fileStore.GetFile(key, name)
}

func (s *service) DeleteUserFile(key, fileName string) error {
	err := s.fileStore.DeleteFile(key, fileName)
	if err != nil {
		return errors.Wrap(err, "unable to delete file from object storage")
	}
	return nil
}
