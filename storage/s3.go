package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/agrimandi/agrimandi-server/model"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"
)

// S3Storage - storage adapter for an S3-compatible object store
type S3Storage struct {
	Session *session.Session
	S3      *s3.S3
	Bucket  string
}

// NewS3Storage - creates a new S3 storage adapter
func NewS3Storage(bucket, region, endpoint, accessKeyID, secretAccessKey string) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Endpoint:    aws.String(endpoint),
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	})
	if err != nil {
		return nil, err
	}
	return &S3Storage{
		Session: sess,
		S3:      s3.New(sess),
		Bucket:  bucket,
	}, nil
}

func (s *S3Storage) GetFile(key string, name string) (*model.File, error) {
	fullPath := fmt.Sprintf("%s%s", key, name)
	result, err := s.S3.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(fullPath),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			logrus.Warnf("file not found for the path %s", fullPath)
		} else {
			logrus.WithError(err).Error("error in fetching S3 object")
		}
		return &model.File{
			Name:     "",
			Filename: "",
		}, nil
	}
	f := &model.File{
		Name:   filepath.Base(fullPath),
		Size:   *result.ContentLength,
		Type:   *result.ContentType,
		Key:    fullPath,
		Reader: result.Body,
	}
	return f, nil
}

func (s *S3Storage) StoreFile(key, fileName string, file *model.File) (*model.File, error) {
	fullPath := fmt.Sprintf("%s%s", key, fileName)
	uploader := s3manager.NewUploaderWithClient(s.S3)
	upParams := &s3manager.UploadInput{
		Bucket:             &s.Bucket,
		Key:                &fullPath,
		Body:               file.Reader,
		ContentType:        &file.Type,
		ContentDisposition: aws.String("inline"),
	}
	result, err := uploader.Upload(upParams)
	if err != nil {
		return nil, err
	}
	return &model.File{
		Filename: result.Location,
		Name:     file.Name,
		Size:     file.Size,
		Type:     file.Type,
		URL:      result.Location,
		Key:      fullPath,
	}, nil
}

func (s *S3Storage) DeleteFile(key, fileName string) error {
	fullPath := fmt.Sprintf("%s%s", key, fileName)

	_, err := s.S3.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(fullPath),
	})
	if err != nil {
		return err
	}

	return s.S3.WaitUntilObjectNotExists(&s3.HeadObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(fullPath),
	})
}

func (s *S3Storage) GetPresignedDownloadURL(key, name string) (string, error) {
	objectKey := key + name
	_, err := s.S3.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == "NotFound" {
			return "", nil
		}
		return "", err
	}

	req, _ := s.S3.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(objectKey),
	})
	return req.Presign(15 * time.Minute)
}
