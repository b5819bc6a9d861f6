package userapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
)

// UploadFile - stores a multipart file for the logged in user
func (a *api) UploadFile(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	f, header, err := r.FormFile("file")
	if err != nil {
		return &app.ValidationError{Message: "file is required"}
	}
	defer f.Close()

	file := &model.File{
		Name:   header.Filename,
		Size:   header.Size,
		Type:   header.Header.Get("Content-Type"),
		Reader: f,
	}
	stored, err := a.App.StorageService.UploadUserFile(ctx.User.UserID, header.Filename, file)
	if err != nil {
		return errors.Wrap(err, "unable to upload file")
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(stored, 1, "File uploaded"))
	return nil
}

// GetFile - returns a short lived download URL for a stored file
func (a *api) GetFile(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	key := r.URL.Query().Get("key")
	name := r.URL.Query().Get("name")
	if key == "" || name == "" {
		return &app.ValidationError{Message: "key and name are required"}
	}

	file, err := a.App.StorageService.GetUserFile(key, name)
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(file, 1, "File fetched"))
	return nil
}

// DeleteFile - removes a stored file
func (a *api) DeleteFile(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	key := r.URL.Query().Get("key")
	name := r.URL.Query().Get("name")
	if key == "" || name == "" {
		return &app.ValidationError{Message: "key and name are required"}
	}

	if err := a.App.StorageService.DeleteUserFile(key, name); err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "File deleted"))
	return nil
}
