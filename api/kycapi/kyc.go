package kycapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/kyc"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mapKycError(err error) error {
	switch {
	case errors.Is(err, kyc.ErrNotFound):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, kyc.ErrInvalidStatus):
		return &app.ValidationError{Message: err.Error()}
	}
	return err
}

func userIDVar(ctx *app.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["userID"])
	if err != nil {
		return primitive.NilObjectID, &app.ValidationError{Message: "invalid userID"}
	}
	return id, nil
}

// FetchKYC - the verification record of one user
func (a *api) FetchKYC(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDVar(ctx)
	if err != nil {
		return err
	}
	res, err := a.App.KycService.FetchByUser(userID)
	if err != nil {
		return mapKycError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "KYC fetched"))
	return nil
}

// UpdateKYC - updates PAN / GSTIN and other submitted fields
func (a *api) UpdateKYC(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDVar(ctx)
	if err != nil {
		return err
	}
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}

	res, err := a.App.KycService.UpdateFields(userID, fields)
	if err != nil {
		return mapKycError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "KYC updated"))
	return nil
}

// UpdateKYCStatus - verifies or rejects a record and notifies the user
func (a *api) UpdateKYCStatus(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDVar(ctx)
	if err != nil {
		return err
	}
	var payload struct {
		Status string `json:"status"`
		Remark string `json:"remark"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Status == "" {
		return &app.ValidationError{Message: "status is required"}
	}

	res, err := a.App.KycService.UpdateStatus(userID, payload.Status, payload.Remark)
	if err != nil {
		return mapKycError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "KYC status updated"))
	return nil
}

// VerifyPAN - runs the PAN through the verification gateway
func (a *api) VerifyPAN(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload struct {
		PAN string `json:"pan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.PAN == "" {
		return &app.ValidationError{Message: "pan is required"}
	}

	res, err := a.App.KycService.VerifyPAN(payload.PAN)
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "PAN verified"))
	return nil
}

// UploadDocument - stores a verification document and attaches it to the record
func (a *api) UploadDocument(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDVar(ctx)
	if err != nil {
		return err
	}

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
	stored, err := a.App.StorageService.UploadUserFile(userID.Hex(), header.Filename, file)
	if err != nil {
		return errors.Wrap(err, "unable to store document")
	}

	res, err := a.App.KycService.AddDocument(userID, model.KYCDocument{
		Name: header.Filename,
		URL:  stored.URL,
		Key:  stored.Key,
	})
	if err != nil {
		return mapKycError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Document uploaded"))
	return nil
}

// RemoveDocument - detaches a document and deletes the stored file
func (a *api) RemoveDocument(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDVar(ctx)
	if err != nil {
		return err
	}
	key := r.URL.Query().Get("key")
	name := r.URL.Query().Get("name")
	if key == "" {
		return &app.ValidationError{Message: "key is required"}
	}

	res, err := a.App.KycService.RemoveDocument(userID, key)
	if err != nil {
		return mapKycError(err)
	}
	if name != "" {
		if err := a.App.StorageService.DeleteUserFile(key, name); err != nil {
			ctx.Logger.WithError(err).Error("unable to delete document from storage")
		}
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Document removed"))
	return nil
}
