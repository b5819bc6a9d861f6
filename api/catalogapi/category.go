package catalogapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/category"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mapCategoryError(err error) error {
	switch {
	case errors.Is(err, category.ErrNotFound):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, category.ErrDuplicateName):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusConflict}
	}
	return err
}

// CreateCategory - adds a produce category
func (a *api) CreateCategory(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.Category
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Name == "" {
		return &app.ValidationError{Message: "name is required"}
	}

	res, err := a.App.CategoryService.CreateCategory(&payload)
	if err != nil {
		return mapCategoryError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Category created"))
	return nil
}

func (a *api) ListCategories(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := a.App.CategoryService.ListCategories()
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Categories fetched"))
	return nil
}

func (a *api) UpdateCategory(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["categoryID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid categoryID"}
	}
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}

	res, err := a.App.CategoryService.UpdateCategory(id, fields)
	if err != nil {
		return mapCategoryError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Category updated"))
	return nil
}

func (a *api) DeleteCategory(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["categoryID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid categoryID"}
	}
	if err := a.App.CategoryService.DeleteCategory(id); err != nil {
		return mapCategoryError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "Category deleted"))
	return nil
}

// CreateSubCategory - adds a sub-category under a category
func (a *api) CreateSubCategory(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.SubCategory
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Name == "" || payload.Category.IsZero() {
		return &app.ValidationError{Message: "name and category are required"}
	}

	res, err := a.App.CategoryService.CreateSubCategory(&payload)
	if err != nil {
		return mapCategoryError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "SubCategory created"))
	return nil
}

func (a *api) ListSubCategories(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["categoryID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid categoryID"}
	}
	res, err := a.App.CategoryService.ListSubCategories(id)
	if err != nil {
		return mapCategoryError(err)
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "SubCategories fetched"))
	return nil
}

func (a *api) DeleteSubCategory(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["subCategoryID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid subCategoryID"}
	}
	if err := a.App.CategoryService.DeleteSubCategory(id); err != nil {
		return mapCategoryError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "SubCategory deleted"))
	return nil
}
