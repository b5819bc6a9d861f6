package catalogapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/post"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mapPostError(err error) error {
	if errors.Is(err, post.ErrNotFound) {
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
	}
	return err
}

// CreatePost - publishes a buy or sell listing
func (a *api) CreatePost(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.Post
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Title == "" || payload.Category == "" || payload.User.IsZero() {
		return &app.ValidationError{Message: "title, category and user are required"}
	}

	res, err := a.App.PostService.CreatePost(&payload)
	if err != nil {
		return mapPostError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Post created"))
	return nil
}

func (a *api) FetchPost(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["postID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid postID"}
	}
	res, err := a.App.PostService.FetchPost(id)
	if err != nil {
		return mapPostError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Post fetched"))
	return nil
}

// ListPosts - listings, optionally narrowed by category or author
func (a *api) ListPosts(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var userID primitive.ObjectID
	if v := r.URL.Query().Get("userID"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return &app.ValidationError{Message: "invalid userID"}
		}
		userID = id
	}
	res, err := a.App.PostService.ListPosts(r.URL.Query().Get("category"), userID)
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Posts fetched"))
	return nil
}

func (a *api) UpdatePost(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["postID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid postID"}
	}
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}

	res, err := a.App.PostService.UpdatePost(id, fields)
	if err != nil {
		return mapPostError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Post updated"))
	return nil
}

func (a *api) DeletePost(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["postID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid postID"}
	}
	if err := a.App.PostService.DeletePost(id); err != nil {
		return mapPostError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "Post deleted"))
	return nil
}

// CreateQuotation - offers a quote against a post
func (a *api) CreateQuotation(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.Quotation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Post.IsZero() || payload.QuotedBy.IsZero() {
		return &app.ValidationError{Message: "post and quotedBy are required"}
	}

	res, err := a.App.PostService.CreateQuotation(&payload)
	if err != nil {
		return mapPostError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Quotation created"))
	return nil
}

func (a *api) ListQuotationsByPost(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["postID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid postID"}
	}
	res, err := a.App.PostService.ListQuotationsByPost(id)
	if err != nil {
		return mapPostError(err)
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Quotations fetched"))
	return nil
}

func (a *api) DeleteQuotation(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["quotationID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid quotationID"}
	}
	if err := a.App.PostService.DeleteQuotation(id); err != nil {
		return mapPostError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "Quotation deleted"))
	return nil
}
