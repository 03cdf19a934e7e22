// Package handlers implements the handlers for the different routes of the server to handle the incoming HTTP requests.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ElenaG518/wdconnect-server/internal/schemas"
	"github.com/ElenaG518/wdconnect-server/internal/stores"
	"github.com/ElenaG518/wdconnect-server/internal/utils"
)

type PostHdl interface {
	CreatePost(c *gin.Context)
	ListPosts(c *gin.Context)
	GetPost(c *gin.Context)
	DeletePost(c *gin.Context)
	LikePost(c *gin.Context)
	UnlikePost(c *gin.Context)
}

type PostHandler struct {
	PostStore stores.PostStore
	UserStore stores.UserStore
}

func NewPostHandler(postStore stores.PostStore, userStore stores.UserStore) PostHdl {
	return &PostHandler{
		PostStore: postStore,
		UserStore: userStore,
	}
}

// CreatePost creates a post owned by the caller. The owner's name, username
// and avatar are copied onto the post at creation time and stay as they are
// even when the account is edited later.
func (handler *PostHandler) CreatePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	createPostRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.CreatePostRequest)

	userId, err := currentUserId(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	user, err := handler.UserStore.FindByID(ctx, userId)
	if errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.UserNotFound, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	post := &schemas.Post{
		Owner:     user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Content:   createPostRequest.Content,
		Likes:     []schemas.Like{},
		CreatedAt: time.Now(),
	}

	if err := handler.PostStore.Create(ctx, post); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, post, http.StatusOK)
}

// ListPosts returns all posts, newest first.
func (handler *PostHandler) ListPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	posts, err := handler.PostStore.List(ctx)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, posts, http.StatusOK)
}

// GetPost returns the post with the given id. A malformed id is treated the
// same as an absent record.
func (handler *PostHandler) GetPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	post, ok := handler.fetchPost(c, ctx)
	if !ok {
		return
	}

	utils.WriteAndLogResponse(c, post, http.StatusOK)
}

// DeletePost deletes the post with the given id. Only the owner may delete
// a post; the check compares the stored owner id against the caller's id
// as opaque strings.
func (handler *PostHandler) DeletePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	post, ok := handler.fetchPost(c, ctx)
	if !ok {
		return
	}

	userId := c.GetString(utils.UserIdKey.String())
	if !post.OwnedBy(userId) {
		utils.WriteAndLogError(c, schemas.NotAuthorized, http.StatusBadRequest, errors.New("caller does not own post"))
		return
	}

	if err := handler.PostStore.Delete(ctx, post.ID); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.MessageDTO{Msg: "Post deletion was successful"}, http.StatusOK)
}

// LikePost adds the caller to the post's likes. Liking a post twice is
// rejected, which also keeps the likes list duplicate-free. The check and
// the write are separate store operations; a concurrent double-like by the
// same caller can slip between them.
func (handler *PostHandler) LikePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	post, ok := handler.fetchPost(c, ctx)
	if !ok {
		return
	}

	userId, err := currentUserId(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	if post.LikedBy(userId.Hex()) {
		utils.WriteAndLogError(c, schemas.AlreadyLiked, http.StatusBadRequest, errors.New("post already liked"))
		return
	}

	post.AddLike(userId)

	if err := handler.PostStore.SetLikes(ctx, post.ID, post.Likes); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, post.Likes, http.StatusOK)
}

// UnlikePost removes the caller from the post's likes. Unliking a post the
// caller never liked is rejected with its own message.
func (handler *PostHandler) UnlikePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	post, ok := handler.fetchPost(c, ctx)
	if !ok {
		return
	}

	userId := c.GetString(utils.UserIdKey.String())

	if !post.RemoveLike(userId) {
		utils.WriteAndLogError(c, schemas.NotYetLiked, http.StatusBadRequest, errors.New("post not liked by caller"))
		return
	}

	if err := handler.PostStore.SetLikes(ctx, post.ID, post.Likes); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, post.Likes, http.StatusOK)
}

// fetchPost loads the post named in the path, writing the error response
// itself when the id is malformed or the post is gone.
func (handler *PostHandler) fetchPost(c *gin.Context, ctx context.Context) (*schemas.Post, bool) {
	postId, err := primitive.ObjectIDFromHex(c.Param(utils.IdKey))
	if err != nil {
		utils.WriteAndLogError(c, schemas.PostNotFound, http.StatusNotFound, err)
		return nil, false
	}

	post, err := handler.PostStore.FindByID(ctx, postId)
	if errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.PostNotFound, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return nil, false
	}

	return post, true
}
