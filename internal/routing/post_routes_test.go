package routing

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ElenaG518/wdconnect-server/internal/managers"
	"github.com/ElenaG518/wdconnect-server/internal/schemas"
	"github.com/ElenaG518/wdconnect-server/internal/stores"
)

func TestCreatePostCopiesOwnerSummary(t *testing.T) {
	e, m := setupServer(t)

	owner := &schemas.User{
		ID:       primitive.NewObjectID(),
		Name:     "Elena",
		Username: "elena518",
		Avatar:   "https://www.gravatar.com/avatar/abc?s=200&r=pg&d=mm",
	}
	m.userStore.On("FindByID", mock.Anything, owner.ID).Return(owner, nil)
	m.postStore.On("Create", mock.Anything, mock.AnythingOfType("*schemas.Post")).Return(nil)

	post := e.POST("/api/posts").
		WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, owner.ID)).
		WithJSON(map[string]interface{}{"content": "hello world"}).
		Expect().Status(http.StatusOK).
		JSON().Object()

	post.HasValue("content", "hello world")
	post.HasValue("name", "Elena")
	post.HasValue("username", "elena518")
	post.HasValue("avatar", owner.Avatar)
	post.Value("likes").Array().IsEmpty()

	m.postStore.AssertExpectations(t)
}

func TestCreatePostRequiresContent(t *testing.T) {
	e, m := setupServer(t)

	e.POST("/api/posts").
		WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, primitive.NewObjectID())).
		WithJSON(map[string]interface{}{}).
		Expect().Status(http.StatusBadRequest).
		Body().Contains("Please add the content to your post")

	m.postStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetPostUnknownIds(t *testing.T) {
	e, m := setupServer(t)

	token := issueToken(t, m.jwtMgr, primitive.NewObjectID())
	absentId := primitive.NewObjectID()
	m.postStore.On("FindByID", mock.Anything, absentId).Return(nil, stores.ErrNotFound)

	// A malformed id and an absent record look the same to the caller.
	e.GET("/api/posts/not-a-hex-id").WithHeader(managers.TokenHeader, token).
		Expect().Status(http.StatusNotFound).
		JSON().IsEqual(map[string]interface{}{"msg": "Post not found"})

	e.GET("/api/posts/" + absentId.Hex()).WithHeader(managers.TokenHeader, token).
		Expect().Status(http.StatusNotFound).
		JSON().IsEqual(map[string]interface{}{"msg": "Post not found"})
}

func TestDeletePostOwnerOnly(t *testing.T) {
	e, m := setupServer(t)

	ownerId := primitive.NewObjectID()
	strangerId := primitive.NewObjectID()
	post := &schemas.Post{
		ID:      primitive.NewObjectID(),
		Owner:   ownerId,
		Content: "mine",
		Likes:   []schemas.Like{},
	}

	m.postStore.On("FindByID", mock.Anything, post.ID).Return(post, nil).Twice()
	m.postStore.On("FindByID", mock.Anything, post.ID).Return(nil, stores.ErrNotFound).Once()
	m.postStore.On("Delete", mock.Anything, post.ID).Return(nil).Once()

	// Another authenticated account may not delete it.
	e.DELETE("/api/posts/"+post.ID.Hex()).
		WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, strangerId)).
		Expect().Status(http.StatusBadRequest).
		JSON().IsEqual(map[string]interface{}{"msg": "User not authorized"})

	// The owner may, and the post is gone afterwards.
	ownerToken := issueToken(t, m.jwtMgr, ownerId)
	e.DELETE("/api/posts/"+post.ID.Hex()).
		WithHeader(managers.TokenHeader, ownerToken).
		Expect().Status(http.StatusOK).
		JSON().IsEqual(map[string]interface{}{"msg": "Post deletion was successful"})

	e.GET("/api/posts/"+post.ID.Hex()).
		WithHeader(managers.TokenHeader, ownerToken).
		Expect().Status(http.StatusNotFound)

	m.postStore.AssertExpectations(t)
}

func TestLikePost(t *testing.T) {
	e, m := setupServer(t)

	likerId := primitive.NewObjectID()
	post := &schemas.Post{
		ID:    primitive.NewObjectID(),
		Owner: primitive.NewObjectID(),
		Likes: []schemas.Like{},
	}

	m.postStore.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	m.postStore.On("SetLikes", mock.Anything, post.ID, []schemas.Like{{UserID: likerId}}).Return(nil)

	likes := e.PUT("/api/posts/like/"+post.ID.Hex()).
		WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, likerId)).
		Expect().Status(http.StatusOK).
		JSON().Array()

	likes.Length().IsEqual(1)
	likes.Value(0).Object().HasValue("user", likerId.Hex())

	m.postStore.AssertExpectations(t)
}

func TestLikePostTwiceRejected(t *testing.T) {
	e, m := setupServer(t)

	likerId := primitive.NewObjectID()
	post := &schemas.Post{
		ID:    primitive.NewObjectID(),
		Owner: primitive.NewObjectID(),
		Likes: []schemas.Like{{UserID: likerId}},
	}
	m.postStore.On("FindByID", mock.Anything, post.ID).Return(post, nil)

	e.PUT("/api/posts/like/"+post.ID.Hex()).
		WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, likerId)).
		Expect().Status(http.StatusBadRequest).
		JSON().IsEqual(map[string]interface{}{"msg": "Post already liked"})

	m.postStore.AssertNotCalled(t, "SetLikes", mock.Anything, mock.Anything, mock.Anything)
}

// Unliking removes exactly the caller's entry and leaves the rest in order.
func TestUnlikePostRemovesOnlyCaller(t *testing.T) {
	e, m := setupServer(t)

	likerA := primitive.NewObjectID()
	likerB := primitive.NewObjectID()
	likerC := primitive.NewObjectID()
	post := &schemas.Post{
		ID:    primitive.NewObjectID(),
		Owner: primitive.NewObjectID(),
		Likes: []schemas.Like{{UserID: likerB}, {UserID: likerA}, {UserID: likerC}},
	}

	m.postStore.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	m.postStore.On("SetLikes", mock.Anything, post.ID, []schemas.Like{{UserID: likerB}, {UserID: likerC}}).Return(nil)

	likes := e.PUT("/api/posts/unlike/"+post.ID.Hex()).
		WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, likerA)).
		Expect().Status(http.StatusOK).
		JSON().Array()

	likes.Length().IsEqual(2)
	likes.Value(0).Object().HasValue("user", likerB.Hex())
	likes.Value(1).Object().HasValue("user", likerC.Hex())

	m.postStore.AssertExpectations(t)
}

func TestUnlikePostNotLikedRejected(t *testing.T) {
	e, m := setupServer(t)

	post := &schemas.Post{
		ID:    primitive.NewObjectID(),
		Owner: primitive.NewObjectID(),
		Likes: []schemas.Like{{UserID: primitive.NewObjectID()}},
	}
	m.postStore.On("FindByID", mock.Anything, post.ID).Return(post, nil)

	e.PUT("/api/posts/unlike/"+post.ID.Hex()).
		WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, primitive.NewObjectID())).
		Expect().Status(http.StatusBadRequest).
		JSON().IsEqual(map[string]interface{}{"msg": "Post hasn't been liked"})

	m.postStore.AssertNotCalled(t, "SetLikes", mock.Anything, mock.Anything, mock.Anything)
}

func TestListPostsNewestFirst(t *testing.T) {
	e, m := setupServer(t)

	newer := schemas.Post{ID: primitive.NewObjectID(), Content: "newer", Likes: []schemas.Like{}, CreatedAt: time.Now()}
	older := schemas.Post{ID: primitive.NewObjectID(), Content: "older", Likes: []schemas.Like{}, CreatedAt: time.Now().Add(-time.Hour)}
	m.postStore.On("List", mock.Anything).Return([]schemas.Post{newer, older}, nil)

	posts := e.GET("/api/posts").
		WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, primitive.NewObjectID())).
		Expect().Status(http.StatusOK).
		JSON().Array()

	posts.Length().IsEqual(2)
	posts.Value(0).Object().HasValue("content", "newer")
	posts.Value(1).Object().HasValue("content", "older")
}
