package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ElenaG518/wdconnect-server/internal/managers"
	"github.com/ElenaG518/wdconnect-server/internal/schemas"
	"github.com/ElenaG518/wdconnect-server/internal/stores"
	"github.com/ElenaG518/wdconnect-server/internal/utils"
)

type ProfileHdl interface {
	UpsertProfile(c *gin.Context)
	GetOwnProfile(c *gin.Context)
	ListProfiles(c *gin.Context)
	GetProfileByUserId(c *gin.Context)
	DeleteProfile(c *gin.Context)
	AddBlogPost(c *gin.Context)
	DeleteBlogPost(c *gin.Context)
	GetGithubRepos(c *gin.Context)
}

type ProfileHandler struct {
	ProfileStore  stores.ProfileStore
	UserStore     stores.UserStore
	PostStore     stores.PostStore
	GithubManager managers.GithubMgr
}

func NewProfileHandler(profileStore stores.ProfileStore, userStore stores.UserStore,
	postStore stores.PostStore, githubManager managers.GithubMgr) ProfileHdl {
	return &ProfileHandler{
		ProfileStore:  profileStore,
		UserStore:     userStore,
		PostStore:     postStore,
		GithubManager: githubManager,
	}
}

// UpsertProfile creates or updates the caller's profile. The target is
// always keyed by the authenticated account id, never by a supplied one, so
// a caller can never touch another account's profile. The exists-then-write
// sequence is not atomic; two concurrent first requests can race.
func (handler *ProfileHandler) UpsertProfile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	upsertRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.UpsertProfileRequest)

	owner, err := currentUserId(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	social := schemas.Social{
		Youtube:   upsertRequest.Youtube,
		Twitter:   upsertRequest.Twitter,
		Facebook:  upsertRequest.Facebook,
		Linkedin:  upsertRequest.Linkedin,
		Instagram: upsertRequest.Instagram,
	}

	existing, err := handler.ProfileStore.FindByOwner(ctx, owner)
	if err != nil && !errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	if existing != nil {
		// Update in place; owner, blog entries and creation date are untouched
		existing.Bio = upsertRequest.Bio
		existing.Location = upsertRequest.Location
		existing.Skills = utils.SplitAndTrim(upsertRequest.Skills)
		existing.Hobbies = utils.SplitAndTrim(upsertRequest.Hobbies)
		existing.Website = upsertRequest.Website
		existing.Social = social

		if err := handler.ProfileStore.ReplaceByOwner(ctx, existing); err != nil {
			utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
			return
		}

		utils.WriteAndLogResponse(c, existing, http.StatusOK)
		return
	}

	profile := &schemas.Profile{
		Owner:     owner,
		Bio:       upsertRequest.Bio,
		Location:  upsertRequest.Location,
		Skills:    utils.SplitAndTrim(upsertRequest.Skills),
		Hobbies:   utils.SplitAndTrim(upsertRequest.Hobbies),
		Website:   upsertRequest.Website,
		Social:    social,
		BlogPosts: []schemas.BlogPost{},
		CreatedAt: time.Now(),
	}

	if err := handler.ProfileStore.Create(ctx, profile); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, profile, http.StatusOK)
}

// GetOwnProfile returns the caller's profile with the owner summary populated.
func (handler *ProfileHandler) GetOwnProfile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	owner, err := currentUserId(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	profile, err := handler.ProfileStore.FindByOwner(ctx, owner)
	if errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.NoProfileForUser, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	handler.respondWithProfile(c, ctx, profile)
}

// ListProfiles returns all profiles with their owner summaries. Profiles
// whose owning account has since been deleted keep an empty owner summary.
func (handler *ProfileHandler) ListProfiles(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	profiles, err := handler.ProfileStore.List(ctx)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	profileDtos := make([]schemas.ProfileDTO, 0, len(profiles))
	for i := range profiles {
		owner := handler.lookupOwner(ctx, profiles[i].Owner)
		profileDtos = append(profileDtos, schemas.SerializeProfile(&profiles[i], owner))
	}

	utils.WriteAndLogResponse(c, profileDtos, http.StatusOK)
}

// GetProfileByUserId returns the profile owned by the account in the path.
func (handler *ProfileHandler) GetProfileByUserId(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	owner, err := primitive.ObjectIDFromHex(c.Param(utils.IdKey))
	if err != nil {
		utils.WriteAndLogError(c, schemas.ProfileNotFound, http.StatusBadRequest, err)
		return
	}

	profile, err := handler.ProfileStore.FindByOwner(ctx, owner)
	if errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.ProfileNotFound, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	handler.respondWithProfile(c, ctx, profile)
}

// DeleteProfile removes the caller's profile, their posts, and the account
// itself.
func (handler *ProfileHandler) DeleteProfile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	owner, err := currentUserId(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	// Remove the account's posts first so no orphaned posts survive the
	// account itself
	if err := handler.PostStore.DeleteByOwner(ctx, owner); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	if err := handler.ProfileStore.DeleteByOwner(ctx, owner); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	if err := handler.UserStore.Delete(ctx, owner); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.MessageDTO{Msg: "User deleted"}, http.StatusOK)
}

// AddBlogPost prepends a blog entry to the caller's profile.
func (handler *ProfileHandler) AddBlogPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	blogRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.AddBlogPostRequest)

	owner, err := currentUserId(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	profile, err := handler.ProfileStore.FindByOwner(ctx, owner)
	if errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.NoProfileForUser, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	entry := schemas.BlogPost{
		ID:          primitive.NewObjectID(),
		Title:       blogRequest.Title,
		Content:     blogRequest.Content,
		Location:    blogRequest.Location,
		Published:   blogRequest.Published,
		Updated:     blogRequest.Updated,
		Description: blogRequest.Description,
	}

	profile.BlogPosts = append([]schemas.BlogPost{entry}, profile.BlogPosts...)

	if err := handler.ProfileStore.ReplaceByOwner(ctx, profile); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, profile, http.StatusOK)
}

// DeleteBlogPost removes a blog entry from the caller's profile. The entry
// is located within that profile only; no cross-profile search occurs.
func (handler *ProfileHandler) DeleteBlogPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	blogId, err := primitive.ObjectIDFromHex(c.Param(utils.BlogIdKey))
	if err != nil {
		utils.WriteAndLogError(c, schemas.BlogPostNotFound, http.StatusNotFound, err)
		return
	}

	owner, err := currentUserId(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	profile, err := handler.ProfileStore.FindByOwner(ctx, owner)
	if errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.NoProfileForUser, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	index := -1
	for i := range profile.BlogPosts {
		if profile.BlogPosts[i].ID == blogId {
			index = i
			break
		}
	}
	if index < 0 {
		utils.WriteAndLogError(c, schemas.BlogPostNotFound, http.StatusNotFound, errors.New("blog entry not in profile"))
		return
	}

	profile.BlogPosts = append(profile.BlogPosts[:index], profile.BlogPosts[index+1:]...)

	if err := handler.ProfileStore.ReplaceByOwner(ctx, profile); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, profile, http.StatusOK)
}

// GetGithubRepos proxies the repository listing of a GitHub user. Any
// upstream failure is reported as a not-found response.
func (handler *ProfileHandler) GetGithubRepos(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	username := c.Param(utils.UsernameKey)

	repos, err := handler.GithubManager.ListRepositories(ctx, username)
	if err != nil {
		utils.WriteAndLogError(c, schemas.NoGithubProfile, http.StatusNotFound, err)
		return
	}

	c.Data(http.StatusOK, "application/json", repos)
}

// respondWithProfile writes the profile with its owner summary populated.
func (handler *ProfileHandler) respondWithProfile(c *gin.Context, ctx context.Context, profile *schemas.Profile) {
	owner := handler.lookupOwner(ctx, profile.Owner)
	utils.WriteAndLogResponse(c, schemas.SerializeProfile(profile, owner), http.StatusOK)
}

// lookupOwner fetches the owning account, tolerating dangling references
// left by incomplete deletions.
func (handler *ProfileHandler) lookupOwner(ctx context.Context, owner primitive.ObjectID) *schemas.User {
	user, err := handler.UserStore.FindByID(ctx, owner)
	if err != nil {
		return &schemas.User{ID: owner}
	}
	return user
}
