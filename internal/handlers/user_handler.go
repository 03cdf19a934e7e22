package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ElenaG518/wdconnect-server/internal/managers"
	"github.com/ElenaG518/wdconnect-server/internal/schemas"
	"github.com/ElenaG518/wdconnect-server/internal/stores"
	"github.com/ElenaG518/wdconnect-server/internal/utils"
)

type UserHdl interface {
	RegisterUser(c *gin.Context)
	LoginUser(c *gin.Context)
	GetCurrentUser(c *gin.Context)
	ListUsers(c *gin.Context)
}

type UserHandler struct {
	UserStore  stores.UserStore
	JWTManager managers.JWTMgr
}

func NewUserHandler(userStore stores.UserStore, jwtManager managers.JWTMgr) UserHdl {
	return &UserHandler{
		UserStore:  userStore,
		JWTManager: jwtManager,
	}
}

// RegisterUser registers a new account and returns a bearer token, so a
// fresh registration is already logged in.
func (handler *UserHandler) RegisterUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	registrationRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.RegistrationRequest)

	// Credential fields may not start or end with whitespace
	if field := findUntrimmedField(registrationRequest); field != "" {
		utils.WriteAndLogError(c, schemas.NewUntrimmedFieldError(field), http.StatusUnprocessableEntity,
			errors.New("untrimmed field "+field))
		return
	}

	// Check if the username or email is taken
	existing, err := handler.UserStore.FindByUsernameOrEmail(ctx, registrationRequest.Username, registrationRequest.Email)
	if err != nil && !errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		conflict := schemas.EmailTaken
		if existing.Username == registrationRequest.Username {
			conflict = schemas.UsernameTaken
		}
		utils.WriteAndLogError(c, conflict, http.StatusBadRequest, errors.New("username or email taken"))
		return
	}

	// Hash the password with a random per-password salt
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registrationRequest.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	user := &schemas.User{
		Name:      registrationRequest.Name,
		Username:  registrationRequest.Username,
		Email:     registrationRequest.Email,
		Password:  string(hashedPassword),
		Avatar:    utils.GravatarURL(registrationRequest.Email),
		CreatedAt: time.Now(),
	}

	if err := handler.UserStore.Create(ctx, user); err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	token, err := handler.JWTManager.GenerateJWT(user.ID.Hex())
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.TokenDTO{Token: token}, http.StatusOK)
}

// LoginUser authenticates an account and returns a bearer token. An unknown
// username and a wrong password produce the identical response, so the
// caller cannot tell which check failed.
func (handler *UserHandler) LoginUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	loginRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.LoginRequest)

	user, err := handler.UserStore.FindByUsername(ctx, loginRequest.Username)
	if errors.Is(err, stores.ErrNotFound) {
		utils.WriteAndLogError(c, schemas.InvalidCredentials, http.StatusBadRequest, errors.New("username does not exist"))
		return
	}
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginRequest.Password)); err != nil {
		utils.WriteAndLogError(c, schemas.InvalidCredentials, http.StatusBadRequest, err)
		return
	}

	token, err := handler.JWTManager.GenerateJWT(user.ID.Hex())
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.TokenDTO{Token: token}, http.StatusOK)
}

// GetCurrentUser returns the account record of the caller resolved from the
// bearer token. The token may outlive the account, so a dangling id yields
// a not-found response rather than a server error.
func (handler *UserHandler) GetCurrentUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	userId, err := currentUserId(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.UserNotFound, http.StatusNotFound, err)
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

	utils.WriteAndLogResponse(c, schemas.SerializeUser(user), http.StatusOK)
}

// ListUsers returns all registered accounts in their safe serialized form.
func (handler *UserHandler) ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	users, err := handler.UserStore.List(ctx)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	userDtos := make([]schemas.UserDTO, 0, len(users))
	for i := range users {
		userDtos = append(userDtos, schemas.SerializeUser(&users[i]))
	}

	utils.WriteAndLogResponse(c, &schemas.UserListDTO{Users: userDtos}, http.StatusOK)
}

// currentUserId resolves the authenticated account id attached by the JWT
// middleware.
func currentUserId(c *gin.Context) (primitive.ObjectID, error) {
	userId := c.GetString(utils.UserIdKey.String())
	return primitive.ObjectIDFromHex(userId)
}

// findUntrimmedField returns the first credential field with leading or
// trailing whitespace, or an empty string if all are clean.
func findUntrimmedField(request *schemas.RegistrationRequest) string {
	fields := map[string]string{
		"username": request.Username,
		"email":    request.Email,
		"password": request.Password,
	}

	for _, name := range []string{"username", "email", "password"} {
		if value := fields[name]; strings.TrimSpace(value) != value {
			return name
		}
	}
	return ""
}
