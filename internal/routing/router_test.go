package routing

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ElenaG518/wdconnect-server/internal/config"
	"github.com/ElenaG518/wdconnect-server/internal/managers"
	managermocks "github.com/ElenaG518/wdconnect-server/internal/managers/mocks"
	"github.com/ElenaG518/wdconnect-server/internal/schemas"
	"github.com/ElenaG518/wdconnect-server/internal/stores"
	storemocks "github.com/ElenaG518/wdconnect-server/internal/stores/mocks"
)

type routerMocks struct {
	userStore    *storemocks.MockUserStore
	profileStore *storemocks.MockProfileStore
	postStore    *storemocks.MockPostStore
	githubMgr    *managermocks.MockGithubManager
	jwtMgr       managers.JWTMgr
}

func setupServer(t *testing.T) (*httpexpect.Expect, *routerMocks) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:           "test-secret",
		JWTValidityDuration: time.Hour,
	}

	m := &routerMocks{
		userStore:    &storemocks.MockUserStore{},
		profileStore: &storemocks.MockProfileStore{},
		postStore:    &storemocks.MockPostStore{},
		githubMgr:    &managermocks.MockGithubManager{},
		jwtMgr:       managers.NewJWTManager(cfg),
	}

	databaseMgrMock := &managermocks.MockDatabaseManager{}
	databaseMgrMock.On("Ping", mock.Anything).Return(nil)

	router := InitRouter(databaseMgrMock, m.jwtMgr, m.githubMgr, m.userStore, m.profileStore, m.postStore)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return httpexpect.Default(t, server.URL), m
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func issueToken(t *testing.T, jwtMgr managers.JWTMgr, userId primitive.ObjectID) string {
	token, err := jwtMgr.GenerateJWT(userId.Hex())
	require.NoError(t, err)
	return token
}

func TestUserRegistration(t *testing.T) {
	validRequest := map[string]interface{}{
		"name":     "Elena",
		"username": "elena518",
		"email":    "elena@example.com",
		"password": "secret1",
	}

	t.Run("ValidRegistration", func(t *testing.T) {
		e, m := setupServer(t)

		m.userStore.On("FindByUsernameOrEmail", mock.Anything, "elena518", "elena@example.com").
			Return(nil, stores.ErrNotFound)
		m.userStore.On("Create", mock.Anything, mock.AnythingOfType("*schemas.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*schemas.User)
				require.Equal(t, "Elena", user.Name)
				require.NotEqual(t, "secret1", user.Password, "password must be stored hashed")
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
				require.Contains(t, user.Avatar, "gravatar.com/avatar/")
			}).
			Return(nil)

		e.POST("/api/users").WithJSON(validRequest).
			Expect().Status(http.StatusOK).
			JSON().Object().Value("token").String().NotEmpty()

		m.userStore.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		e, _ := setupServer(t)

		body := e.POST("/api/users").WithJSON(map[string]interface{}{}).
			Expect().Status(http.StatusBadRequest).
			Body()

		body.Contains("Name is required")
		body.Contains("Please provide a username")
		body.Contains("Please include a valid email address")
		body.Contains("Please enter a password with 6 or more characters")
	})

	t.Run("ShortPassword", func(t *testing.T) {
		e, _ := setupServer(t)

		request := map[string]interface{}{
			"name":     "Elena",
			"username": "elena518",
			"email":    "elena@example.com",
			"password": "short",
		}

		e.POST("/api/users").WithJSON(request).
			Expect().Status(http.StatusBadRequest).
			Body().Contains("Please enter a password with 6 or more characters")
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		e, m := setupServer(t)

		existing := &schemas.User{
			ID:       primitive.NewObjectID(),
			Username: "elena518",
			Email:    "other@example.com",
		}
		m.userStore.On("FindByUsernameOrEmail", mock.Anything, "elena518", "elena@example.com").
			Return(existing, nil)

		e.POST("/api/users").WithJSON(validRequest).
			Expect().Status(http.StatusBadRequest).
			JSON().IsEqual(map[string]interface{}{
			"errors": []map[string]interface{}{{"msg": "That username is already taken"}},
		})

		m.userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		e, m := setupServer(t)

		existing := &schemas.User{
			ID:       primitive.NewObjectID(),
			Username: "someoneelse",
			Email:    "elena@example.com",
		}
		m.userStore.On("FindByUsernameOrEmail", mock.Anything, "elena518", "elena@example.com").
			Return(existing, nil)

		e.POST("/api/users").WithJSON(validRequest).
			Expect().Status(http.StatusBadRequest).
			JSON().IsEqual(map[string]interface{}{
			"errors": []map[string]interface{}{{"msg": "That email address is already registered"}},
		})
	})

	t.Run("UntrimmedUsername", func(t *testing.T) {
		e, _ := setupServer(t)

		request := map[string]interface{}{
			"name":     "Elena",
			"username": " elena518",
			"email":    "elena@example.com",
			"password": "secret1",
		}

		e.POST("/api/users").WithJSON(request).
			Expect().Status(http.StatusUnprocessableEntity).
			JSON().Object().HasValue("location", "username")
	})
}

// Login failures must not reveal whether the username or the password was
// wrong: an unknown username and a wrong password produce byte-identical
// response shapes.
func TestLoginUniformInvalidCredentials(t *testing.T) {
	e, m := setupServer(t)

	user := &schemas.User{
		ID:       primitive.NewObjectID(),
		Username: "elena518",
		Password: hashPassword(t, "secret1"),
	}
	m.userStore.On("FindByUsername", mock.Anything, "elena518").Return(user, nil)
	m.userStore.On("FindByUsername", mock.Anything, "ghost").Return(nil, stores.ErrNotFound)

	unknownUser := e.POST("/api/auth").
		WithJSON(map[string]interface{}{"username": "ghost", "password": "secret1"}).
		Expect().Status(http.StatusBadRequest).
		Body().Raw()

	wrongPassword := e.POST("/api/auth").
		WithJSON(map[string]interface{}{"username": "elena518", "password": "wrong-password"}).
		Expect().Status(http.StatusBadRequest).
		Body().Raw()

	require.JSONEq(t, `{"errors":[{"msg":"Invalid credentials"}]}`, unknownUser)
	require.JSONEq(t, unknownUser, wrongPassword)
}

func TestLoginAndGetCurrentUser(t *testing.T) {
	e, m := setupServer(t)

	user := &schemas.User{
		ID:        primitive.NewObjectID(),
		Name:      "Elena",
		Username:  "elena518",
		Email:     "elena@example.com",
		Password:  hashPassword(t, "secret1"),
		Avatar:    "https://www.gravatar.com/avatar/abc?s=200&r=pg&d=mm",
		CreatedAt: time.Now().UTC(),
	}
	m.userStore.On("FindByUsername", mock.Anything, "elena518").Return(user, nil)
	m.userStore.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	token := e.POST("/api/auth").
		WithJSON(map[string]interface{}{"username": "elena518", "password": "secret1"}).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("token").String().NotEmpty().Raw()

	account := e.GET("/api/auth").WithHeader(managers.TokenHeader, token).
		Expect().Status(http.StatusOK).
		JSON().Object()

	account.HasValue("username", "elena518")
	account.HasValue("email", "elena@example.com")
	account.NotContainsKey("password")
}

// A token stays verifiable after the account is gone; the handler must
// translate the dangling id into a not-found response.
func TestGetCurrentUserDanglingToken(t *testing.T) {
	e, m := setupServer(t)

	deletedId := primitive.NewObjectID()
	m.userStore.On("FindByID", mock.Anything, deletedId).Return(nil, stores.ErrNotFound)

	e.GET("/api/auth").WithHeader(managers.TokenHeader, issueToken(t, m.jwtMgr, deletedId)).
		Expect().Status(http.StatusNotFound).
		JSON().IsEqual(map[string]interface{}{"msg": "User not found"})
}

func TestAuthGate(t *testing.T) {
	e, _ := setupServer(t)

	e.GET("/api/auth").
		Expect().Status(http.StatusUnauthorized).
		JSON().IsEqual(map[string]interface{}{"msg": "Not token, authorization denied"})

	e.GET("/api/posts").WithHeader(managers.TokenHeader, "garbage").
		Expect().Status(http.StatusUnauthorized).
		JSON().IsEqual(map[string]interface{}{"msg": "Token is not valid"})
}

func TestListUsersOmitsPasswordHashes(t *testing.T) {
	e, m := setupServer(t)

	users := []schemas.User{
		{ID: primitive.NewObjectID(), Name: "Elena", Username: "elena518", Password: hashPassword(t, "secret1")},
	}
	m.userStore.On("List", mock.Anything).Return(users, nil)

	records := e.GET("/api/users").
		Expect().Status(http.StatusOK).
		JSON().Object().Value("users").Array()

	records.Length().IsEqual(1)
	records.Value(0).Object().NotContainsKey("password")
}

func TestHealthRoute(t *testing.T) {
	e, _ := setupServer(t)

	e.GET("/health").Expect().Status(http.StatusOK)
}
