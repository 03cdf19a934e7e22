package routing

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ElenaG518/wdconnect-server/internal/handlers"
	"github.com/ElenaG518/wdconnect-server/internal/managers"
	"github.com/ElenaG518/wdconnect-server/internal/middleware"
	"github.com/ElenaG518/wdconnect-server/internal/schemas"
	"github.com/ElenaG518/wdconnect-server/internal/stores"
	"github.com/ElenaG518/wdconnect-server/internal/utils"
)

func InitRouter(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr, githubMgr managers.GithubMgr,
	userStore stores.UserStore, profileStore stores.ProfileStore, postStore stores.PostStore) *gin.Engine {
	// Initialize router with logging and recovery middleware
	router := gin.New()
	// Initialize middleware
	setupCommonMiddleware(router)
	// Setup routes
	setupRoutes(router, databaseMgr, jwtMgr, githubMgr, userStore, profileStore, postStore)

	return router
}

func setupCommonMiddleware(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Content-Type", managers.TokenHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func setupRoutes(router *gin.Engine, databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr,
	githubMgr managers.GithubMgr, userStore stores.UserStore, profileStore stores.ProfileStore,
	postStore stores.PostStore) {
	// Set up version route
	router.GET("/", func(c *gin.Context) {
		metadata := &schemas.MetadataDTO{
			ApiName: "wdconnect-server",
			Status:  "API Running",
		}
		utils.WriteAndLogResponse(c, metadata, http.StatusOK)
	})

	// Set up health route
	router.GET("/health", func(c *gin.Context) {
		if err := databaseMgr.Ping(c); err != nil {
			c.String(http.StatusInternalServerError, "Database not responding")
			return
		}
		c.Status(http.StatusOK)
	})

	// Set up API routes
	apiRouter := router.Group("/api")
	{
		userHdl := handlers.NewUserHandler(userStore, jwtMgr)
		userRoutes(apiRouter, userHdl, jwtMgr)

		profileHdl := handlers.NewProfileHandler(profileStore, userStore, postStore, githubMgr)
		profileRoutes(apiRouter.Group("/profile"), profileHdl, jwtMgr)

		postHdl := handlers.NewPostHandler(postStore, userStore)
		postRoutes(apiRouter.Group("/posts"), postHdl, jwtMgr)
	}
}

func userRoutes(apiRouter *gin.RouterGroup, userHdl handlers.UserHdl, jwtMgr managers.JWTMgr) {
	userRouter := apiRouter.Group("/users")
	userRouter.POST("", middleware.ValidateAndSanitizeStruct(&schemas.RegistrationRequest{}), userHdl.RegisterUser)
	userRouter.GET("", userHdl.ListUsers)

	authRouter := apiRouter.Group("/auth")
	authRouter.POST("", middleware.ValidateAndSanitizeStruct(&schemas.LoginRequest{}), userHdl.LoginUser)
	authRouter.GET("", jwtMgr.JWTMiddleware(), userHdl.GetCurrentUser)
}

func profileRoutes(profileRouter *gin.RouterGroup, profileHdl handlers.ProfileHdl, jwtMgr managers.JWTMgr) {
	// Public routes
	profileRouter.GET("", profileHdl.ListProfiles)
	profileRouter.GET("/github/:username", profileHdl.GetGithubRepos)
	profileRouter.GET("/:id", profileHdl.GetProfileByUserId)
	// The following routes require the caller to be authenticated
	profileRouter.GET("/me", jwtMgr.JWTMiddleware(), profileHdl.GetOwnProfile)
	profileRouter.POST("", jwtMgr.JWTMiddleware(),
		middleware.ValidateAndSanitizeStruct(&schemas.UpsertProfileRequest{}), profileHdl.UpsertProfile)
	profileRouter.DELETE("", jwtMgr.JWTMiddleware(), profileHdl.DeleteProfile)
	profileRouter.PUT("/blogpost", jwtMgr.JWTMiddleware(),
		middleware.ValidateAndSanitizeStruct(&schemas.AddBlogPostRequest{}), profileHdl.AddBlogPost)
	profileRouter.DELETE("/blogpost/:blog_id", jwtMgr.JWTMiddleware(), profileHdl.DeleteBlogPost)
}

func postRoutes(postRouter *gin.RouterGroup, postHdl handlers.PostHdl, jwtMgr managers.JWTMgr) {
	postRouter.Use(jwtMgr.JWTMiddleware())
	postRouter.POST("", middleware.ValidateAndSanitizeStruct(&schemas.CreatePostRequest{}), postHdl.CreatePost)
	postRouter.GET("", postHdl.ListPosts)
	postRouter.GET("/:id", postHdl.GetPost)
	postRouter.DELETE("/:id", postHdl.DeletePost)
	postRouter.PUT("/like/:id", postHdl.LikePost)
	postRouter.PUT("/unlike/:id", postHdl.UnlikePost)
}
