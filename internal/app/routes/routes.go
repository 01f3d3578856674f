package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chimailo/algorice/internal/app/controllers"
	"github.com/chimailo/algorice/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	profileController *controllers.ProfileController,
	postController *controllers.PostController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/check-username", authController.CheckUsername)
		auth.POST("/check-email", authController.CheckEmail)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/user", authController.CurrentUser)
		authenticated.GET("/auth/logout", authController.Logout)

		profile := authenticated.Group("/profile")
		{
			profile.GET("/:username", profileController.Get)
			profile.PUT("", profileController.Update)
			profile.DELETE("", profileController.Delete)
		}

		users := authenticated.Group("/users")
		{
			users.POST("/follow/:id", userController.Follow)
			users.POST("/unfollow/:id", userController.Unfollow)
			users.GET("/followers", userController.Followers)
			users.GET("/following", userController.Following)
			users.GET("/likes", userController.LikedPosts)

			users.GET("/:username/followers/page/:page", userController.FollowersOf)
			users.GET("/:username/following/page/:page", userController.FollowingOf)
			users.GET("/:username/posts/page/:page", userController.PostsOf)
			users.GET("/:username/comments/page/:page", userController.CommentsOf)
			users.GET("/:username/likes/page/:page", userController.LikedPostsOf)
		}

		posts := authenticated.Group("/posts")
		{
			posts.POST("", postController.Create)
			posts.GET("/:id", postController.Get)
			posts.PUT("/:id", postController.Update)
			posts.DELETE("/:id", postController.Delete)
			posts.POST("/:id/likes", postController.ToggleLike)

			posts.GET("/:id/comments/page/:page", postController.Comments)
			posts.POST("/:id/comments", postController.CreateComment)
			posts.POST("/:id/comments/:commentId", postController.CreateComment)
			posts.PUT("/:id/comments/:commentId", postController.UpdateComment)
			posts.DELETE("/:id/comments/:commentId", postController.DeleteComment)
			posts.POST("/:id/comments/:commentId/likes", postController.ToggleCommentLike)
			posts.GET("/:id/comments/:commentId/replies/page/:page", postController.Replies)
		}

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/users", adminController.ListUsers)
			admin.POST("/users", adminController.CreateUser)
			admin.GET("/users/:id", adminController.GetUser)
			admin.PUT("/users/:id", adminController.UpdateUser)
			admin.DELETE("/users/:id", adminController.DeleteUser)
			admin.PUT("/users/:id/permissions", adminController.GrantPermissions)
			admin.DELETE("/users/:id/permissions", adminController.RevokePermissions)
			admin.GET("/permissions", adminController.ListPermissions)
		}
	}
}
