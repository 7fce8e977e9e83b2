package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"serenely/cmd/fx/account_fx"
	"serenely/cmd/fx/admin_fx"
	"serenely/cmd/fx/ai_fx"
	"serenely/cmd/fx/controllers_fx"
	"serenely/cmd/fx/db_fx"
	"serenely/cmd/fx/mail_fx"
	"serenely/cmd/fx/post_fx"
	"serenely/cmd/fx/therapist_fx"
	"serenely/cmd/fx/therapy_fx"
	"serenely/internal/api/controllers"
	"serenely/internal/infra"
	"serenely/internal/models/db_models"
	"serenely/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		therapy_fx.Module,
		post_fx.Module,
		admin_fx.Module,
		therapist_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	therapyController *controllers.TherapyController,
	postController *controllers.PostController,
	adminController *controllers.AdminController,
	therapistController *controllers.TherapistController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, therapyController, postController, adminController, therapistController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	therapyController *controllers.TherapyController,
	postController *controllers.PostController,
	adminController *controllers.AdminController,
	therapistController *controllers.TherapistController) {

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}
	r.Static("/uploads", uploadsDir)

	accounts := r.Group("/accounts")
	accounts.POST("/signup", accountController.Signup)
	accounts.POST("/login", accountController.Login)
	r.GET("/verify", accountController.Verify)

	r.GET("/therapists", therapistController.List)

	// feed reads are public; writes require a session
	posts := r.Group("/posts")
	posts.GET("", postController.ListFeed)
	postsAuth := posts.Group("", middleware.JWTAuthMiddleware())
	postsAuth.POST("", postController.Create)
	postsAuth.PATCH("", postController.Patch)
	postsAuth.DELETE("", postController.Delete)

	therapy := r.Group("/therapy", middleware.JWTAuthMiddleware())
	therapy.POST("/chat", therapyController.Chat)
	therapy.GET("/entries", therapyController.ListEntries)
	therapy.GET("/entries/:id", therapyController.GetEntry)
	therapy.GET("/messages", therapyController.ListMessages)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.GET("/users", adminController.ListUsers)
	admin.DELETE("/users/:userId", adminController.DeleteUser)
	admin.GET("/posts", adminController.ListPosts)
	admin.DELETE("/posts/:postId", adminController.DeletePost)
}
