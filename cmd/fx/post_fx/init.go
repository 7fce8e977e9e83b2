package post_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"serenely/internal/repositories"
	"serenely/internal/services"
	"serenely/pkg/uploads"
)

var Module = fx.Provide(
	providePostRepo, provideUploadStore, providePostService)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func provideUploadStore() uploads.Store {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}

	store, err := uploads.NewDiskStore(dir, "/uploads")
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}
	return store
}

func providePostService(postRepo repositories.PostRepository, images uploads.Store) services.PostServiceInterface {
	return services.NewPostService(postRepo, images)
}
