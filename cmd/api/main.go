package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"portfolio-api/cmd/api/router"
	"portfolio-api/cmd/api/services"
	"portfolio-api/cmd/internal/logger"
	"portfolio-api/config"
	_ "portfolio-api/docs" // swag will generate this package
	"portfolio-api/storage"
)

// @title           Portfolio API
// @version         1.0
// @description     Read-only API serving portfolio projects from a spreadsheet and gallery images from object storage
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	store, err := newStore(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	items, err := services.NewPortfolioService(store, cfg.Sheet, cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}
	gallery := services.NewGalleryService(store, cfg.Storage.ImagesPrefix)

	r := router.New(store, items, gallery)

	logger.Log.Infof("portfolio-api listening on :%d", cfg.Server.Port)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// newStore 는 설정에 따라 로컬 디렉터리 또는 S3 스토어를 선택한다.
func newStore(ctx context.Context, cfg config.StorageConfig) (storage.ObjectStore, error) {
	if cfg.LocalDir != "" {
		return storage.NewLocalStore(cfg.LocalDir)
	}
	return storage.NewS3Store(ctx, storage.S3Config{
		Region:          cfg.Region,
		Bucket:          cfg.Bucket,
		AccessKeyID:     cfg.AccessKeyID(),
		SecretAccessKey: cfg.SecretAccessKey(),
		Endpoint:        cfg.Endpoint,
	})
}
