package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/auth"
	"github.com/ToeMom/GroupUp-Final/cache"
	"github.com/ToeMom/GroupUp-Final/config"
	"github.com/ToeMom/GroupUp-Final/routes"
	"github.com/ToeMom/GroupUp-Final/services"
	"github.com/ToeMom/GroupUp-Final/store/mongodb"
	"github.com/ToeMom/GroupUp-Final/utils"
	"github.com/ToeMom/GroupUp-Final/worker"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Mode == gin.ReleaseMode {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mongodb.New(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to mongodb")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logrus.WithError(err).Warn("mongodb disconnect failed")
		}
	}()

	var eventCache *cache.EventCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("redis unreachable, running without cache")
		} else {
			eventCache = cache.New(rdb, cfg.CacheTTL)
		}
	}

	var images *utils.ImageStore
	if cfg.CloudinaryCloudName != "" {
		images, err = utils.NewImageStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logrus.WithError(err).Fatal("could not initialise cloudinary")
		}
	}

	mailer := utils.NewEmailSender(cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	eventSvc := services.NewEventService(db.Events, db.Users, db.Comments, eventCache)
	commentSvc := services.NewCommentService(db.Comments, db.Events, db.Users)
	userSvc := services.NewUserService(db.Users)
	categorySvc := services.NewCategoryService(db.Categories, db.Users)
	sweeperSvc := services.NewSweeperService(db.Events, db.Users, eventCache)
	authSvc := services.NewAuthService(db.Users, mailer, tokens)

	go worker.NewExpiryWorker(sweeperSvc, cfg.SweepInterval).Run(ctx)

	gin.SetMode(cfg.Mode)
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	routes.SetupRoutes(r, &routes.Deps{
		Events:     eventSvc,
		Comments:   commentSvc,
		Users:      userSvc,
		Categories: categorySvc,
		Sweeper:    sweeperSvc,
		Auth:       authSvc,
		Images:     images,
		Tokens:     tokens,
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		logrus.WithField("addr", cfg.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
