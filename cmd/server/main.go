package main

import (
	"context"

	redisv9 "github.com/redis/go-redis/v9"

	"vehicle_backend/internal/app/di"
	"vehicle_backend/internal/app/router"
	authadapters "vehicle_backend/internal/feature/auth/adapters"
	authhandler "vehicle_backend/internal/feature/auth/transport/handler"
	authusecase "vehicle_backend/internal/feature/auth/usecase"
	catalogadapters "vehicle_backend/internal/feature/catalog/adapters"
	cataloghandler "vehicle_backend/internal/feature/catalog/transport/handler"
	catalogusecase "vehicle_backend/internal/feature/catalog/usecase"
	"vehicle_backend/internal/platform/config"
	infradb "vehicle_backend/internal/platform/db"
	jwtmw "vehicle_backend/internal/platform/jwt"
	"vehicle_backend/internal/platform/logger"
	infraredis "vehicle_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// JWT設定が無ければここで落とす
		boot := logger.Get()
		boot.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	// db
	conn, err := infradb.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}

	hasher := authusecase.NewBcryptHasher()

	if cfg.DB.SeedUsers {
		if err := infradb.SeedUsers(ctx, conn, hasher); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	// Redis（任意。無ければキャッシュなしで動く）
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close redis client")
				}
			}()
		}
	}

	codec := jwtmw.NewCodec(jwtmw.Settings{
		Secret:          cfg.JWT.Secret,
		Issuer:          cfg.JWT.Issuer,
		Audience:        cfg.JWT.Audience,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})

	// Repository
	userRepo := authadapters.NewUserGorm(conn)
	brandRepo := di.NewBrandRepository(rdb, conn)
	modelRepo := catalogadapters.NewModelGorm(conn)
	vehicleRepo := catalogadapters.NewVehicleGorm(conn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, codec)
	brandUC := catalogusecase.NewBrandUsecase(brandRepo)
	modelUC := catalogusecase.NewModelUsecase(modelRepo, brandRepo)
	vehicleUC := catalogusecase.NewVehicleUsecase(vehicleRepo, modelRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	brandH := cataloghandler.NewBrandHandler(brandUC)
	modelH := cataloghandler.NewModelHandler(modelUC)
	vehicleH := cataloghandler.NewVehicleHandler(vehicleUC)

	r := router.NewRouter(codec, authH, brandH, modelH, vehicleH)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
