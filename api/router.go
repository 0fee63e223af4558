// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"loomorro/goal-api/db"
	"loomorro/goal-api/pkg/middleware"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine

	cache persist.CacheStore
}

// NewRouter builds the full production API: logger, database, routes.
func NewRouter() (*API, error) {
	makeLogger()

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	return New(db), nil
}

// New wires routes and middleware around an existing database handle.
// Tests use this directly with an in-memory database.
func New(d *gorm.DB) *API {
	a := &API{
		DB:    d,
		cache: newCacheStore(),
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{viper.GetString("host.cors_origin")},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetUint("userID"); v != 0 {
					fields = append(fields, zap.Uint("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(d)
	authLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 2,
		Burst:             5,
	})

	main := router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// GET|HEAD /api/heartbeat	-> Used to check if the server is alive
		main.GET("/heartbeat", a.Heartbeat)
		main.HEAD("/heartbeat", a.Heartbeat)

		// POST /api/register		-> Registers a new user
		main.POST("/register", authLimiter, a.UserRegister)

		// POST /api/login		-> Logs in a user and returns a JWT token
		main.POST("/login", authLimiter, a.UserLogin)

		// GET /api/profile		-> Returns the identity decoded from the token
		main.GET("/profile", jwt, a.UserProfile)
	}

	files := main.Group("/files", jwt)
	{
		// POST /api/files		-> Creates a new mind-map file
		files.POST("", a.FileCreate)

		// GET /api/files		-> Lists the caller's files
		files.GET("", a.FileFetchBulk)

		// PUT /api/files/:id		-> Renames a file owned by the caller
		files.PUT("/:id", a.FileEdit)

		// DELETE /api/files/:id	-> Deletes a file and its goals
		files.DELETE("/:id", a.FileDelete)
	}

	goals := main.Group("/goals", jwt)
	{
		// POST /api/goals		-> Creates a goal, optionally under a parent
		goals.POST("", a.GoalCreate)

		// GET /api/goals		-> Lists the caller's goals, newest first
		goals.GET("", a.GoalFetchBulk)

		// GET /api/goals/tree		-> Returns the laid-out forest of a file
		goals.GET("/tree", a.cacheFor(30), a.GoalTree)

		// GET /api/goals/svg		-> Renders the forest of a file as SVG
		goals.GET("/svg", a.cacheFor(30), a.GoalSVG)

		// GET /api/goals/:id		-> Returns a single goal
		goals.GET("/:id", a.GoalFetch)

		// PUT /api/goals/:id		-> Updates only the provided fields
		goals.PUT("/:id", a.GoalEdit)

		// DELETE /api/goals/:id	-> Deletes a goal and its subtree
		goals.DELETE("/:id", a.GoalDelete)
	}

	return a
}

func newCacheStore() persist.CacheStore {
	if addr := viper.GetString("cache.redis_addr"); addr != "" {
		return persist.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: viper.GetString("cache.redis_password"),
		}))
	}

	return persist.NewMemoryStore(time.Minute)
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

// cacheFor caches responses per user and URI. The user id has to be
// part of the key, goals of different users can live under the same
// query string.
func (a *API) cacheFor(sec int) gin.HandlerFunc {
	return cache.Cache(a.cache, time.Second*time.Duration(sec),
		cache.WithCacheStrategyByRequest(func(c *gin.Context) (bool, cache.Strategy) {
			return true, cache.Strategy{
				CacheKey: fmt.Sprintf("%d:%s", c.GetUint("userID"), c.Request.RequestURI),
			}
		}))
}
