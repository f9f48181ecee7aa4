package server

import (
	"context"
	"database/sql"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"careercraft-backend/internal/analysis"
	localanalyzer "careercraft-backend/internal/analysis/local"
	"careercraft-backend/internal/analysis/remote"
	"careercraft-backend/internal/coverletters"
	"careercraft-backend/internal/resumes"
	"careercraft-backend/internal/shared/config"
	"careercraft-backend/internal/shared/metrics"
	"careercraft-backend/internal/shared/server/middleware"
	"careercraft-backend/internal/shared/server/respond"
	"careercraft-backend/internal/shared/storage/db"
	"careercraft-backend/internal/shared/storage/object"
	localstore "careercraft-backend/internal/shared/storage/object/local"
	s3store "careercraft-backend/internal/shared/storage/object/s3"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"UPLOAD": {Rate: 0.5, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/resumes" {
					return "UPLOAD"
				}
				return ""
			},
		}),
	)

	// Dependencies
	store, serveLocal := buildObjectStore(cfg)
	analyzer := buildAnalyzer(cfg)
	sqlDB := buildDatabase(cfg)

	var resumeRepo resumes.Repo
	var letterRepo coverletters.Repo
	if sqlDB != nil {
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
		letterRepo = &coverletters.PGRepo{DB: sqlDB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		letterRepo = coverletters.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{Store: store, Analyzer: analyzer, Repo: resumeRepo}
	resumeHandler := resumes.NewHandler(resumeSvc)
	letterSvc := &coverletters.Service{Repo: letterRepo}
	letterHandler := coverletters.NewHandler(letterSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	resumeHandler.RegisterRoutes(api)
	letterHandler.RegisterRoutes(api)
	if serveLocal {
		api.GET("/files/*key", serveStoredFile(store))
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// buildObjectStore selects the configured object store. The second return
// reports whether stored files must be served by this process.
func buildObjectStore(cfg config.Config) (object.ObjectStore, bool) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicBaseURL)
		if err != nil {
			log.Printf("s3 store init failed, falling back to local: %v", err)
		} else {
			return store, false
		}
	}
	return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL+"/api/v1/files"), true
}

// buildAnalyzer prefers the remote analysis service; without ML_SERVICE_URL
// the degraded in-process analyzer is used.
func buildAnalyzer(cfg config.Config) analysis.Client {
	if cfg.MLServiceURL != "" {
		client, err := remote.New(cfg.MLServiceURL, cfg.MLTimeout)
		if err != nil {
			log.Printf("remote analyzer init failed, falling back to local: %v", err)
		} else {
			return client
		}
	}
	log.Printf("ML_SERVICE_URL not set, using in-process analyzer")
	return localanalyzer.New()
}

// buildDatabase connects and migrates when DATABASE_URL is set; a nil return
// means callers should use the in-memory repositories.
func buildDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(context.Background(), conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}

func serveStoredFile(store object.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		rc, err := store.Open(c.Request.Context(), key)
		if err != nil {
			respond.Error(c, http.StatusNotFound, "File not found", nil)
			return
		}
		defer rc.Close()

		contentType := mime.TypeByExtension(filepath.Ext(key))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		c.Status(http.StatusOK)
		if _, err := io.Copy(c.Writer, rc); err != nil {
			log.Printf("serve file %s: %v", key, err)
		}
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
