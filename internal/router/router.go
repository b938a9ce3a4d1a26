package router

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "petpal/docs"
	"petpal/internal/adapters/storage/localdir"
	"petpal/internal/adapters/storage/memory"
	pg "petpal/internal/adapters/storage/postgres"
	sq "petpal/internal/adapters/storage/sqlite"
	"petpal/internal/domain/health"
	"petpal/internal/domain/pets"
	"petpal/internal/domain/schedules"
	"petpal/internal/domain/users"
	"petpal/internal/middleware"
	"petpal/internal/platform/logger"
	"petpal/internal/store"
)

type Options struct {
	// Opcional: backend de storage explícito. Si es nil se elige por env
	// (DB_DSN => postgres, SQLITE_PATH => sqlite, DATA_DIR => archivos
	// locales, si no => in-memory).
	Store store.Store

	// Opcional: logger. Si es nil se crea desde env.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	st := opts.Store
	if st == nil {
		st = openStoreFromEnv(log)
	}

	// Services por módulo. Todos comparten el mismo Store: users/currentUser
	// para la sesión, una colección por tipo de entidad.
	usersSvc := users.NewService(st)
	petsSvc := pets.NewService(st)
	schedulesSvc := schedules.NewService(st)
	healthSvc := health.NewService(st)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Use(middleware.SessionContext(usersSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc)
	schedules.RegisterRoutes(r, schedulesSvc)
	health.RegisterRoutes(r, healthSvc)

	return r
}

// openStoreFromEnv elige el backend por env. Cualquier fallo degrada a
// in-memory con un warning: la app siempre arranca.
func openStoreFromEnv(log logger.Logger) store.Store {
	ctx := context.Background()

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		st, err := openPostgres(ctx, dsn)
		if err == nil {
			log.Info("storage backend", map[string]any{"backend": "postgres"})
			return st
		}
		log.Warn("postgres unavailable, falling back to memory", map[string]any{"err": err.Error()})
	}

	if path := os.Getenv("SQLITE_PATH"); path != "" {
		st, err := openSQLite(ctx, path)
		if err == nil {
			log.Info("storage backend", map[string]any{"backend": "sqlite", "path": path})
			return st
		}
		log.Warn("sqlite unavailable, falling back to memory", map[string]any{"err": err.Error()})
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		st, err := localdir.NewStore(dir)
		if err == nil {
			log.Info("storage backend", map[string]any{"backend": "localdir", "dir": dir})
			return st
		}
		log.Warn("data dir unavailable, falling back to memory", map[string]any{"err": err.Error()})
	}

	log.Info("storage backend", map[string]any{"backend": "memory"})
	return memory.NewStore()
}

func openPostgres(ctx context.Context, dsn string) (store.Store, error) {
	db, err := pg.Open(dsn)
	if err != nil {
		return nil, err
	}
	return pg.NewStore(ctx, db)
}

func openSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sq.Open(path)
	if err != nil {
		return nil, err
	}
	return sq.NewStore(ctx, db)
}
