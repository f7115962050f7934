package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "glucose-iob/internal/adapters/storage/memory"
	pg "glucose-iob/internal/adapters/storage/postgres"
	"glucose-iob/internal/domain/doses"
	"glucose-iob/internal/domain/iob"
	"glucose-iob/internal/domain/medications"
	"glucose-iob/internal/domain/profile"
	"glucose-iob/internal/domain/treatments"
	"glucose-iob/internal/middleware"
	"glucose-iob/internal/platform/logger"
	"glucose-iob/internal/ports/auth"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	_ "glucose-iob/docs" // spec OpenAPI generada por swag
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: proveedor del perfil ambiental. Si es nil, el cálculo de
	// IOB usa sus defaults.
	Profiles profile.Provider

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		medRepo   medications.Repository
		doseRepo  doses.Repository
		treatRepo treatments.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("router: no se pudo abrir Postgres, se usa memoria", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		medRepo = pg.NewMedicationsRepo(db)
		doseRepo = pg.NewDosesRepo(db)
		treatRepo = pg.NewTreatmentsRepo(db)
	} else {
		medRepo = mem.NewMedicationRepo()
		doseRepo = mem.NewDoseRepo(medRepo)
		treatRepo = mem.NewTreatmentRepo()
	}

	// Services por módulo
	medsSvc := medications.NewService(medRepo)
	dosesSvc := doses.NewService(doseRepo, medRepo)
	treatsSvc := treatments.NewService(treatRepo)

	// Rutas por módulo
	medications.RegisterRoutes(r, medsSvc)
	doses.RegisterRoutes(r, dosesSvc)
	treatments.RegisterRoutes(r, treatsSvc)
	iob.RegisterRoutes(r, iob.HandlerDeps{
		Doses:      doseRepo,
		Meds:       medRepo,
		Treatments: treatRepo,
		Profiles:   opts.Profiles,
		Log:        log,
	})

	return r
}
