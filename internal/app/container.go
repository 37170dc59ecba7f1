package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtbook/courtbook-backend/internal/api"
	"github.com/courtbook/courtbook-backend/internal/booking"
	"github.com/courtbook/courtbook-backend/internal/court"
	"github.com/courtbook/courtbook-backend/internal/pkg/storage"
	"github.com/courtbook/courtbook-backend/internal/sport"
)

// Config holds the dependencies and settings required to start the application.
// A nil DBPool selects the in-memory repositories.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	FileStorage  storage.Storage
	Pricing      booking.PricingStrategy
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	SportService   sport.Service
	CourtService   court.Service
	BookingService booking.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	var (
		sportRepo   sport.Repository
		courtRepo   court.Repository
		bookingRepo booking.Repository
	)

	if cfg.DBPool != nil {
		sportRepo = sport.NewPgxRepository(cfg.DBPool)
		courtRepo = court.NewPgxRepository(cfg.DBPool)
		bookingRepo = booking.NewPgxRepository(cfg.DBPool)
	} else {
		sportRepo = sport.NewMemoryRepository()
		courtRepo = court.NewMemoryRepository()
		bookingRepo = booking.NewMemoryRepository()
	}

	// Sport Module
	sportService := sport.NewService(sportRepo, cfg.FileStorage)

	// Court Module
	courtService := court.NewService(courtRepo, sportService)

	// Booking Module
	bookingService := booking.NewService(bookingRepo, courtService, cfg.Pricing)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		SportService:   sportService,
		CourtService:   courtService,
		BookingService: bookingService,
	})

	return &Container{
		Router:         router,
		SportService:   sportService,
		CourtService:   courtService,
		BookingService: bookingService,
	}
}
