package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/meetcal/scheduling-service/config"
	"github.com/meetcal/scheduling-service/internal/handler"
	"github.com/meetcal/scheduling-service/internal/middleware"
	"github.com/meetcal/scheduling-service/internal/repository"
	"github.com/meetcal/scheduling-service/internal/service"
	"github.com/meetcal/scheduling-service/pkg/database"
	"github.com/meetcal/scheduling-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional publisher: booking.created / booking.cancelled notifications.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBITMQ_URL not set, booking notifications disabled")
	}

	// Repositories
	hostRepo := repository.NewHostRepository(db)
	eventTypeRepo := repository.NewEventTypeRepository(db)
	availRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	if _, err := hostRepo.EnsureDefault(context.Background(), cfg.HostName, cfg.HostEmail); err != nil {
		log.Fatalf("failed to ensure default host: %v", err)
	}

	// Services
	hostSvc := service.NewHostService(hostRepo)
	eventTypeSvc := service.NewEventTypeService(eventTypeRepo)
	availSvc := service.NewAvailabilityService(availRepo)
	bookingSvc := service.NewBookingService(bookingRepo, eventTypeRepo, availRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "scheduling-service"})
	})

	handler.NewHostHandler(hostSvc).RegisterRoutes(e)
	handler.NewAvailabilityHandler(availSvc, hostSvc).RegisterRoutes(e)
	handler.NewEventTypeHandler(eventTypeSvc, hostSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Scheduling Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
