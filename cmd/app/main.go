package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := setupDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	retentionDays, err := strconv.Atoi(goDotEnvVariable("NOTIFICATION_RETENTION_DAYS"))
	if err != nil || retentionDays <= 0 {
		retentionDays = 30
	}

	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:                 goDotEnvVariable("JWT_SECRET"),
		NotificationRetentionDays: retentionDays,
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func setupDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&assignmentrepo.AssignmentDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateAssignOrderCommandHandler(),
		app.CreateUnassignOrderCommandHandler(),
		app.CreateChangeDeliveryStatusCommandHandler(),
		app.CreateNotifyOrderCreatedCommandHandler(),
		app.CreateMarkNotificationReadCommandHandler(),
		app.CreateMarkNotificationsReadCommandHandler(),
		app.CreateMarkAllNotificationsReadCommandHandler(),
		app.CreateGetDeliveryPersonOrdersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetNotificationsQueryHandler(),
		app.CreateGetUnreadCountQueryHandler(),
	)
	server.RegisterRoutes(e)

	gateway := app.CreateGateway()
	e.GET("/ws", gateway.Handle)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
