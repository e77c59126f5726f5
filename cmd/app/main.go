package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"custody/cmd"
	inhttp "custody/internal/adapters/in/http"
	"custody/internal/adapters/out/postgres/auditrepo"
	"custody/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(app.ContractReader(), app.CreateCountsQueryHandler(), slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:       goDotEnvVariable("KAFKA_HOST"),
		KafkaAuditTopic: goDotEnvVariable("KAFKA_AUDIT_TOPIC"),
		OwnerID:         goDotEnvVariable("OWNER_ID"),
		OwnerName:       goDotEnvVariable("OWNER_NAME"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&auditrepo.AuditRecordDTO{}); err != nil {
		log.Fatalf("Failed to migrate audit schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := inhttp.NewServer(
		app.CreateAddItemCommandHandler(),
		app.CreateInitContractCommandHandler(),
		app.CreateSignContractCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateSignShipmentCommandHandler(),
		app.CreateHandOverShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateReceiveShipmentCommandHandler(),
		app.CreateItemSnapshotQueryHandler(),
		app.CreateShipmentSnapshotQueryHandler(),
		app.CreateCourierHoldingQueryHandler(),
		app.CreateCountsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
