package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"wholesale/cmd"
	httpadapter "wholesale/internal/adapters/in/http"
	"wholesale/internal/adapters/out/postgres/documentrepo"
	"wholesale/internal/adapters/out/postgres/orderrepo"
	"wholesale/internal/adapters/out/postgres/organizationrepo"
	"wholesale/internal/adapters/out/postgres/productrepo"
	"wholesale/internal/adapters/out/postgres/sequencerepo"
	"wholesale/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	mustMigrateDB(db)

	app := cmd.NewCompositionRoot(configs, db)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if configs.InventoryAuditEnabled {
		jobManager := jobs.NewJobManager(
			app.CreateGetNegativeStockQueryHandler(),
			configs.InventoryAuditCron,
			logger,
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	auditEnabled, _ := strconv.ParseBool(goDotEnvVariable("INVENTORY_AUDIT_ENABLED"))

	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		InventoryAuditEnabled: auditEnabled,
		InventoryAuditCron:    goDotEnvVariable("INVENTORY_AUDIT_CRON"),
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&organizationrepo.OrganizationDTO{},
		&organizationrepo.EmployeeDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&documentrepo.DocumentDTO{},
		&documentrepo.ItemDTO{},
		&sequencerepo.SequenceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrganizationCommandHandler(),
		app.CreateUpdateOrganizationCommandHandler(),
		app.CreateCreateEmployeeCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateAdjustProductStockCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreateRemoveOrderItemCommandHandler(),
		app.CreateChangeOrderItemQuantityCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrganizationsQueryHandler(),
		app.CreateGetEmployeesQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetDocumentsQueryHandler(),
		app.CreateGetDocumentQueryHandler(),
		app.CreateGetNegativeStockQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
