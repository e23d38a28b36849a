package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"caramelt/cmd"
	httpadapter "caramelt/internal/adapters/in/http"
	"caramelt/internal/adapters/out/postgres/customerrepo"
	"caramelt/internal/adapters/out/postgres/orderrepo"
	"caramelt/internal/adapters/out/postgres/productrepo"
	"caramelt/internal/adapters/out/s3blob"
	"caramelt/internal/adapters/out/smtp"
	"caramelt/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	sender, err := smtp.NewPaymentConfirmationSender(smtp.Config{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		Username: configs.SMTPUsername,
		Password: configs.SMTPPassword,
		From:     configs.SMTPFrom,
	})
	if err != nil {
		log.Fatalf("Error creating email sender: %v", err)
	}

	blobs, err := s3blob.NewStorage(context.Background(), configs.S3Bucket, configs.S3Region)
	if err != nil {
		log.Fatalf("Error creating blob storage: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, sender, blobs, logger)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		SMTPHost:     goDotEnvVariable("SMTP_HOST"),
		SMTPPort:     goDotEnvVariable("SMTP_PORT"),
		SMTPUsername: goDotEnvVariable("SMTP_USERNAME"),
		SMTPPassword: goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:     goDotEnvVariable("SMTP_FROM"),
		S3Bucket:     goDotEnvVariable("S3_BUCKET"),
		S3Region:     goDotEnvVariable("S3_REGION"),
		MinPrepDays:  order.DefaultMinPrepDays,
	}

	if raw := os.Getenv("MIN_PREP_DAYS"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			log.Fatalf("Invalid MIN_PREP_DAYS value: %q", raw)
		}
		config.MinPrepDays = days
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
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server := httpadapter.NewServer(
		app.CreateCheckoutCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUncancelOrderCommandHandler(),
		app.CreateUpdateOrderDetailsCommandHandler(),
		app.CreateEditOrderItemCommandHandler(),
		app.CreateRemoveOrderItemCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetProductQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateTrackOrderQueryHandler(),
		app.BlobStorage(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
