package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/tacmarket/marketplace-api/booking"
	"github.com/tacmarket/marketplace-api/controllers"
	"github.com/tacmarket/marketplace-api/controllers/admin"
	"github.com/tacmarket/marketplace-api/cron"
	"github.com/tacmarket/marketplace-api/geo"
	"github.com/tacmarket/marketplace-api/models"
	"github.com/tacmarket/marketplace-api/routes"
	"github.com/tacmarket/marketplace-api/sheets"
	"github.com/tacmarket/marketplace-api/store"
	"github.com/tacmarket/marketplace-api/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Persistence port: Redis when configured, local files otherwise
	var port store.Port
	var err error
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		port, err = store.NewRedisPort(addr)
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "./data"
		}
		port, err = store.NewFilePort(dataDir)
	}
	if err != nil {
		log.Fatalf("Failed to initialize persistence: %v", err)
	}

	st := store.New(port)
	if err := st.Load(); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	ensureAdmin(st)

	geocoder := geo.NewGeocoder(os.Getenv("GOOGLE_MAPS_API_KEY"))

	mirror := sheets.NewMirror(context.Background(), os.Getenv("GOOGLE_SHEETS_ID"), os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	if err := mirror.Setup(context.Background()); err != nil {
		log.Printf("Failed to prepare spreadsheet: %v", err)
	}

	outbox := sheets.NewOutbox(mirror, 64)
	outbox.Start()
	defer outbox.Close()

	if _, err := utils.InitCloudinary(); err != nil {
		log.Printf("Cloudinary unavailable: %v", err)
	}

	gen := utils.NewProfileGenerator(time.Now().UnixNano())
	bookingSvc := booking.NewService(st, outbox)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("TAC Market Place API")
	})

	authCtl := &controllers.AuthController{Store: st}
	providerCtl := &controllers.ProviderController{Store: st, Geocoder: geocoder, Gen: gen, Outbox: outbox}
	profileCtl := &controllers.ProfileController{Store: st, Gen: gen, Outbox: outbox}
	bookingCtl := &controllers.BookingController{Booking: bookingSvc}
	adminCtl := &admin.Controller{Store: st, Outbox: outbox}

	routes.SetupAuthRoutes(app, authCtl)
	routes.SetupProviderRoutes(app, providerCtl)
	routes.SetupProfileRoutes(app, profileCtl)
	routes.SetupBookingRoutes(app, bookingCtl)
	routes.SetupAdminRoutes(app, adminCtl)

	cron.StartCronJobs(st, outbox)

	listenPort := os.Getenv("PORT")
	if listenPort == "" {
		listenPort = "8000"
	}
	log.Fatal(app.Listen(":" + listenPort))
}

// ensureAdmin creates the moderation account when ADMIN_EMAIL is set
// and no user with that address exists yet.
func ensureAdmin(st *store.Store) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	if _, found := st.GetUserByEmail(email); found {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}
	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if _, err := st.AddUser(admin); err != nil {
		log.Printf("Failed to create admin account: %v", err)
		return
	}
	log.Println("✅ Admin account created:", email)
}
