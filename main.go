// Package main closet carousel API.
//
// @title           Closet Carousel API
// @version         1.0
// @description     Clothing storefront with buy and rent modes (catalog, carts, admin order tracking).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/vipinrawat0001/closet-carousel-commerce/app/echoServer"
	cartctrl "github.com/vipinrawat0001/closet-carousel-commerce/app/echoServer/controller/cart"
	catalogctrl "github.com/vipinrawat0001/closet-carousel-commerce/app/echoServer/controller/catalog"
	orderctrl "github.com/vipinrawat0001/closet-carousel-commerce/app/echoServer/controller/order"
	profilectrl "github.com/vipinrawat0001/closet-carousel-commerce/app/echoServer/controller/profile"
	"github.com/vipinrawat0001/closet-carousel-commerce/app/echoServer/validation"
	"github.com/vipinrawat0001/closet-carousel-commerce/config"
	"github.com/vipinrawat0001/closet-carousel-commerce/repository/cartstore"
	catalogrepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/catalog"
	orderrepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/order"
	profilerepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/profile"
	cartsvc "github.com/vipinrawat0001/closet-carousel-commerce/service/cart"
	catalogsvc "github.com/vipinrawat0001/closet-carousel-commerce/service/catalog"
	ordersvc "github.com/vipinrawat0001/closet-carousel-commerce/service/order"
	"github.com/vipinrawat0001/closet-carousel-commerce/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// session store: Redis when configured, JSON files otherwise
	var store cartsvc.Store
	if cfg.RedisAddr != "" {
		store = cartstore.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.Info("cart store", "kind", "redis", "addr", cfg.RedisAddr)
	} else {
		fs, err := cartstore.NewFileStore(cfg.CartDataDir)
		if err != nil {
			log.Error("cart store init failed", "err", err)
			os.Exit(1)
		}
		store = fs
		log.Info("cart store", "kind", "file", "dir", cfg.CartDataDir)
	}

	// repos
	cr := catalogrepo.New(db)
	or := orderrepo.New(db)
	pr := profilerepo.New(db)

	// services
	carts := cartsvc.NewManager(store)
	cs := catalogsvc.New(cr, carts)
	osv := ordersvc.New(db, or)

	// controllers
	v := validator.New()
	catalogC := &catalogctrl.Controller{Svc: cs, Carts: carts, V: v, Log: log}
	cartC := &cartctrl.Controller{Carts: carts, Catalog: cs, V: v, Log: log}
	orderC := &orderctrl.Controller{Svc: osv, V: v, Log: log}
	profileC := &profilectrl.Controller{Repo: pr, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Catalog:   catalogC,
		Cart:      cartC,
		Order:     orderC,
		Profile:   profileC,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
