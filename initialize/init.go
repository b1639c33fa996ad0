package initialize

import (
	"fmt"
	"net/http"

	"miniblog/app/controllers"
	"miniblog/app/db"
	jwtutil "miniblog/app/jwt"
	"miniblog/app/middleware"
	"miniblog/app/models"
	"miniblog/app/repo"
	"miniblog/app/services"
	"miniblog/config"
	"miniblog/global"
	"miniblog/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Auth    *controllers.AuthController
	Posts   *controllers.PostController
	AuthSvc *services.AuthService
	PostSvc *services.PostService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect store; unreachable at boot is fatal to the caller
	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name,
		Path: cfg.DB.Path, MaxIdleConns: cfg.DB.MaxIdleConns, MaxOpenConns: cfg.DB.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpHours: cfg.JWT.ExpHours}
	userRepo := repo.NewUserRepository(gdb)
	postRepo := repo.NewPostRepository(gdb)
	authSvc := services.NewAuthService(userRepo, signer)
	postSvc := services.NewPostService(postRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	postCtrl := controllers.NewPostController(postSvc)
	mw := &middleware.Auth{Signer: signer}

	// Router
	h := router.NewRouter(authCtrl, postCtrl, mw)
	h = middleware.CORS(cfg.CORS.Origin, h)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Posts: postCtrl, AuthSvc: authSvc, PostSvc: postSvc}, nil
}
