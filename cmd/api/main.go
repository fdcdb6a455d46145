package main

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/feed"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(userID string, shopID string, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":     userID,
		"shop_id": shopID,
		"role":    string(role),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ShopProfile{},
		&model.Order{},
		&model.OrderItem{},
		&model.Product{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Redis接続（注文フィードのpub/sub）
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		panic(err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	profileRepo := infraRepo.NewShopProfileGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//注文フィード
	orderFeed := feed.NewOrderFeed(rdb, orderRepo)

	//Usecase生成
	registerUC := auth.NewRegisterOwnerUsecase(userRepo, profileRepo, hasher, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	orderUC := usecase.NewOrderUsecase(orderRepo, auditRepo, orderFeed, clock)
	productUC := usecase.NewProductUsecase(productRepo, auditRepo, idGen, clock)
	profileUC := usecase.NewProfileUsecase(profileRepo, auditRepo, clock)
	dashboardUC := usecase.NewDashboardUsecase(orderRepo, productRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:      handler.NewAuthHandler(registerUC, loginUC),
		Order:     handler.NewOrderHandler(orderUC, orderFeed),
		Product:   handler.NewProductHandler(productUC),
		Profile:   handler.NewProfileHandler(profileUC),
		Dashboard: handler.NewDashboardHandler(dashboardUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, handlers); err != nil {
		panic(err)
	}
}
