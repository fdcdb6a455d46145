package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// オーナー登録の入力
type RegisterOwnerInput struct {
	Email    string
	Password string
	ShopName string
}

// オーナー登録の出力
type RegisterOwnerOutput struct {
	User model.User
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrShopNameRequired   = errors.New("shop name required")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterOwnerUsecaseは店舗オーナーの登録処理。
// アカウントと一緒に空の店舗プロフィールも作る。
type RegisterOwnerUsecase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ShopProfileRepository
	hasher      PasswordHasher
	idGen       IDGenerator
	clock       Clock
}

// DI
func NewRegisterOwnerUsecase(
	userRepo repository.UserRepository,
	profileRepo repository.ShopProfileRepository,
	hasher PasswordHasher,
	idGen IDGenerator,
	clock Clock,
) *RegisterOwnerUsecase {
	return &RegisterOwnerUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		hasher:      hasher,
		idGen:       idGen,
		clock:       clock,
	}
}

// 登録実行
func (u *RegisterOwnerUsecase) Execute(ctx context.Context, in RegisterOwnerInput) (RegisterOwnerOutput, error) {
	var out RegisterOwnerOutput

	// emailの形式チェック
	if !isValidEmailFormat(in.Email) {
		return out, ErrInvalidEmailFormat
	}

	// passwordの長さチェック（最小8文字）
	if len(in.Password) < 8 {
		return out, ErrPasswordTooShort
	}

	shopName := strings.TrimSpace(in.ShopName)
	if shopName == "" {
		return out, ErrShopNameRequired
	}

	// email重複チェック
	existing, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return out, ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return out, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()
	shopID := u.idGen.NewID()

	user := &model.User{
		ID:           u.idGen.NewID(),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hashed, // 平文は保存しない
		Role:         model.RoleOwner,
		ShopID:       shopID,
		LastLoginAt:  nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return out, err
	}

	// 最低限のプロフィールを先に作っておく（あとで編集画面から埋める）
	profile := model.ShopProfile{
		ID:        shopID,
		Name:      shopName,
		OwnerName: "",
		Email:     user.Email,
		ShopType:  model.ShopTypeGrocery,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return out, err
	}

	// 返すときはハッシュを空にして漏洩防止
	safeUser := *user
	safeUser.PasswordHash = ""

	out.User = safeUser
	return out, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 平文(plain)をbcryptで比較
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
