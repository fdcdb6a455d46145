package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	auditRepo   repo.AuditLogRepository
	idGen       IDGenerator
	clock       Clock
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	auditRepo repo.AuditLogRepository,
	idGen IDGenerator,
	clock Clock,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
		clock:       clock,
	}
}

type CatalogOutput struct {
	Items      []model.Product `json:"items"`
	Categories []string        `json:"categories"`
}

// カタログ一覧（検索・カテゴリ・在庫・ホットディールで導出）
func (u *ProductUsecase) List(ctx context.Context, sess Session, f CatalogFilter) (CatalogOutput, error) {
	if !sess.Valid() {
		return CatalogOutput{}, ErrUnauthorized
	}

	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return CatalogOutput{}, err
	}

	return CatalogOutput{
		Items:      DeriveCatalogView(products, f),
		Categories: Categories(products),
	}, nil
}

// ホットディール（ダッシュボード用、先頭n件）
func (u *ProductUsecase) HotDeals(ctx context.Context, sess Session, n int) ([]model.Product, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	if n <= 0 {
		n = 3
	}

	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	deals := DeriveCatalogView(products, CatalogFilter{ShowOutOfStock: true, HotDealsOnly: true})
	if len(deals) > n {
		deals = deals[:n]
	}
	return deals, nil
}

// 数値はテキスト入力のまま受けて、ここで必ずパースする
type AddProductInput struct {
	Name            string
	Category        string
	Price           string
	DiscountedPrice string // 空なら割引なし
	Quantity        string
	Unit            string
	ImageURL        string
	InStock         *bool // 省略時true
	IsHotDeal       bool
}

func (u *ProductUsecase) AddProduct(ctx context.Context, sess Session, in AddProductInput) (string, error) {
	if !sess.Valid() {
		return "", ErrUnauthorized
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", NewValidationError("name", "required")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return "", NewValidationError("category", "required")
	}

	price, err := ParseMoney("price", in.Price)
	if err != nil {
		return "", err
	}

	var discounted *int64
	if strings.TrimSpace(in.DiscountedPrice) != "" {
		d, err := ParseMoney("discounted_price", in.DiscountedPrice)
		if err != nil {
			return "", err
		}
		if d >= price {
			return "", NewValidationError("discounted_price", "must be less than price")
		}
		discounted = &d
	}

	quantity, err := ParseCount("quantity", in.Quantity)
	if err != nil {
		return "", err
	}

	unit := model.Unit(in.Unit)
	if !unit.Valid() {
		return "", NewValidationError("unit", "unknown unit")
	}

	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	now := u.clock.Now()
	p, err := u.productRepo.Create(ctx, model.Product{
		ID:              u.idGen.NewID(),
		Name:            name,
		Category:        category,
		Price:           price,
		DiscountedPrice: discounted,
		InStock:         inStock,
		IsHotDeal:       in.IsHotDeal,
		Quantity:        quantity,
		Unit:            unit,
		ImageURL:        strings.TrimSpace(in.ImageURL),
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return "", NewStoreWriteError("create product", err)
	}

	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  sess.UserID,
		Action:       model.AuditActionCreateProduct,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   p.ID,
		AfterJSON:    productJSON(p),
		CreatedAt:    now,
	}); err != nil {
		return "", NewStoreWriteError("write audit log", err)
	}

	return p.ID, nil
}

// 部分更新。nilのフィールドは触らない。
type UpdateProductInput struct {
	Name            *string
	Category        *string
	Price           *string
	DiscountedPrice *string // 空文字で割引解除
	Quantity        *string
	Unit            *string
	ImageURL        *string
	InStock         *bool
	IsHotDeal       *bool
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, sess Session, productID string, in UpdateProductInput) error {
	if !sess.Valid() {
		return ErrUnauthorized
	}
	if productID == "" {
		return NewValidationError("product_id", "required")
	}

	current, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return NewValidationError("name", "required")
		}
		fields["name"] = name
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return NewValidationError("category", "required")
		}
		fields["category"] = category
	}

	//割引チェックの基準になる価格（更新後の値）
	price := current.Price
	if in.Price != nil {
		parsed, err := ParseMoney("price", *in.Price)
		if err != nil {
			return err
		}
		price = parsed
		fields["price"] = parsed
	}
	if in.DiscountedPrice != nil {
		if strings.TrimSpace(*in.DiscountedPrice) == "" {
			fields["discounted_price"] = nil
		} else {
			d, err := ParseMoney("discounted_price", *in.DiscountedPrice)
			if err != nil {
				return err
			}
			if d >= price {
				return NewValidationError("discounted_price", "must be less than price")
			}
			fields["discounted_price"] = d
		}
	} else if in.Price != nil && current.DiscountedPrice != nil && *current.DiscountedPrice >= price {
		//価格だけ下げて割引が無意味になるのも弾く
		return NewValidationError("discounted_price", "must be less than price")
	}

	if in.Quantity != nil {
		quantity, err := ParseCount("quantity", *in.Quantity)
		if err != nil {
			return err
		}
		fields["quantity"] = quantity
	}
	if in.Unit != nil {
		unit := model.Unit(*in.Unit)
		if !unit.Valid() {
			return NewValidationError("unit", "unknown unit")
		}
		fields["unit"] = unit
	}
	if in.ImageURL != nil {
		fields["image_url"] = strings.TrimSpace(*in.ImageURL)
	}
	if in.InStock != nil {
		fields["in_stock"] = *in.InStock
	}
	if in.IsHotDeal != nil {
		fields["is_hot_deal"] = *in.IsHotDeal
	}

	if len(fields) == 0 {
		return NewValidationError("", "no fields to update")
	}

	now := u.clock.Now()
	fields["updated_at"] = now

	if err := u.productRepo.Update(ctx, productID, fields); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return repo.ErrNotFound
		}
		return NewStoreWriteError("update product", err)
	}

	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  sess.UserID,
		Action:       model.AuditActionUpdateProduct,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		BeforeJSON:   productJSON(current),
		CreatedAt:    now,
	}); err != nil {
		return NewStoreWriteError("write audit log", err)
	}

	return nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, sess Session, productID string) error {
	if !sess.Valid() {
		return ErrUnauthorized
	}
	if productID == "" {
		return NewValidationError("product_id", "required")
	}

	current, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := u.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return repo.ErrNotFound
		}
		return NewStoreWriteError("delete product", err)
	}

	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  sess.UserID,
		Action:       model.AuditActionDeleteProduct,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		BeforeJSON:   productJSON(current),
		CreatedAt:    u.clock.Now(),
	}); err != nil {
		return NewStoreWriteError("write audit log", err)
	}

	return nil
}

// 操作ログ用の要約JSON
func productJSON(p model.Product) string {
	return `{"name":` + strconv.Quote(p.Name) +
		`,"category":` + strconv.Quote(p.Category) +
		`,"price":` + strconv.FormatInt(p.Price, 10) + `}`
}
