package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strconv"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProfileUsecase struct {
	profileRepo repo.ShopProfileRepository
	auditRepo   repo.AuditLogRepository
	clock       Clock
}

// DI
func NewProfileUsecase(
	profileRepo repo.ShopProfileRepository,
	auditRepo repo.AuditLogRepository,
	clock Clock,
) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
		clock:       clock,
	}
}

func (u *ProfileUsecase) Get(ctx context.Context, sess Session) (model.ShopProfile, error) {
	if !sess.Valid() {
		return model.ShopProfile{}, ErrUnauthorized
	}

	p, err := u.profileRepo.FindByShopID(ctx, sess.ShopID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.ShopProfile{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShopProfile{}, err
	}
	return p, nil
}

type UpdateProfileInput struct {
	Name            string
	OwnerName       string
	Email           string
	Phone           string
	PinCode         string
	ShopType        string
	Description     string
	Address         string
	LogoURL         string
	BannerURL       string
	PickupAvailable bool
}

func (u *ProfileUsecase) Update(ctx context.Context, sess Session, in UpdateProfileInput) error {
	if !sess.Valid() {
		return ErrUnauthorized
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return NewValidationError("name", "required")
	}
	ownerName := strings.TrimSpace(in.OwnerName)
	if ownerName == "" {
		return NewValidationError("owner_name", "required")
	}

	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return NewValidationError("email", "invalid email format")
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return NewValidationError("phone", "required")
	}
	pinCode := strings.TrimSpace(in.PinCode)
	if pinCode == "" {
		return NewValidationError("pin_code", "required")
	}

	shopType := model.ShopType(in.ShopType)
	if !shopType.Valid() {
		return NewValidationError("shop_type", "unknown shop type")
	}

	current, err := u.profileRepo.FindByShopID(ctx, sess.ShopID)
	if errors.Is(err, repo.ErrNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		return err
	}

	now := u.clock.Now()
	updated := current
	updated.Name = name
	updated.OwnerName = ownerName
	updated.Email = email
	updated.Phone = phone
	updated.PinCode = pinCode
	updated.ShopType = shopType
	updated.Description = strings.TrimSpace(in.Description)
	updated.Address = strings.TrimSpace(in.Address)
	updated.LogoURL = strings.TrimSpace(in.LogoURL)
	updated.BannerURL = strings.TrimSpace(in.BannerURL)
	updated.PickupAvailable = in.PickupAvailable
	updated.UpdatedAt = now

	if err := u.profileRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return repo.ErrNotFound
		}
		return NewStoreWriteError("update shop profile", err)
	}

	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  sess.UserID,
		Action:       model.AuditActionUpdateProfile,
		ResourceType: model.AuditResourceProfile,
		ResourceID:   sess.ShopID,
		BeforeJSON:   profileJSON(current),
		AfterJSON:    profileJSON(updated),
		CreatedAt:    now,
	}); err != nil {
		return NewStoreWriteError("write audit log", err)
	}

	return nil
}

func profileJSON(p model.ShopProfile) string {
	return `{"name":` + strconv.Quote(p.Name) +
		`,"shop_type":` + strconv.Quote(string(p.ShopType)) + `}`
}
