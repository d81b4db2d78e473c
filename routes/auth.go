package routes

import (
	"errors"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/models"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/utils"
)

// Wrong password, unknown number and inactive account all answer with the
// same message so the caller cannot tell which part failed.
const invalidCredentialsMsg = "phoneNumber or password invalid"

type AuthHandler struct {
	DB     *gorm.DB
	Tokens *utils.TokenService
	Dev    bool
}

type OwnerSignupInput struct {
	Name            string `json:"name" validate:"required,min=3,max=50"`
	PhoneNumber     string `json:"phoneNumber" validate:"required"`
	ProfilePic      string `json:"profilePic" validate:"required,url"`
	Password        string `json:"password" validate:"required,min=3,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type CustomerSignupInput struct {
	Name            string `json:"name" validate:"omitempty,min=3,max=50"`
	PhoneNumber     string `json:"phoneNumber" validate:"required"`
	Password        string `json:"password" validate:"required,min=3,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=3,max=50"`
}

func (h *AuthHandler) OwnerSignup(ctx iris.Context) {
	var input OwnerSignupInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidatePhoneNumber(input.PhoneNumber) {
		utils.Error(ctx, "phoneNumber must be 10 digits")
		return
	}
	phone := utils.NormalizePhoneNumber(input.PhoneNumber)

	exists, err := h.ownerPhoneExists(phone)
	if err != nil {
		h.devLog("owner signup lookup error:", err)
		utils.InternalServerError(ctx)
		return
	}
	if exists {
		utils.Error(ctx, "PhoneNumber already exist")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(ctx, "Something wrong ..")
		return
	}

	owner := models.Owner{
		Name:        input.Name,
		PhoneNumber: phone,
		Password:    string(hashed),
		Status:      models.IdentityStatusActive,
		ProfilePic:  input.ProfilePic,
	}
	if err := h.DB.Create(&owner).Error; err != nil {
		h.devLog("owner signup create error:", err)
		utils.InternalServerError(ctx)
		return
	}

	token, err := h.Tokens.Sign(owner.ID, models.RoleOwner)
	if err != nil {
		h.devLog("owner signup token error:", err)
		utils.InternalServerError(ctx)
		return
	}

	ctx.Header("x-access-token", token)
	utils.Success(ctx, "Signup successfully", nil)
}

func (h *AuthHandler) OwnerLogin(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	phone := utils.NormalizePhoneNumber(input.PhoneNumber)

	var owner models.Owner
	err := h.DB.Select("id", "password").
		Where("phone_number = ? AND status = ?", phone, models.IdentityStatusActive).
		First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, invalidCredentialsMsg)
		return
	}
	if err != nil {
		h.devLog("owner login lookup error:", err)
		utils.InternalServerError(ctx)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(input.Password)) != nil {
		utils.Error(ctx, invalidCredentialsMsg)
		return
	}

	token, err := h.Tokens.Sign(owner.ID, models.RoleOwner)
	if err != nil {
		h.devLog("owner login token error:", err)
		utils.InternalServerError(ctx)
		return
	}

	ctx.Header("x-access-token", token)
	utils.Success(ctx, "login successfully", nil)
}

func (h *AuthHandler) CustomerSignup(ctx iris.Context) {
	var input CustomerSignupInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidatePhoneNumber(input.PhoneNumber) {
		utils.Error(ctx, "phoneNumber must be 10 digits")
		return
	}
	phone := utils.NormalizePhoneNumber(input.PhoneNumber)

	var existing models.Customer
	err := h.DB.Select("id").Where("phone_number = ?", phone).First(&existing).Error
	if err == nil {
		utils.Error(ctx, "PhoneNumber already exist")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.devLog("customer signup lookup error:", err)
		utils.InternalServerError(ctx)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(ctx, "Something wrong ..")
		return
	}

	customer := models.Customer{
		Name:         input.Name,
		PhoneNumber:  phone,
		Password:     string(hashed),
		Status:       models.IdentityStatusActive,
		CustomerType: models.CustomerTypeCustomer,
	}
	if err := h.DB.Create(&customer).Error; err != nil {
		h.devLog("customer signup create error:", err)
		utils.InternalServerError(ctx)
		return
	}

	token, err := h.Tokens.Sign(customer.ID, models.RoleCustomer)
	if err != nil {
		h.devLog("customer signup token error:", err)
		utils.InternalServerError(ctx)
		return
	}

	ctx.Header("x-access-token", token)
	utils.Success(ctx, "Signup successfully", nil)
}

func (h *AuthHandler) CustomerLogin(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	phone := utils.NormalizePhoneNumber(input.PhoneNumber)

	var customer models.Customer
	err := h.DB.Select("id", "password").
		Where("phone_number = ? AND status = ?", phone, models.IdentityStatusActive).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, invalidCredentialsMsg)
		return
	}
	if err != nil {
		h.devLog("customer login lookup error:", err)
		utils.InternalServerError(ctx)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(input.Password)) != nil {
		utils.Error(ctx, invalidCredentialsMsg)
		return
	}

	token, err := h.Tokens.Sign(customer.ID, models.RoleCustomer)
	if err != nil {
		h.devLog("customer login token error:", err)
		utils.InternalServerError(ctx)
		return
	}

	ctx.Header("x-access-token", token)
	utils.Success(ctx, "login successfully", nil)
}

func (h *AuthHandler) ownerPhoneExists(phone string) (bool, error) {
	var owner models.Owner
	err := h.DB.Select("id").Where("phone_number = ?", phone).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (h *AuthHandler) devLog(v ...interface{}) {
	if h.Dev {
		devLog(v...)
	}
}
