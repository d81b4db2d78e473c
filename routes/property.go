package routes

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/models"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/utils"
)

const propertyNotFoundMsg = "Property not found"

type PropertyHandler struct {
	DB  *gorm.DB
	Dev bool
}

type SpecificationsInput struct {
	Bedrooms  int `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms int `json:"bathrooms" validate:"omitempty,gte=0"`
	Area      int `json:"area" validate:"omitempty,gte=0"` // sqft
}

type PropertyInput struct {
	Title          string               `json:"title" validate:"required,min=5,max=100"`
	Description    string               `json:"description" validate:"required,min=10,max=1000"`
	Price          int                  `json:"price" validate:"required,gte=1"`
	TopCities      string               `json:"topCities" validate:"required,oneof=Mumbai Delhi Bengaluru Hyderabad Chennai Kolkata Pune Ahmedabad Surat Jaipur"`
	Location       string               `json:"location" validate:"required,min=5,max=100"`
	Images         []string             `json:"images" validate:"required,min=1,dive,url"`
	PropertyType   string               `json:"propertyType" validate:"required,oneof=apartment pg plots flats house"`
	ListingType    string               `json:"listingType" validate:"required,oneof=sale rent"`
	Specifications *SpecificationsInput `json:"specifications"`
}

func (h *PropertyHandler) Create(ctx iris.Context) {
	claims, ok := utils.Authenticated(ctx)
	if !ok {
		utils.Error(ctx, "Token not provided")
		return
	}

	var input PropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	images, err := json.Marshal(input.Images)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}

	property := models.Property{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Price:        input.Price,
		TopCities:    input.TopCities,
		Location:     strings.TrimSpace(input.Location),
		Images:       datatypes.JSON(images),
		PropertyType: input.PropertyType,
		ListingType:  input.ListingType,
		Status:       models.PropertyStatusActive,
		OwnerID:      claims.ID,
	}
	if input.Specifications != nil {
		specs, err := json.Marshal(input.Specifications)
		if err != nil {
			utils.InternalServerError(ctx)
			return
		}
		property.Specifications = datatypes.JSON(specs)
	}

	if err := h.DB.Create(&property).Error; err != nil {
		h.devLog("property create error:", err)
		utils.InternalServerError(ctx)
		return
	}

	utils.Success(ctx, "property create successfully", nil)
}

// List is the public search. Each optional filter activates independently;
// the implicit status predicate keeps inactive and deleted rows out.
func (h *PropertyHandler) List(ctx iris.Context) {
	pagination, err := utils.ParsePagination(ctx)
	if err != nil {
		utils.Error(ctx, err.Error())
		return
	}

	topCities := strings.TrimSpace(ctx.URLParam("topCities"))
	listingType := strings.TrimSpace(ctx.URLParam("listingType"))
	propertyType := strings.TrimSpace(ctx.URLParam("propertyType"))
	if !validEnumFilter(ctx, "topCities", topCities, models.TopCities) ||
		!validEnumFilter(ctx, "listingType", listingType, models.ListingTypes) ||
		!validEnumFilter(ctx, "propertyType", propertyType, models.PropertyTypes) {
		return
	}

	query := h.DB.Model(&models.Property{}).Where("status = ?", models.PropertyStatusActive)
	if topCities != "" {
		query = query.Where("top_cities = ?", topCities)
	}
	if listingType != "" {
		query = query.Where("listing_type = ?", listingType)
	}
	if propertyType != "" {
		query = query.Where("property_type = ?", propertyType)
	}

	var totalCount int64
	if err := query.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		h.devLog("property list count error:", err)
		utils.InternalServerError(ctx)
		return
	}

	var items []models.Property
	err = query.Session(&gorm.Session{}).Omit("status").
		Order("id DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&items).Error
	if err != nil {
		h.devLog("property list error:", err)
		utils.InternalServerError(ctx)
		return
	}

	if len(items) == 0 {
		utils.Error(ctx, propertyNotFoundMsg)
		return
	}

	utils.Success(ctx, "Property fetch successfully", iris.Map{
		"items":      items,
		"totalCount": totalCount,
	})
}

// ListByOwner shows the caller's own listings. Inactive rows stay visible to
// their owner; only soft-deleted ones are hidden.
func (h *PropertyHandler) ListByOwner(ctx iris.Context) {
	claims, ok := utils.Authenticated(ctx)
	if !ok {
		utils.Error(ctx, "Token not provided")
		return
	}

	pagination, err := utils.ParsePagination(ctx)
	if err != nil {
		utils.Error(ctx, err.Error())
		return
	}

	query := h.DB.Model(&models.Property{}).
		Where("owner_id = ? AND status <> ?", claims.ID, models.PropertyStatusDelete)

	var totalCount int64
	if err := query.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		h.devLog("property list-by-owner count error:", err)
		utils.InternalServerError(ctx)
		return
	}

	var items []models.Property
	err = query.Session(&gorm.Session{}).Omit("owner_id").
		Order("id DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&items).Error
	if err != nil {
		h.devLog("property list-by-owner error:", err)
		utils.InternalServerError(ctx)
		return
	}

	if len(items) == 0 {
		utils.Error(ctx, propertyNotFoundMsg)
		return
	}

	utils.Success(ctx, "Property fetch successfully", iris.Map{
		"items":      items,
		"totalCount": totalCount,
	})
}

// Update replaces every field of one of the caller's listings. A miss (wrong
// id, foreign owner or soft-deleted row) answers with a success-shaped
// not-found envelope, unlike the list routes.
func (h *PropertyHandler) Update(ctx iris.Context) {
	claims, ok := utils.Authenticated(ctx)
	if !ok {
		utils.Error(ctx, "Token not provided")
		return
	}

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.Error(ctx, "id must be number")
		return
	}

	var input PropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	images, err := json.Marshal(input.Images)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}

	updates := map[string]interface{}{
		"title":         strings.TrimSpace(input.Title),
		"description":   strings.TrimSpace(input.Description),
		"price":         input.Price,
		"top_cities":    input.TopCities,
		"location":      strings.TrimSpace(input.Location),
		"images":        datatypes.JSON(images),
		"property_type": input.PropertyType,
		"listing_type":  input.ListingType,
	}
	if input.Specifications != nil {
		specs, err := json.Marshal(input.Specifications)
		if err != nil {
			utils.InternalServerError(ctx)
			return
		}
		updates["specifications"] = datatypes.JSON(specs)
	}

	res := h.DB.Model(&models.Property{}).
		Where("id = ? AND owner_id = ? AND status <> ?", id, claims.ID, models.PropertyStatusDelete).
		Updates(updates)
	if res.Error != nil {
		h.devLog("property update error:", res.Error)
		utils.InternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.Success(ctx, propertyNotFoundMsg, nil)
		return
	}

	utils.Success(ctx, "Property updated successfully", nil)
}

// StatusUpdate transitions a listing between active and inactive, or into
// delete. The delete status is terminal: the predicate excludes already
// deleted rows, so nothing can be undeleted.
func (h *PropertyHandler) StatusUpdate(ctx iris.Context) {
	claims, ok := utils.Authenticated(ctx)
	if !ok {
		utils.Error(ctx, "Token not provided")
		return
	}

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.Error(ctx, "id must be number")
		return
	}

	status := ctx.Params().Get("status")
	if !slices.Contains(models.PropertyStatuses, status) {
		utils.Error(ctx, "status must be "+strings.Join(models.PropertyStatuses, " or "))
		return
	}

	res := h.DB.Model(&models.Property{}).
		Where("id = ? AND owner_id = ? AND status <> ?", id, claims.ID, models.PropertyStatusDelete).
		Update("status", status)
	if res.Error != nil {
		h.devLog("property status update error:", res.Error)
		utils.InternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.Success(ctx, propertyNotFoundMsg, nil)
		return
	}

	utils.Success(ctx, "property status updated successfully", nil)
}

// Details serves a single active listing. The owner reference never leaves
// the API; authenticated callers get the masked contact block instead.
func (h *PropertyHandler) Details(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.Error(ctx, "id must be number")
		return
	}

	var property models.Property
	err = h.DB.Where("id = ? AND status = ?", id, models.PropertyStatusActive).First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, propertyNotFoundMsg)
		return
	}
	if err != nil {
		h.devLog("property details error:", err)
		utils.InternalServerError(ctx)
		return
	}

	ownerID := property.OwnerID
	property.OwnerID = 0
	property.Status = ""

	if _, ok := utils.Authenticated(ctx); ok {
		var owner models.Owner
		if err := h.DB.Select("name", "phone_number").First(&owner, ownerID).Error; err == nil {
			property.OwnerDetails = &models.OwnerContact{
				Name:        owner.Name,
				PhoneNumber: owner.PhoneNumber,
			}
		}
	}

	utils.Success(ctx, "Property details fetch successfully", property)
}

func (h *PropertyHandler) StaticData(ctx iris.Context) {
	utils.Success(ctx, "property static fetch successfully", iris.Map{
		"topCities":    models.TopCities,
		"listingType":  models.ListingTypes,
		"propertyType": models.PropertyTypes,
	})
}

func validEnumFilter(ctx iris.Context, name, value string, allowed []string) bool {
	if value == "" || slices.Contains(allowed, value) {
		return true
	}
	utils.Error(ctx, name+" must be "+strings.Join(allowed, " or "))
	return false
}

func (h *PropertyHandler) devLog(v ...interface{}) {
	if h.Dev {
		devLog(v...)
	}
}
