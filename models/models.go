package models

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Car is a listing record as returned by the car list endpoint.
type Car struct {
	ID                 string  `json:"_id"`
	ProductID          string  `json:"productId"`
	Brand              string  `json:"brand"`
	CarModel           string  `json:"carModel"`
	Year               int     `json:"year"`
	Price              float64 `json:"price"`
	Status             string  `json:"status"`
	Odo                int     `json:"odo"`
	Name               string  `json:"name"`
	Image              string  `json:"image"`
	VIN                string  `json:"vin"`
	RegistrationNumber string  `json:"registrationNumber"`
	FuelType           string  `json:"fuelType"`
	CC                 string  `json:"cc"`
	Cylinders          string  `json:"cylinders"`
	TransmissionType   string  `json:"transmissionType"`
	MaxSpeed           string  `json:"maxSpeed"`
	BodyType           string  `json:"bodyType"`
	TrimType           string  `json:"trimType"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
	ExteriorColor      string  `json:"exteriorColor"`
	StockNumber        string  `json:"stockNumber"`
	HP                 int     `json:"hp"`
	Version            int     `json:"__v"`
}

// CarPage is one page of the car list endpoint.
type CarPage struct {
	Data        []Car `json:"data"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// HasMore reports whether pages after this one exist.
func (p CarPage) HasMore() bool {
	return p.CurrentPage < p.TotalPages
}

// CarDetails is the auction-style record returned by the single car endpoint.
type CarDetails struct {
	ProductID              string         `json:"product_id"`
	BodyTypeID             string         `json:"body_type_id"`
	StatusID               string         `json:"status_id"`
	ProductStageID         *string        `json:"product_stage_id"`
	VAM                    bool           `json:"vam"`
	PaymentOrderTypeStatus *string        `json:"payment_order_type_status"`
	DescriptionData        map[string]any `json:"description_data"`
	DescriptionDataAr      map[string]any `json:"description_data_ar"`
	Location               string         `json:"location"`
	VehicleImages          VehicleImages  `json:"vehicle_images"`
	Options                VehicleOptions `json:"options"`
	Type                   string         `json:"type"`
	ProductStatusID        *string        `json:"product_status_id"`
	Active                 bool           `json:"active"`
	InvoiceExpiry          string         `json:"invoice_expiry"`
	ContractNumber         string         `json:"contract_number"`
	PaidStatus             bool           `json:"paid_status"`
	BuyerID                string         `json:"buyer_id"`
	DisableStatus          bool           `json:"disable_status"`
	ImageURL               []string       `json:"imageUrl"`
	BuyStatus              string         `json:"buy_status"`
}

type VehicleImages struct {
	VehicleID   string      `json:"vehicle_id"`
	PartsImages []PartImage `json:"parts_images"`
}

type PartImage struct {
	PartID   string `json:"part_id"`
	PartName string `json:"part_name"`
	Image    string `json:"image"`
}

type VehicleOptions struct {
	VehicleID string   `json:"vehicle_id"`
	Options   []Option `json:"options"`
}

type Option struct {
	Key         string       `json:"key"`
	Title       string       `json:"title"`
	ArabicTitle string       `json:"arabic_title"`
	Data        []OptionData `json:"data"`
}

type OptionData struct {
	Data        string `json:"data"`
	Key         string `json:"key"`
	Title       string `json:"title"`
	ArabicTitle string `json:"arabic_title"`
}

// Description keys used by the detail page.
const (
	DescModelYear    = "Model Year"
	DescMake         = "Make"
	DescModel        = "Model"
	DescTrim         = "Trim/Type"
	DescODO          = "ODO"
	DescFuelType     = "Fuel Type"
	DescPrice        = "price"
	DescVIN          = "VIN Number"
	DescTransmission = "Transmission Type"
	DescBodyType     = "Body Type"
	DescColour       = "Exterior Colour"
)

// Desc returns a description_data value as display text. Missing and null
// values are returned as the empty string.
func (d *CarDetails) Desc(key string) string {
	return formatValue(d.DescriptionData[key])
}

// DescValue returns the raw description_data value.
func (d *CarDetails) DescValue(key string) any {
	return d.DescriptionData[key]
}

// Name joins year, make, model and trim, skipping missing parts.
func (d *CarDetails) Name() string {
	parts := make([]string, 0, 4)
	for _, key := range []string{DescModelYear, DescMake, DescModel, DescTrim} {
		if v := d.Desc(key); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// FrontImage returns the image file name of the "Front" part photo.
func (d *CarDetails) FrontImage() string {
	for _, part := range d.VehicleImages.PartsImages {
		if part.PartName == "Front" {
			return part.Image
		}
	}
	return ""
}

// Sale states shown as the detail page badge.
const (
	SaleAvailable = "Available"
	SaleReserved  = "Reserved"
	SaleSold      = "Sold"
)

// SaleStatus derives the badge from buy and payment status.
func (d *CarDetails) SaleStatus() string {
	if d.BuyStatus == "1" {
		return SaleSold
	}
	if d.PaymentOrderTypeStatus != nil && *d.PaymentOrderTypeStatus != "" {
		return SaleReserved
	}
	return SaleAvailable
}

// Field is a labelled description value.
type Field struct {
	Label string
	Value string
}

// Fields lists every set description value ordered by label. Null, empty
// text, numeric zero and false are left out; text such as "0" is kept.
func (d *CarDetails) Fields() []Field {
	fields := make([]Field, 0, len(d.DescriptionData))
	for label, raw := range d.DescriptionData {
		if !isSet(raw) {
			continue
		}
		value := formatValue(raw)
		if value == "" {
			continue
		}
		fields = append(fields, Field{Label: label, Value: value})
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Label < fields[j].Label
	})
	return fields
}

func isSet(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case bool:
		return val
	default:
		return true
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// NewCar is the create car request body.
type NewCar struct {
	Brand              string `json:"brand"`
	CarModel           string `json:"carModel"`
	VIN                string `json:"vin"`
	RegistrationNumber string `json:"registrationNumber"`
	CC                 string `json:"cc"`
	Year               int    `json:"year"`
	Price              int    `json:"price"`
	Mileage            int    `json:"mileage"`
	Cylinders          string `json:"cylinders"`
	TransmissionType   string `json:"transmissionType"`
	MaxSpeed           string `json:"maxSpeed"`
	FuelType           string `json:"fuelType"`
	Transmission       string `json:"transmission"`
	Horsepower         *int   `json:"horsepower,omitempty"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	Condition          string `json:"condition"`
	BodyType           string `json:"bodyType"`
	ExteriorColor      string `json:"exteriorColor"`
	Image              string `json:"image"`
	TrimType           string `json:"trimType"`
}

// Token is a bearer credential with its lifetime in milliseconds.
type Token struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type Tokens struct {
	Access  Token `json:"access"`
	Refresh Token `json:"refresh"`
}

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResult is the email login response.
type LoginResult struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}
