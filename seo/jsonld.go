package seo

import (
	"encoding/json"

	"github.com/autohub/site/models"
)

type Brand struct {
	Type string `json:"@type"`
	Name any    `json:"name"`
}

type QuantitativeValue struct {
	Type     string `json:"@type"`
	Value    any    `json:"value"`
	UnitCode string `json:"unitCode"`
}

type Offer struct {
	Type          string `json:"@type"`
	Price         any    `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
}

// CarLD is a schema.org Car.
type CarLD struct {
	Context             string            `json:"@context"`
	Type                string            `json:"@type"`
	Name                string            `json:"name"`
	Brand               Brand             `json:"brand"`
	Model               any               `json:"model"`
	ProductionDate      string            `json:"productionDate,omitempty"`
	MileageFromOdometer QuantitativeValue `json:"mileageFromOdometer"`
	FuelType            any               `json:"fuelType"`
	VehicleTransmission any               `json:"vehicleTransmission"`
	BodyType            any               `json:"bodyType"`
	Color               any               `json:"color"`
	Offers              Offer             `json:"offers"`
}

// NewCarLD maps a detail record to structured data. Values are passed through
// as the API typed them.
func NewCarLD(d *models.CarDetails) CarLD {
	return CarLD{
		Context: "https://schema.org/",
		Type:    "Car",
		Name:    d.Name(),
		Brand: Brand{
			Type: "Brand",
			Name: d.DescValue(models.DescMake),
		},
		Model:          d.DescValue(models.DescModel),
		ProductionDate: d.Desc(models.DescModelYear),
		MileageFromOdometer: QuantitativeValue{
			Type:     "QuantitativeValue",
			Value:    d.DescValue(models.DescODO),
			UnitCode: "SMI",
		},
		FuelType:            d.DescValue(models.DescFuelType),
		VehicleTransmission: d.DescValue(models.DescTransmission),
		BodyType:            d.DescValue(models.DescBodyType),
		Color:               d.DescValue(models.DescColour),
		Offers: Offer{
			Type:          "Offer",
			Price:         d.DescValue(models.DescPrice),
			PriceCurrency: "USD",
			Availability:  "https://schema.org/InStock",
		},
	}
}

// JSON encodes the structured data for an application/ld+json script.
// encoding/json escapes <, > and &, so the output is safe inside a script tag.
func (c CarLD) JSON() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
