package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/autohub/site/seo"
)

var (
	cylinderOptions = []selectOption{
		{"3", "3 Cylinders"},
		{"4", "4 Cylinders"},
		{"5", "5 Cylinders"},
		{"6", "6 Cylinders"},
		{"8", "8 Cylinders"},
		{"10", "10 Cylinders"},
		{"12", "12 Cylinders"},
	}

	transmissionTypeOptions = []selectOption{
		{"Manual", "Manual"},
		{"Automatic", "Automatic"},
		{"CVT", "CVT (Continuously Variable)"},
		{"Dual-Clutch", "Dual-Clutch (DCT)"},
		{"Semi-Automatic", "Semi-Automatic"},
		{"Tiptronic", "Tiptronic"},
		{"Electric", "Electric (Single-speed)"},
	}

	trimTypeOptions = plainOptions(
		"Base", "Standard", "Sport", "Touring", "Luxury", "Premium",
		"Limited", "Platinum", "Off-Road", "Performance", "Custom", "Other",
	)

	fuelTypeOptions = plainOptions("Gasoline", "Diesel", "Hybrid", "Electric", "Plug-in Hybrid")

	transmissionOptions = plainOptions("Automatic", "Manual", "CVT")

	conditionOptions = []selectOption{
		{"new", "New"},
		{"used", "Used"},
		{"certified", "Certified Pre-Owned"},
	}

	bodyTypeOptions = plainOptions("Sedan", "SUV", "Hatchback", "Coupe", "Convertible", "Truck", "Van", "Wagon")
)

// NewCarPage is the add-car form. Year defaults to currentYear and may go one
// year past it.
func NewCarPage(meta seo.Metadata, v Viewer, currentYear int) g.Node {
	return Page(
		meta,
		v,
		[]g.Node{
			pageHeader("Add New Car"),
			P(Class("text-gray-500 mb-8"), g.Text("Fill in the details to add a new car to the marketplace")),
			Form(
				ID("newCarForm"),
				Class("space-y-6"),
				hx.Post("/api/cars"),
				hx.Target("#result"),
				hx.Indicator("#indicator"),
				Div(
					Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
					formGroup(requiredLabel("Brand"), "brand", textInput("brand", Required())),
					formGroup(requiredLabel("Model"), "carModel", textInput("carModel", Required())),
					formGroup(requiredLabel("VIN"), "vin", textInput("vin", Required())),
					formGroup(requiredLabel("Reg No"), "registrationNumber", textInput("registrationNumber", Required())),
					formGroup(requiredLabel("CC"), "cc", textInput("cc", Required())),
					formGroup(requiredLabel("Cylinders"), "cylinders", selectInput("cylinders", "Select cylinders", "", cylinderOptions)),
					formGroup(requiredLabel("Transmission Type"), "transmissionType", selectInput("transmissionType", "", "Manual", transmissionTypeOptions)),
					formGroup(requiredLabel("Year"), "year", numberInput("year",
						Value(strconv.Itoa(currentYear)),
						Min("1900"),
						Max(strconv.Itoa(currentYear+1)),
						Required(),
					)),
					formGroup(requiredLabel("Price ($)"), "price", numberInput("price", Min("0"), Required())),
					formGroup(requiredLabel("Mileage"), "mileage", numberInput("mileage", Min("0"), Required())),
					formGroup(requiredLabel("Trim Type"), "trimType", selectInput("trimType", "Select trim", "", trimTypeOptions)),
					formGroup(requiredLabel("Max Speed"), "maxSpeed", numberInput("maxSpeed", Min("0"), Required())),
					formGroup("Horsepower", "horsepower", numberInput("horsepower", Min("0"))),
					formGroup(requiredLabel("Fuel Type"), "fuelType", selectInput("fuelType", "", "Gasoline", fuelTypeOptions)),
					formGroup(requiredLabel("Transmission"), "transmission", selectInput("transmission", "", "Automatic", transmissionOptions)),
					formGroup(requiredLabel("Condition"), "condition", selectInput("condition", "", "used", conditionOptions)),
					formGroup(requiredLabel("Body Type"), "bodyType", selectInput("bodyType", "", "Sedan", bodyTypeOptions)),
					formGroup(requiredLabel("Exterior Color"), "exteriorColor", textInput("exteriorColor", Required())),
					formGroup(requiredLabel("Location"), "location", textInput("location", Placeholder("City, State"), Required())),
					formGroup("Image URL", "image", textInput("image", Placeholder("https://"))),
				),
				formGroup("Description", "description", Textarea(
					ID("description"),
					Name("description"),
					Class(inputClass),
					Rows("4"),
					Placeholder("Describe the vehicle's condition, features, and selling points..."),
				)),
				actionButtons(
					buttonSecondary("Cancel", withHref("/")),
					button("Add Car", withType("submit")),
				),
				resultContainer(),
			),
		},
	)
}
