package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// datasetFeatures is the feature catalogue shown on the About tab: one
// entry per emission column in the dataset, with a short description.
var datasetFeatures = [][2]string{
	{"🔥 Savanna Fires", "CO₂ emissions from fires in savanna regions"},
	{"🌲 Forest Fires", "Emissions from forest fire activity"},
	{"🌾 Crop Residues", "Emissions from burning or decomposition of leftover crop matter"},
	{"🍚 Rice Cultivation", "Methane emissions produced during rice farming"},
	{"🧪 Drained Organic Soils", "CO₂ released due to drainage of organic soils"},
	{"🧴 Pesticides Manufacturing", "Emissions from producing chemical pesticides"},
	{"🚛 Food Transport", "Emissions from shipping and moving food products"},
	{"🌳 Forestland", "Forest area acting as a carbon sink (negative emissions)"},
	{"🏜️ Net Forest Conversion", "Change in forest area due to land use shifts"},
	{"🏠 Food Household Consumption", "Emissions from food consumed in homes"},
	{"🛒 Food Retail", "Operational emissions of food retail businesses"},
	{"⚡ On-Farm Electricity Use", "Energy consumed directly on agricultural farms"},
	{"📦 Food Packaging", "Emissions from creation and disposal of packaging materials"},
	{"🗑️ Agrifood Systems Waste Disposal", "Emissions from waste generated in agrifood systems"},
	{"🏭 Food Processing", "Emissions from industrial food production and treatment"},
	{"🌐 Fertilizers Manufacturing", "CO₂ released during fertilizer production"},
	{"🏗️ IPPU", "Emissions from industrial processes and product use"},
	{"🚜 Manure Applied to Soils", "Emissions from animal manure spread on farmland"},
	{"🐄 Manure Left on Pasture", "Emissions from grazing livestock manure"},
	{"💩 Manure Management", "Emissions from handling and storage of animal waste"},
	{"🔥 Fires in Organic Soils", "Emissions caused by combustion of organic-rich soils"},
	{"🌴 Fires in Humid Tropical Forests", "CO₂ from wildfires in tropical forest ecosystems"},
	{"💡 On-Farm Energy Use", "Broader energy footprint of farm operations"},
	{"🧑‍🌾 Rural Population", "Demographic count of people in rural zones"},
	{"🏙️ Urban Population", "Population in urbanized regions"},
	{"👨 Total Population - Male", "Total male population"},
	{"👩 Total Population - Female", "Total female population"},
	{"🧮 Total Emission", "Sum of all recorded emissions across features"},
	{"🌡️ Average Temperature °C", "Annual temperature increase in degrees Celsius"},
}

const aboutIntro = `This project is built on the Agri-Food CO₂ Emission Dataset on Kaggle, compiled by merging and refining over a dozen individual sources from the Food and Agriculture Organization (FAO) and Intergovernmental Panel on Climate Change (IPCC).

The dataset provides a detailed view of agricultural emission activities across multiple sectors and years. It contains 7,000 rows and 31 columns, capturing variables such as savanna and forest fires, crop residue management, fertilizer production, rural and urban population statistics, and temperature variations.

Each entry represents emission data recorded in kilotonnes (kt) and covers the period from 1990 to 2020 for various global regions. This dataset enables in-depth exploratory analysis, helping us understand the intersection between agricultural activities and climate change.

It lays the groundwork for future integration of regression and forecasting models while currently driving awareness through interactive visualization and correlation-based insights.`

// buildAboutView is static content: the project introduction and the
// dataset feature catalogue.
func buildAboutView() fyne.CanvasObject {
	intro := widget.NewLabel(aboutIntro)
	intro.Wrapping = fyne.TextWrapWord

	featureRows := make([][]string, 0, len(datasetFeatures))
	for _, f := range datasetFeatures {
		featureRows = append(featureRows, []string{f[0], f[1]})
	}

	content := container.NewVBox(
		widget.NewLabelWithStyle("📘 Introduction", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		intro,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("📊 Dataset Features", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		newStringTable([]string{"Feature", "Description"}, featureRows),
	)
	return container.NewVScroll(container.NewPadded(content))
}
