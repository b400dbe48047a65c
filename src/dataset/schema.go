package dataset

// Column names as they appear in the CSV header. Spacing and casing are an
// exact contract with the data source; a mismatch is a load-time error.
const (
	ColArea = "Area"
	ColYear = "Year"

	ColSavannaFires          = "Savanna fires"
	ColForestFires           = "Forest fires"
	ColCropResidues          = "Crop Residues"
	ColRiceCultivation       = "Rice Cultivation"
	ColDrainedOrganicSoils   = "Drained organic soils (CO2)"
	ColPesticidesManuf       = "Pesticides Manufacturing"
	ColFoodTransport         = "Food Transport"
	ColForestland            = "Forestland"
	ColNetForestConversion   = "Net Forest conversion"
	ColFoodHouseholdConsump  = "Food Household Consumption"
	ColFoodRetail            = "Food Retail"
	ColOnFarmElectricityUse  = "On-farm Electricity Use"
	ColFoodPackaging         = "Food Packaging"
	ColAgrifoodWasteDisposal = "Agrifood Systems Waste Disposal"
	ColFoodProcessing        = "Food Processing"
	ColFertilizersManuf      = "Fertilizers Manufacturing"
	ColIPPU                  = "IPPU"
	ColManureApplied         = "Manure applied to Soils"
	ColManureLeftOnPasture   = "Manure left on Pasture"
	ColManureManagement      = "Manure Management"
	ColFiresOrganicSoils     = "Fires in organic soils"
	ColFiresHumidTropical    = "Fires in humid tropical forests"
	ColOnFarmEnergyUse       = "On-farm energy use"
	ColRuralPopulation       = "Rural population"
	ColUrbanPopulation       = "Urban population"
	ColPopulationMale        = "Total Population - Male"
	ColPopulationFemale      = "Total Population - Female"
	ColTotalEmission         = "total_emission"
	ColAvgTemperature        = "Average Temperature °C"
)

// NumericColumns is the declared schema for the measure columns, in CSV
// order. Load validates that every one of these is present in the header.
var NumericColumns = []string{
	ColSavannaFires,
	ColForestFires,
	ColCropResidues,
	ColRiceCultivation,
	ColDrainedOrganicSoils,
	ColPesticidesManuf,
	ColFoodTransport,
	ColForestland,
	ColNetForestConversion,
	ColFoodHouseholdConsump,
	ColFoodRetail,
	ColOnFarmElectricityUse,
	ColFoodPackaging,
	ColAgrifoodWasteDisposal,
	ColFoodProcessing,
	ColFertilizersManuf,
	ColIPPU,
	ColManureApplied,
	ColManureLeftOnPasture,
	ColManureManagement,
	ColFiresOrganicSoils,
	ColFiresHumidTropical,
	ColOnFarmEnergyUse,
	ColRuralPopulation,
	ColUrbanPopulation,
	ColPopulationMale,
	ColPopulationFemale,
	ColTotalEmission,
	ColAvgTemperature,
}
