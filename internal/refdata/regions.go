package refdata

import "github.com/planetmode/worldstate/internal/domain"

// ImperviousArea tracks built-up surface area (km²) at four sample years.
type ImperviousArea struct {
	Y2000 float64 `json:"y2000"`
	Y2010 float64 `json:"y2010"`
	Y2020 float64 `json:"y2020"`
	Y2024 float64 `json:"y2024"`
}

// Region is one monitored metropolitan area.
type Region struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Country       string         `json:"country"`
	Center        domain.Coords  `json:"center"`
	Population    int            `json:"population"`
	ImperviousKm2 ImperviousArea `json:"imperviousKm2"`
	Polygon       [][2]float64   `json:"polygon"`
}

// GrowthRatePct returns the 2020-2024 growth of impervious surface as a
// percentage of the 2020 figure.
func (r Region) GrowthRatePct() float64 {
	if r.ImperviousKm2.Y2020 == 0 {
		return 0
	}
	return (r.ImperviousKm2.Y2024 - r.ImperviousKm2.Y2020) / r.ImperviousKm2.Y2020 * 100
}

// Regions lists the monitored urban boundary regions.
var Regions = []Region{
	{
		ID: "gub-tokyo", Name: "Tokyo Metropolitan", Country: "Japan",
		Center: domain.Coords{35.6762, 139.6503}, Population: 37_400_000,
		ImperviousKm2: ImperviousArea{Y2000: 2180, Y2010: 2340, Y2020: 2420, Y2024: 2460},
		Polygon: [][2]float64{
			{35.85, 139.45}, {35.90, 139.75}, {35.82, 140.05},
			{35.55, 140.15}, {35.40, 139.95}, {35.45, 139.55},
			{35.60, 139.40}, {35.85, 139.45},
		},
	},
	{
		ID: "gub-shanghai", Name: "Shanghai", Country: "China",
		Center: domain.Coords{31.2304, 121.4737}, Population: 28_500_000,
		ImperviousKm2: ImperviousArea{Y2000: 1100, Y2010: 2200, Y2020: 3100, Y2024: 3350},
		Polygon: [][2]float64{
			{31.45, 121.15}, {31.50, 121.55}, {31.40, 121.80},
			{31.10, 121.85}, {30.95, 121.55}, {31.05, 121.20},
			{31.25, 121.10}, {31.45, 121.15},
		},
	},
	{
		ID: "gub-delhi", Name: "Delhi NCR", Country: "India",
		Center: domain.Coords{28.7041, 77.1025}, Population: 32_900_000,
		ImperviousKm2: ImperviousArea{Y2000: 680, Y2010: 1200, Y2020: 1850, Y2024: 2100},
		Polygon: [][2]float64{
			{28.90, 76.85}, {28.95, 77.25}, {28.85, 77.45},
			{28.50, 77.50}, {28.35, 77.20}, {28.45, 76.90},
			{28.65, 76.80}, {28.90, 76.85},
		},
	},
	{
		ID: "gub-saopaulo", Name: "São Paulo", Country: "Brazil",
		Center: domain.Coords{-23.5505, -46.6333}, Population: 22_400_000,
		ImperviousKm2: ImperviousArea{Y2000: 1800, Y2010: 2050, Y2020: 2250, Y2024: 2320},
		Polygon: [][2]float64{
			{-23.35, -46.85}, {-23.30, -46.50}, {-23.40, -46.30},
			{-23.65, -46.35}, {-23.75, -46.60}, {-23.65, -46.90},
			{-23.45, -46.95}, {-23.35, -46.85},
		},
	},
	{
		ID: "gub-cairo", Name: "Greater Cairo", Country: "Egypt",
		Center: domain.Coords{30.0444, 31.2357}, Population: 21_300_000,
		ImperviousKm2: ImperviousArea{Y2000: 450, Y2010: 680, Y2020: 920, Y2024: 1050},
		Polygon: [][2]float64{
			{30.20, 31.05}, {30.25, 31.35}, {30.15, 31.50},
			{29.90, 31.45}, {29.80, 31.20}, {29.90, 31.00},
			{30.05, 30.95}, {30.20, 31.05},
		},
	},
	{
		ID: "gub-lagos", Name: "Lagos", Country: "Nigeria",
		Center: domain.Coords{6.5244, 3.3792}, Population: 16_600_000,
		ImperviousKm2: ImperviousArea{Y2000: 280, Y2010: 520, Y2020: 880, Y2024: 1100},
		Polygon: [][2]float64{
			{6.70, 3.15}, {6.75, 3.45}, {6.65, 3.65},
			{6.40, 3.60}, {6.30, 3.35}, {6.40, 3.10},
			{6.55, 3.05}, {6.70, 3.15},
		},
	},
	{
		ID: "gub-london", Name: "Greater London", Country: "United Kingdom",
		Center: domain.Coords{51.5074, -0.1278}, Population: 9_500_000,
		ImperviousKm2: ImperviousArea{Y2000: 1580, Y2010: 1610, Y2020: 1640, Y2024: 1660},
		Polygon: [][2]float64{
			{51.65, -0.35}, {51.68, 0.05}, {51.60, 0.25},
			{51.40, 0.30}, {51.30, 0.05}, {51.35, -0.35},
			{51.50, -0.45}, {51.65, -0.35},
		},
	},
	{
		ID: "gub-newyork", Name: "New York Metro", Country: "United States",
		Center: domain.Coords{40.7128, -74.0060}, Population: 20_100_000,
		ImperviousKm2: ImperviousArea{Y2000: 3200, Y2010: 3280, Y2020: 3350, Y2024: 3380},
		Polygon: [][2]float64{
			{40.95, -74.25}, {40.98, -73.85}, {40.88, -73.65},
			{40.55, -73.70}, {40.45, -74.00}, {40.55, -74.25},
			{40.75, -74.35}, {40.95, -74.25},
		},
	},
	{
		ID: "gub-istanbul", Name: "Istanbul", Country: "Turkey",
		Center: domain.Coords{41.0082, 28.9784}, Population: 15_800_000,
		ImperviousKm2: ImperviousArea{Y2000: 520, Y2010: 850, Y2020: 1200, Y2024: 1350},
		Polygon: [][2]float64{
			{41.20, 28.70}, {41.22, 29.05}, {41.15, 29.30},
			{40.90, 29.25}, {40.85, 29.00}, {40.92, 28.75},
			{41.05, 28.65}, {41.20, 28.70},
		},
	},
	{
		ID: "gub-mexicocity", Name: "Mexico City", Country: "Mexico",
		Center: domain.Coords{19.4326, -99.1332}, Population: 21_800_000,
		ImperviousKm2: ImperviousArea{Y2000: 1350, Y2010: 1520, Y2020: 1680, Y2024: 1740},
		Polygon: [][2]float64{
			{19.60, -99.35}, {19.62, -99.00}, {19.52, -98.90},
			{19.25, -98.95}, {19.18, -99.20}, {19.30, -99.45},
			{19.42, -99.50}, {19.60, -99.35},
		},
	},
}
