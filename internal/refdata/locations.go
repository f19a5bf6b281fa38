package refdata

import "github.com/planetmode/worldstate/internal/domain"

// Place is a named point used for hotspot and weather event placement.
type Place struct {
	Name   string        `json:"name"`
	Coords domain.Coords `json:"coords"`
	Region string        `json:"region"`
}

// Hotspots lists locations for synthetic conflict, infrastructure,
// disaster, protest, and cyber events: conflict zones, chokepoints, and
// disaster-prone areas.
var Hotspots = []Place{
	{Name: "Kyiv", Coords: domain.Coords{50.4501, 30.5234}, Region: "Europe"},
	{Name: "Gaza", Coords: domain.Coords{31.3547, 34.3088}, Region: "MENA"},
	{Name: "Khartoum", Coords: domain.Coords{15.5007, 32.5599}, Region: "Africa"},
	{Name: "Yangon", Coords: domain.Coords{16.8661, 96.1951}, Region: "Asia"},
	{Name: "Taipei", Coords: domain.Coords{25.0330, 121.5654}, Region: "Asia"},
	{Name: "Caracas", Coords: domain.Coords{10.4806, -66.9036}, Region: "Americas"},
	{Name: "Tehran", Coords: domain.Coords{35.6892, 51.3890}, Region: "MENA"},
	{Name: "Kabul", Coords: domain.Coords{34.5553, 69.2075}, Region: "Asia"},
	{Name: "Mogadishu", Coords: domain.Coords{2.0469, 45.3182}, Region: "Africa"},
	{Name: "Bogota", Coords: domain.Coords{4.7110, -74.0721}, Region: "Americas"},
	{Name: "Dhaka", Coords: domain.Coords{23.8103, 90.4125}, Region: "Asia"},
	{Name: "Tripoli", Coords: domain.Coords{32.9022, 13.1800}, Region: "MENA"},
	{Name: "Port-au-Prince", Coords: domain.Coords{18.5944, -72.3074}, Region: "Americas"},
	{Name: "Donetsk", Coords: domain.Coords{48.0159, 37.8028}, Region: "Europe"},
	{Name: "Aleppo", Coords: domain.Coords{36.2021, 37.1343}, Region: "MENA"},
	{Name: "Bamako", Coords: domain.Coords{12.6392, -8.0029}, Region: "Africa"},
	{Name: "Odesa", Coords: domain.Coords{46.4825, 30.7233}, Region: "Europe"},
	{Name: "Aden", Coords: domain.Coords{12.7855, 45.0187}, Region: "MENA"},
	{Name: "Manila", Coords: domain.Coords{14.5995, 120.9842}, Region: "Asia"},
	{Name: "Addis Ababa", Coords: domain.Coords{9.0250, 38.7469}, Region: "Africa"},
	// Infrastructure chokepoints.
	{Name: "Strait of Hormuz", Coords: domain.Coords{26.5667, 56.2500}, Region: "MENA"},
	{Name: "Suez Canal", Coords: domain.Coords{30.4550, 32.3500}, Region: "MENA"},
	{Name: "Panama Canal", Coords: domain.Coords{9.0800, -79.6800}, Region: "Americas"},
	{Name: "Strait of Malacca", Coords: domain.Coords{2.5000, 101.5000}, Region: "Asia"},
	{Name: "Bosphorus", Coords: domain.Coords{41.1200, 29.0500}, Region: "Europe"},
	// Natural disaster prone.
	{Name: "Ring of Fire - Japan", Coords: domain.Coords{35.0000, 139.0000}, Region: "Asia"},
	{Name: "San Andreas Fault", Coords: domain.Coords{35.0000, -119.0000}, Region: "Americas"},
	{Name: "Caribbean Basin", Coords: domain.Coords{18.0000, -68.0000}, Region: "Americas"},
	{Name: "Bay of Bengal", Coords: domain.Coords{15.0000, 88.0000}, Region: "Asia"},
	{Name: "Sahel Region", Coords: domain.Coords{14.0000, 0.0000}, Region: "Africa"},
}

// WeatherCities lists well-known cities sampled for live weather events.
var WeatherCities = []Place{
	{Name: "Berlin", Coords: domain.Coords{52.52, 13.40}, Region: "Europe"},
	{Name: "London", Coords: domain.Coords{51.51, -0.13}, Region: "Europe"},
	{Name: "Paris", Coords: domain.Coords{48.86, 2.35}, Region: "Europe"},
	{Name: "New York", Coords: domain.Coords{40.71, -74.01}, Region: "North America"},
	{Name: "Tokyo", Coords: domain.Coords{35.68, 139.69}, Region: "East Asia"},
	{Name: "Sydney", Coords: domain.Coords{-33.87, 151.21}, Region: "Oceania"},
	{Name: "São Paulo", Coords: domain.Coords{-23.55, -46.63}, Region: "South America"},
	{Name: "Mumbai", Coords: domain.Coords{19.08, 72.88}, Region: "South Asia"},
	{Name: "Dubai", Coords: domain.Coords{25.20, 55.27}, Region: "Middle East"},
	{Name: "Nairobi", Coords: domain.Coords{-1.29, 36.82}, Region: "East Africa"},
	{Name: "Mexico City", Coords: domain.Coords{19.43, -99.13}, Region: "North America"},
	{Name: "Shanghai", Coords: domain.Coords{31.23, 121.47}, Region: "East Asia"},
	{Name: "Moscow", Coords: domain.Coords{55.76, 37.62}, Region: "Eastern Europe"},
	{Name: "Lagos", Coords: domain.Coords{6.52, 3.38}, Region: "West Africa"},
	{Name: "Jakarta", Coords: domain.Coords{-6.21, 106.85}, Region: "Southeast Asia"},
	{Name: "Cairo", Coords: domain.Coords{30.04, 31.24}, Region: "North Africa"},
}
