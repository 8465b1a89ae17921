package instant

// Rates is the open.er-api.com latest rates payload.
type Rates struct {
	Result         string             `json:"result"`
	ErrorType      string             `json:"error-type,omitempty"`
	Base           string             `json:"base_code"`
	Rates          map[string]float64 `json:"rates"`
	LegacyRates    map[string]float64 `json:"conversion_rates,omitempty"`
	TimeLastUpdate string             `json:"time_last_update_utc"`
}

// Place is a geocoding hit.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Admin1    string  `json:"admin1,omitempty"`
	Country   string  `json:"country,omitempty"`
}

type geocodeResponse struct {
	Results []Place `json:"results"`
}

// Forecast is the subset of the open-meteo forecast payload the assistant reads.
type Forecast struct {
	Current CurrentWeather `json:"current"`
	Daily   DailyWeather   `json:"daily"`
}

// CurrentWeather holds current conditions. Pointers are nil when a value is missing.
type CurrentWeather struct {
	Time                string   `json:"time"`
	Temperature         *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	RelativeHumidity    *float64 `json:"relative_humidity_2m"`
	WindSpeed           *float64 `json:"wind_speed_10m"`
	WeatherCode         *int     `json:"weather_code"`
}

// DailyWeather holds parallel per-day arrays.
type DailyWeather struct {
	Time                     []string  `json:"time"`
	TemperatureMax           []float64 `json:"temperature_2m_max"`
	TemperatureMin           []float64 `json:"temperature_2m_min"`
	PrecipitationProbability []float64 `json:"precipitation_probability_max"`
	WeatherCode              []int     `json:"weather_code"`
}
