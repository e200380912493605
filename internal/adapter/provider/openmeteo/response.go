package openmeteo

import "github.com/seongjinkim/tripday-backend/internal/domain"

// geocodingResponse is the shape of the Open-Meteo geocoding search response.
type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

// forecastResponse is the shape of the Open-Meteo forecast response, limited
// to the daily block we request.
type forecastResponse struct {
	Daily dailyForecast `json:"daily"`
}

type dailyForecast struct {
	Time           []string  `json:"time"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
	WeatherCode    []int     `json:"weather_code"`
}

// digest reduces a multi-day forecast to a single trip-level summary: the
// hottest maximum, the coldest minimum and the description of the most severe
// weather code seen. Returns nil when the forecast is empty.
func digest(daily *dailyForecast) *domain.WeatherSummary {
	if daily == nil || len(daily.TemperatureMax) == 0 || len(daily.TemperatureMin) == 0 {
		return nil
	}

	maxTemp := daily.TemperatureMax[0]
	for _, v := range daily.TemperatureMax[1:] {
		if v > maxTemp {
			maxTemp = v
		}
	}

	minTemp := daily.TemperatureMin[0]
	for _, v := range daily.TemperatureMin[1:] {
		if v < minTemp {
			minTemp = v
		}
	}

	worstCode := 0
	for _, code := range daily.WeatherCode {
		if code > worstCode {
			worstCode = code
		}
	}

	return &domain.WeatherSummary{
		MaxTemp:     maxTemp,
		MinTemp:     minTemp,
		Description: describeWeatherCode(worstCode),
	}
}

// describeWeatherCode maps WMO weather interpretation codes to short text.
// Codes are ordered by severity, so picking the largest code in a range of
// days favors the worst weather.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code <= 3:
		return "partly cloudy"
	case code <= 48:
		return "fog"
	case code <= 57:
		return "drizzle"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "rain showers"
	case code <= 86:
		return "snow showers"
	default:
		return "thunderstorm"
	}
}
