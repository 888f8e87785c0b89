package models

// AgentRole enumerates the advisory specialist personas.
type AgentRole string

const (
	AgentVeterinarian AgentRole = "veterinarian"
	AgentNutritionist AgentRole = "nutritionist"
	AgentMarket       AgentRole = "market"
	AgentPastures     AgentRole = "pastures"
	AgentFinance      AgentRole = "finance"
	AgentAgronomist   AgentRole = "agronomist"
	AgentLivestock    AgentRole = "livestock"
	AgentManagement   AgentRole = "management"
	AgentReports      AgentRole = "reports"
)

// ChatMessage is one turn of an advisory conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Quote is one market quotation line.
type Quote struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"` // up, down, stable
	Source string `json:"source"`
}

// CurrentWeather is the present condition block of a forecast.
type CurrentWeather struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Humidity  float64 `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
}

// DailyForecast is one day of the forecast window.
type DailyForecast struct {
	Date      string  `json:"date"`
	Max       float64 `json:"max"`
	Min       float64 `json:"min"`
	Condition string  `json:"condition"`
	RainProb  float64 `json:"rain_prob"`
}

// Advisory carries the livestock-focused guidance attached to a forecast.
type Advisory struct {
	ThermalComfort string `json:"thermal_comfort"`
	PastureGrowth  string `json:"pasture_growth"`
	GeneralAdvice  string `json:"general_advice"`
}

// Forecast is the structured weather answer for a location.
type Forecast struct {
	Current  CurrentWeather  `json:"current"`
	Forecast []DailyForecast `json:"forecast"`
	Insights Advisory        `json:"insights"`
}
