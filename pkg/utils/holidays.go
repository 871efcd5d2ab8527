package util

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Sujal2120/DailyFlow/models"
)

const holidayAPIBase = "https://api-harilibur.vercel.app/api?year="

// holidayAPIData mirrors the external holiday API's JSON shape.
type holidayAPIData struct {
	Date              string `json:"holiday_date"`
	Name              string `json:"holiday_name"`
	IsNationalHoliday bool   `json:"is_national_holiday"`
}

func fetchHolidays(year string) ([]holidayAPIData, error) {
	resp, err := http.Get(holidayAPIBase + year)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rawHolidays []holidayAPIData
	if err := json.Unmarshal(body, &rawHolidays); err != nil {
		return nil, err
	}
	return rawHolidays, nil
}

// GetHolidayMap returns the year's national holidays keyed by date, for
// quick lookups when expanding schedules.
func GetHolidayMap(year string) (map[string]bool, error) {
	rawHolidays, err := fetchHolidays(year)
	if err != nil {
		return nil, err
	}

	holidayMap := make(map[string]bool)
	for _, rawHoliday := range rawHolidays {
		if rawHoliday.IsNationalHoliday {
			holidayMap[rawHoliday.Date] = true
		}
	}
	return holidayMap, nil
}

// GetHolidays returns the year's national holidays as a slice for display.
func GetHolidays(year string) ([]models.Holiday, error) {
	rawHolidays, err := fetchHolidays(year)
	if err != nil {
		return nil, err
	}

	var holidays []models.Holiday
	for _, rawHoliday := range rawHolidays {
		if rawHoliday.IsNationalHoliday {
			holidays = append(holidays, models.Holiday{
				Date: rawHoliday.Date,
				Name: rawHoliday.Name,
			})
		}
	}
	return holidays, nil
}
