package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateOnly descarta o horário e devolve a data do calendário (em UTC) à meia-noite
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WholeDaysBetween conta os dias completos entre duas datas (nunca negativo)
func WholeDaysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}

	return int(to.Sub(from) / (24 * time.Hour))
}
