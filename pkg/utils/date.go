package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate converte uma data no formato YYYY-MM-DD. Texto vazio retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay trunca o horário mantendo o fuso da data
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
