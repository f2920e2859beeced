package entity

type Vehicle struct {
	Base
	Make        string  `db:"make"`
	Model       string  `db:"model"`
	Year        int     `db:"year"`
	PricePerDay float64 `db:"price_per_day"`
	Available   bool    `db:"available"`
	Image       *string `db:"image"`
}
