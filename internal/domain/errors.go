package domain

import "errors"

var (
	// ErrNotPriced возвращается, если в стратегии цены нет тарифа для такого дома
	ErrNotPriced = errors.New("domain: no rate defined for this configuration")

	// ErrInvalidDate возвращается для строк, не являющихся датой YYYY-MM-DD
	ErrInvalidDate = errors.New("domain: invalid calendar date")

	// ErrInvalidPricing возвращается, если конфигурацию цен нельзя использовать
	ErrInvalidPricing = errors.New("domain: invalid pricing configuration")
)
