package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
)

// PricingKind дискриминатор варианта стратегии цены
type PricingKind string

const (
	PricingKindFlatTable PricingKind = "flat_table"
	PricingKindFormula   PricingKind = "formula"
)

// PricingStrategy считает цену уборки без скидки.
// Реализуется только FlatTable и FormulaPricing.
type PricingStrategy interface {
	Kind() PricingKind
	// Subtotal возвращает ErrNotPriced, если тариф не задан
	Subtotal(bedrooms, bathrooms int, service ServiceType) (float64, error)
	validate() error
}

// FlatTable сопоставляет "{bedrooms}-{bathrooms}" (опционально с суффиксом "-{serviceType}") с ценой
type FlatTable map[string]float64

func (FlatTable) Kind() PricingKind { return PricingKindFlatTable }

// Subtotal для не-regular услуг сначала ищет ключ с типом услуги
func (t FlatTable) Subtotal(bedrooms, bathrooms int, service ServiceType) (float64, error) {
	key := FlatTableKey(bedrooms, bathrooms)
	if service = service.OrDefault(); service != ServiceRegular {
		if price, ok := t[key+"-"+string(service)]; ok {
			return price, nil
		}
	}

	price, ok := t[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotPriced, key)
	}
	return price, nil
}

var flatTableKeyRe = regexp.MustCompile(`^[1-5]-[1-5](-(regular|deep|move))?$`)

func (t FlatTable) validate() error {
	for key, price := range t {
		if !flatTableKeyRe.MatchString(key) {
			return fmt.Errorf("%w: bad table key %q", ErrInvalidPricing, key)
		}
		if !validPrice(price) {
			return fmt.Errorf("%w: bad price for %q", ErrInvalidPricing, key)
		}
	}
	return nil
}

// FlatTableKey строит базовый ключ поиска
func FlatTableKey(bedrooms, bathrooms int) string {
	return fmt.Sprintf("%d-%d", bedrooms, bathrooms)
}

// ServiceAddons фиксированные надбавки по типу услуги
type ServiceAddons struct {
	Deep float64 `json:"deep"`
	Move float64 `json:"move"`
}

// FormulaPricing база + тарифы за доп. комнаты + надбавка за услугу
type FormulaPricing struct {
	Base             float64       `json:"base"`
	ExtraPerBedroom  float64       `json:"extraPerBedroom"`
	ExtraPerBathroom float64       `json:"extraPerBathroom"`
	Addons           ServiceAddons `json:"-"`
}

func (FormulaPricing) Kind() PricingKind { return PricingKindFormula }

func (f FormulaPricing) Subtotal(bedrooms, bathrooms int, service ServiceType) (float64, error) {
	price := f.Base +
		float64(max(bedrooms-1, 0))*f.ExtraPerBedroom +
		float64(max(bathrooms-1, 0))*f.ExtraPerBathroom

	switch service.OrDefault() {
	case ServiceDeep:
		price += f.Addons.Deep
	case ServiceMove:
		price += f.Addons.Move
	}

	return price, nil
}

func (f FormulaPricing) validate() error {
	for _, v := range []float64{f.Base, f.ExtraPerBedroom, f.ExtraPerBathroom, f.Addons.Deep, f.Addons.Move} {
		if !validPrice(v) {
			return fmt.Errorf("%w: formula rates must be non-negative", ErrInvalidPricing)
		}
	}
	return nil
}

func validPrice(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// DefaultFormulaPricing цены для автоматически созданных клинеров
func DefaultFormulaPricing() FormulaPricing {
	return FormulaPricing{
		Base:             90,
		ExtraPerBedroom:  20,
		ExtraPerBathroom: 15,
		Addons:           ServiceAddons{Deep: 50, Move: 80},
	}
}

// Pricing хранит стратегию клинера и ее JSON форму с тегом
type Pricing struct {
	Strategy PricingStrategy
}

// Validate проверяет, что стратегия задана и все тарифы корректны
func (p Pricing) Validate() error {
	if p.Strategy == nil {
		return fmt.Errorf("%w: strategy is not set", ErrInvalidPricing)
	}
	return p.Strategy.validate()
}

type pricingJSON struct {
	Kind          PricingKind     `json:"kind"`
	Table         FlatTable       `json:"table,omitempty"`
	Formula       *FormulaPricing `json:"formula,omitempty"`
	ServiceAddons *ServiceAddons  `json:"serviceAddons,omitempty"`
}

func (p Pricing) MarshalJSON() ([]byte, error) {
	switch s := p.Strategy.(type) {
	case FlatTable:
		return json.Marshal(pricingJSON{Kind: PricingKindFlatTable, Table: s})
	case FormulaPricing:
		addons := s.Addons
		return json.Marshal(pricingJSON{Kind: PricingKindFormula, Formula: &s, ServiceAddons: &addons})
	case nil:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %T", ErrInvalidPricing, s)
	}
}

func (p *Pricing) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		p.Strategy = nil
		return nil
	}

	var raw pricingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPricing, err)
	}

	switch raw.Kind {
	case PricingKindFlatTable:
		if raw.Table == nil {
			raw.Table = FlatTable{}
		}
		p.Strategy = raw.Table
	case PricingKindFormula:
		if raw.Formula == nil {
			return fmt.Errorf("%w: formula is missing", ErrInvalidPricing)
		}
		f := *raw.Formula
		if raw.ServiceAddons != nil {
			f.Addons = *raw.ServiceAddons
		}
		p.Strategy = f
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidPricing, raw.Kind)
	}

	return nil
}
