package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"cctv_estimator/internal/domain/entities"
)

var (
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrNonIntegerPrice = errors.New("price must be a whole number")
	ErrPriceTooLarge   = errors.New("price exceeds the maximum unit price")
)

type field struct {
	key string
	ref func(*entities.PriceTable) *int64
}

// fields lists every price in the table under its fully-qualified name.
var fields = []field{
	{"cameras.bullet", func(t *entities.PriceTable) *int64 { return &t.Cameras.Bullet }},
	{"cameras.dome", func(t *entities.PriceTable) *int64 { return &t.Cameras.Dome }},
	{"cameras.other", func(t *entities.PriceTable) *int64 { return &t.Cameras.Other }},

	{"dvr.ch2", func(t *entities.PriceTable) *int64 { return &t.DVR.Ch2 }},
	{"dvr.ch4", func(t *entities.PriceTable) *int64 { return &t.DVR.Ch4 }},
	{"dvr.ch8", func(t *entities.PriceTable) *int64 { return &t.DVR.Ch8 }},
	{"dvr.ch16", func(t *entities.PriceTable) *int64 { return &t.DVR.Ch16 }},
	{"dvr.ch32", func(t *entities.PriceTable) *int64 { return &t.DVR.Ch32 }},

	{"hardDisk.tb1", func(t *entities.PriceTable) *int64 { return &t.HardDisk.TB1 }},
	{"hardDisk.tb2", func(t *entities.PriceTable) *int64 { return &t.HardDisk.TB2 }},
	{"hardDisk.tb4", func(t *entities.PriceTable) *int64 { return &t.HardDisk.TB4 }},
	{"hardDisk.tb6", func(t *entities.PriceTable) *int64 { return &t.HardDisk.TB6 }},
	{"hardDisk.tb8", func(t *entities.PriceTable) *int64 { return &t.HardDisk.TB8 }},

	{"powerSupply.ch2", func(t *entities.PriceTable) *int64 { return &t.PowerSupply.Ch2 }},
	{"powerSupply.ch4", func(t *entities.PriceTable) *int64 { return &t.PowerSupply.Ch4 }},
	{"powerSupply.ch8", func(t *entities.PriceTable) *int64 { return &t.PowerSupply.Ch8 }},
	{"powerSupply.ch16", func(t *entities.PriceTable) *int64 { return &t.PowerSupply.Ch16 }},
	{"powerSupply.ch32", func(t *entities.PriceTable) *int64 { return &t.PowerSupply.Ch32 }},

	{"accessories.wirePerMeter", func(t *entities.PriceTable) *int64 { return &t.Accessories.WirePerMeter }},
	{"accessories.bncConnector", func(t *entities.PriceTable) *int64 { return &t.Accessories.BNCConnector }},
	{"accessories.dcConnector", func(t *entities.PriceTable) *int64 { return &t.Accessories.DCConnector }},
	{"accessories.pvcBox", func(t *entities.PriceTable) *int64 { return &t.Accessories.PVCBox }},
	{"accessories.hdmiCable", func(t *entities.PriceTable) *int64 { return &t.Accessories.HDMICable }},
	{"accessories.vgaCable", func(t *entities.PriceTable) *int64 { return &t.Accessories.VGACable }},
	{"accessories.monitor", func(t *entities.PriceTable) *int64 { return &t.Accessories.Monitor }},
	{"accessories.rack", func(t *entities.PriceTable) *int64 { return &t.Accessories.Rack }},

	{"labor.cam2", func(t *entities.PriceTable) *int64 { return &t.Labor.Cam2 }},
	{"labor.cam4", func(t *entities.PriceTable) *int64 { return &t.Labor.Cam4 }},
	{"labor.cam8", func(t *entities.PriceTable) *int64 { return &t.Labor.Cam8 }},
	{"labor.cam16", func(t *entities.PriceTable) *int64 { return &t.Labor.Cam16 }},
	{"labor.cam32", func(t *entities.PriceTable) *int64 { return &t.Labor.Cam32 }},

	{"distance.km20", func(t *entities.PriceTable) *int64 { return &t.Distance.Km20 }},
	{"distance.km50", func(t *entities.PriceTable) *int64 { return &t.Distance.Km50 }},
	{"distance.km100", func(t *entities.PriceTable) *int64 { return &t.Distance.Km100 }},
}

// FieldNames returns every fully-qualified price name, sorted.
func FieldNames() []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.key)
	}
	sort.Strings(out)
	return out
}

// Flatten projects t to fully-qualified name -> price.
func Flatten(t entities.PriceTable) map[string]int64 {
	out := make(map[string]int64, len(fields))
	for _, f := range fields {
		out[f.key] = *f.ref(&t)
	}
	return out
}

// Rebuild reconstructs a table from a flat mapping. A field that is absent,
// non-numeric, negative, fractional, above entities.MaxUnitPrice or not
// finite takes its default value; unknown keys are ignored.
func Rebuild(flat map[string]any) entities.PriceTable {
	t := entities.DefaultPriceTable()
	for _, f := range fields {
		raw, ok := flat[f.key]
		if !ok {
			continue
		}
		if v, ok := toPrice(raw); ok {
			*f.ref(&t) = v
		}
	}
	return t
}

// Validate reports the first price in t that is negative or above
// entities.MaxUnitPrice.
func Validate(t entities.PriceTable) error {
	for _, f := range fields {
		v := *f.ref(&t)
		if v < 0 {
			return fmt.Errorf("%s: %w", f.key, ErrNegativePrice)
		}
		if v > entities.MaxUnitPrice {
			return fmt.Errorf("%s: %w", f.key, ErrPriceTooLarge)
		}
	}
	return nil
}

// ValidateFields reports the first known field of flat holding a number
// Rebuild would silently replace with its default: negative, fractional or
// too large.
func ValidateFields(flat map[string]any) error {
	for _, f := range fields {
		raw, ok := flat[f.key]
		if !ok {
			continue
		}
		v, ok := toNumber(raw)
		if !ok {
			continue
		}
		switch {
		case v < 0:
			return fmt.Errorf("%s: %w", f.key, ErrNegativePrice)
		case v != math.Trunc(v):
			return fmt.Errorf("%s: %w", f.key, ErrNonIntegerPrice)
		case v > float64(entities.MaxUnitPrice):
			return fmt.Errorf("%s: %w", f.key, ErrPriceTooLarge)
		}
	}
	return nil
}

func toPrice(raw any) (int64, bool) {
	f, ok := toNumber(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f > float64(entities.MaxUnitPrice) {
		return 0, false
	}
	return int64(f), true
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		parsed, err := v.Float64()
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return parsed, err == nil
	}
	return 0, false
}
