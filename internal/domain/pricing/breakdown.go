package pricing

import (
	"fmt"
	"strings"

	"cctv_estimator/internal/domain/entities"
)

const (
	DistanceKm20  = "20km"
	DistanceKm50  = "50km"
	DistanceKm100 = "100km"
)

// Compute derives the itemized breakdown for sel against table.
//
// It is pure: no I/O, no hidden state, and it never fails. Unknown tier keys
// behave like an empty choice so the storefront can always render a result.
// Quantities are clamped to [0, entities.MaxQuantity].
func Compute(sel entities.SelectionSet, table entities.PriceTable) entities.EstimateBreakdown {
	items := make([]entities.EstimateLineItem, 0, 16)

	items = appendQuantity(items, "Bullet Camera (CP Plus)", sel.BulletCameras, table.Cameras.Bullet)
	items = appendQuantity(items, "Dome Camera", sel.DomeCameras, table.Cameras.Dome)
	items = appendQuantity(items, "Other CCTV Camera", sel.OtherCameras, table.Cameras.Other)

	if tier, price, ok := ChannelPrice(sel.DVRChannel, table.DVR); ok {
		items = appendQuantity(items, fmt.Sprintf("DVR (%s)", strings.ToUpper(tier)), 1, price)
	}
	if tier, price, ok := HardDiskPrice(sel.HardDisk, table.HardDisk); ok {
		items = appendQuantity(items, fmt.Sprintf("Hard Disk (%s)", strings.ToUpper(tier)), 1, price)
	}
	if tier, price, ok := ChannelPrice(sel.PowerSupply, table.PowerSupply); ok {
		items = appendQuantity(items, fmt.Sprintf("Power Supply (%s)", strings.ToUpper(tier)), 1, price)
	}

	acc := table.Accessories
	items = appendQuantity(items, "3+1 CCTV Cable", sel.WireMeters, acc.WirePerMeter)
	items = appendQuantity(items, "BNC Connector", sel.BNCConnectors, acc.BNCConnector)
	items = appendQuantity(items, "DC Connector", sel.DCConnectors, acc.DCConnector)
	items = appendQuantity(items, "PVC Box", sel.PVCBoxes, acc.PVCBox)

	items = appendFlag(items, "HDMI Cable", sel.HDMICable, acc.HDMICable)
	items = appendFlag(items, "VGA Cable", sel.VGACable, acc.VGACable)
	items = appendFlag(items, "Monitor", sel.Monitor, acc.Monitor)
	items = appendFlag(items, "Rack / Cabinet", sel.Rack, acc.Rack)

	var material int64
	for _, it := range items {
		material += it.Total
	}
	labor := LaborCharge(sel.CameraCount(), table.Labor)
	distance := DistanceCharge(sel.Distance, table.Distance)

	return entities.EstimateBreakdown{
		Items:          items,
		MaterialTotal:  material,
		LaborCharge:    labor,
		DistanceCharge: distance,
		GrandTotal:     material + labor + distance,
	}
}

// LaborCharge buckets cameraCount into inclusive upper bounds 2, 4, 8, 16 and
// everything above. No cameras means no labor.
func LaborCharge(cameraCount int, labor entities.LaborPrices) int64 {
	switch {
	case cameraCount <= 0:
		return 0
	case cameraCount <= 2:
		return labor.Cam2
	case cameraCount <= 4:
		return labor.Cam4
	case cameraCount <= 8:
		return labor.Cam8
	case cameraCount <= 16:
		return labor.Cam16
	default:
		return labor.Cam32
	}
}

// DistanceCharge matches tier exactly against the three distance bands.
func DistanceCharge(tier string, distance entities.DistancePrices) int64 {
	switch normalizeTier(tier) {
	case DistanceKm20:
		return distance.Km20
	case DistanceKm50:
		return distance.Km50
	case DistanceKm100:
		return distance.Km100
	default:
		return 0
	}
}

// ChannelPrice resolves a DVR or power supply tier ("2ch".."32ch").
func ChannelPrice(tier string, prices entities.ChannelPrices) (string, int64, bool) {
	key := normalizeTier(tier)
	switch key {
	case "2ch":
		return key, prices.Ch2, true
	case "4ch":
		return key, prices.Ch4, true
	case "8ch":
		return key, prices.Ch8, true
	case "16ch":
		return key, prices.Ch16, true
	case "32ch":
		return key, prices.Ch32, true
	}
	return "", 0, false
}

// HardDiskPrice resolves a hard disk tier ("1tb".."8tb").
func HardDiskPrice(tier string, prices entities.HardDiskPrices) (string, int64, bool) {
	key := normalizeTier(tier)
	switch key {
	case "1tb":
		return key, prices.TB1, true
	case "2tb":
		return key, prices.TB2, true
	case "4tb":
		return key, prices.TB4, true
	case "6tb":
		return key, prices.TB6, true
	case "8tb":
		return key, prices.TB8, true
	}
	return "", 0, false
}

func normalizeTier(tier string) string {
	return strings.ToLower(strings.TrimSpace(tier))
}

func appendQuantity(items []entities.EstimateLineItem, name string, qty int, unit int64) []entities.EstimateLineItem {
	qty = entities.ClampQuantity(qty)
	if qty == 0 {
		return items
	}
	return append(items, entities.EstimateLineItem{
		Name:      name,
		Quantity:  qty,
		UnitPrice: unit,
		Total:     int64(qty) * unit,
	})
}

func appendFlag(items []entities.EstimateLineItem, name string, on bool, unit int64) []entities.EstimateLineItem {
	if !on {
		return items
	}
	return appendQuantity(items, name, 1, unit)
}
