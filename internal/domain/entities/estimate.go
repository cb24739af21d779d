package entities

// SelectionSet is the transient state of one estimator session.
//
// Tier fields hold the option key chosen in the storefront ("4ch", "2tb",
// "50km"); an empty string means nothing was chosen. Quantities below zero
// are treated as zero by the breakdown engine.
type SelectionSet struct {
	BulletCameras int `json:"bullet_cameras"`
	DomeCameras   int `json:"dome_cameras"`
	OtherCameras  int `json:"other_cameras"`

	DVRChannel  string `json:"dvr_channel"`
	HardDisk    string `json:"hard_disk"`
	PowerSupply string `json:"power_supply"`
	Distance    string `json:"distance"`

	WireMeters    int `json:"wire_meters"`
	BNCConnectors int `json:"bnc_connectors"`
	DCConnectors  int `json:"dc_connectors"`
	PVCBoxes      int `json:"pvc_boxes"`

	HDMICable bool `json:"hdmi_cable"`
	VGACable  bool `json:"vga_cable"`
	Monitor   bool `json:"monitor"`
	Rack      bool `json:"rack"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// MaxQuantity caps every per-item quantity; with prices bounded by
// MaxUnitPrice all totals stay exact in int64.
const MaxQuantity = 100_000

// CameraCount is the number of cameras of every type.
func (s SelectionSet) CameraCount() int {
	return ClampQuantity(s.BulletCameras) + ClampQuantity(s.DomeCameras) + ClampQuantity(s.OtherCameras)
}

// ClampQuantity bounds v to [0, MaxQuantity].
func ClampQuantity(v int) int {
	switch {
	case v < 0:
		return 0
	case v > MaxQuantity:
		return MaxQuantity
	}
	return v
}

type EstimateLineItem struct {
	Name      string `json:"name" dynamodbav:"name"`
	Quantity  int    `json:"quantity" dynamodbav:"quantity"`
	UnitPrice int64  `json:"unitPrice" dynamodbav:"unit_price"`
	Total     int64  `json:"total" dynamodbav:"total"`
}

// EstimateBreakdown is the itemized result of applying a SelectionSet to a
// PriceTable. GrandTotal always equals MaterialTotal + LaborCharge +
// DistanceCharge.
type EstimateBreakdown struct {
	Items          []EstimateLineItem `json:"items" dynamodbav:"items"`
	MaterialTotal  int64              `json:"materialTotal" dynamodbav:"material_total"`
	LaborCharge    int64              `json:"laborCharge" dynamodbav:"labor_charge"`
	DistanceCharge int64              `json:"distanceCharge" dynamodbav:"distance_charge"`
	GrandTotal     int64              `json:"grandTotal" dynamodbav:"grand_total"`
}

// Clone returns a copy that shares no memory with b.
func (b EstimateBreakdown) Clone() EstimateBreakdown {
	out := b
	out.Items = make([]EstimateLineItem, len(b.Items))
	copy(out.Items, b.Items)
	return out
}
