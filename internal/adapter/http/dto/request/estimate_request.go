package request

import (
	"strings"

	"cctv_estimator/internal/domain/entities"
)

// EstimateRequest carries the estimator form. Quantities below zero are
// treated as zero by the breakdown engine and quantities above
// entities.MaxQuantity are rejected; customer fields are only checked on
// submit.
type EstimateRequest struct {
	BulletCameras int    `json:"bullet_cameras" binding:"lte=100000"`
	DomeCameras   int    `json:"dome_cameras" binding:"lte=100000"`
	OtherCameras  int    `json:"other_cameras" binding:"lte=100000"`
	DVRChannel    string `json:"dvr_channel" example:"4ch"`
	HardDisk      string `json:"hard_disk" example:"1tb"`
	PowerSupply   string `json:"power_supply" example:"4ch"`
	Distance      string `json:"distance" example:"20km"`
	WireMeters    int    `json:"wire_meters" binding:"lte=100000"`
	BNCConnectors int    `json:"bnc_connectors" binding:"lte=100000"`
	DCConnectors  int    `json:"dc_connectors" binding:"lte=100000"`
	PVCBoxes      int    `json:"pvc_boxes" binding:"lte=100000"`
	HDMICable     bool   `json:"hdmi_cable"`
	VGACable      bool   `json:"vga_cable"`
	Monitor       bool   `json:"monitor"`
	Rack          bool   `json:"rack"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

func (r EstimateRequest) ToSelectionSet() entities.SelectionSet {
	return entities.SelectionSet{
		BulletCameras: r.BulletCameras,
		DomeCameras:   r.DomeCameras,
		OtherCameras:  r.OtherCameras,
		DVRChannel:    strings.TrimSpace(r.DVRChannel),
		HardDisk:      strings.TrimSpace(r.HardDisk),
		PowerSupply:   strings.TrimSpace(r.PowerSupply),
		Distance:      strings.TrimSpace(r.Distance),
		WireMeters:    r.WireMeters,
		BNCConnectors: r.BNCConnectors,
		DCConnectors:  r.DCConnectors,
		PVCBoxes:      r.PVCBoxes,
		HDMICable:     r.HDMICable,
		VGACable:      r.VGACable,
		Monitor:       r.Monitor,
		Rack:          r.Rack,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}
}
