package entities

// PriceTable is the singleton price list used by every estimator session.
//
// All amounts are whole rupees. The shape is fixed: every field always exists,
// so a table rebuilt from partial data falls back field by field to
// DefaultPriceTable.
type PriceTable struct {
	Cameras     CameraPrices    `json:"cameras"`
	DVR         ChannelPrices   `json:"dvr"`
	HardDisk    HardDiskPrices  `json:"hardDisk"`
	PowerSupply ChannelPrices   `json:"powerSupply"`
	Accessories AccessoryPrices `json:"accessories"`
	Labor       LaborPrices     `json:"labor"`
	Distance    DistancePrices  `json:"distance"`
}

type CameraPrices struct {
	Bullet int64 `json:"bullet"`
	Dome   int64 `json:"dome"`
	Other  int64 `json:"other"`
}

// ChannelPrices is shared by DVRs and power supplies.
type ChannelPrices struct {
	Ch2  int64 `json:"ch2"`
	Ch4  int64 `json:"ch4"`
	Ch8  int64 `json:"ch8"`
	Ch16 int64 `json:"ch16"`
	Ch32 int64 `json:"ch32"`
}

type HardDiskPrices struct {
	TB1 int64 `json:"tb1"`
	TB2 int64 `json:"tb2"`
	TB4 int64 `json:"tb4"`
	TB6 int64 `json:"tb6"`
	TB8 int64 `json:"tb8"`
}

type AccessoryPrices struct {
	WirePerMeter int64 `json:"wirePerMeter"`
	BNCConnector int64 `json:"bncConnector"`
	DCConnector  int64 `json:"dcConnector"`
	PVCBox       int64 `json:"pvcBox"`
	HDMICable    int64 `json:"hdmiCable"`
	VGACable     int64 `json:"vgaCable"`
	Monitor      int64 `json:"monitor"`
	Rack         int64 `json:"rack"`
}

// LaborPrices are keyed by the upper bound of the camera-count bucket.
// Cam32 covers every installation with more than 16 cameras.
type LaborPrices struct {
	Cam2  int64 `json:"cam2"`
	Cam4  int64 `json:"cam4"`
	Cam8  int64 `json:"cam8"`
	Cam16 int64 `json:"cam16"`
	Cam32 int64 `json:"cam32"`
}

type DistancePrices struct {
	Km20  int64 `json:"km20"`
	Km50  int64 `json:"km50"`
	Km100 int64 `json:"km100"`
}

// MaxUnitPrice bounds any single price in the table (one crore rupees).
const MaxUnitPrice int64 = 10_000_000

// DefaultPriceTable returns the built-in price list.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Cameras: CameraPrices{Bullet: 1800, Dome: 2000, Other: 2500},
		DVR:     ChannelPrices{Ch2: 3500, Ch4: 4500, Ch8: 7000, Ch16: 10000, Ch32: 14000},
		HardDisk: HardDiskPrices{
			TB1: 3500, TB2: 5500, TB4: 9000, TB6: 13000, TB8: 17000,
		},
		PowerSupply: ChannelPrices{Ch2: 800, Ch4: 1200, Ch8: 2000, Ch16: 3500, Ch32: 5000},
		Accessories: AccessoryPrices{
			WirePerMeter: 15,
			BNCConnector: 60,
			DCConnector:  80,
			PVCBox:       150,
			HDMICable:    350,
			VGACable:     300,
			Monitor:      6000,
			Rack:         2000,
		},
		Labor:    LaborPrices{Cam2: 500, Cam4: 1000, Cam8: 2000, Cam16: 3500, Cam32: 5000},
		Distance: DistancePrices{Km20: 300, Km50: 500, Km100: 1000},
	}
}
