package models

import "time"

// Bucket names, in the order the classifier scans them. "all" always holds
// every row; "other" catches rows that matched nothing else.
const (
	BucketAll                     = "all"
	BucketRTO                     = "rto"
	BucketDoorStepExchanged       = "door_step_exchanged"
	BucketDelivered               = "delivered"
	BucketCancelled               = "cancelled"
	BucketReadyToShip             = "ready_to_ship"
	BucketShipped                 = "shipped"
	BucketSupplierListedPrice     = "supplier_listed_price"
	BucketSupplierDiscountedPrice = "supplier_discounted_price"
	BucketOther                   = "other"
)

// BucketNames is the fixed classification vocabulary, excluding the
// synthetic "other" bucket.
var BucketNames = []string{
	BucketAll,
	BucketRTO,
	BucketDoorStepExchanged,
	BucketDelivered,
	BucketCancelled,
	BucketReadyToShip,
	BucketShipped,
	BucketSupplierListedPrice,
	BucketSupplierDiscountedPrice,
}

// Categories maps bucket name to the rows filed under it.
type Categories map[string][]Row

// Totals holds the whole-upload financial aggregates. All currency figures
// and percentages are rounded to 2 decimals when the record is built.
type Totals struct {
	TotalSupplierListedPrice              float64 `json:"totalSupplierListedPrice"`
	TotalSupplierDiscountedPrice          float64 `json:"totalSupplierDiscountedPrice"`
	SellInMonthProducts                   int     `json:"sellInMonthProducts"`
	DeliveredSupplierDiscountedPriceTotal float64 `json:"deliveredSupplierDiscountedPriceTotal"`
	TotalDoorStepExchanger                float64 `json:"totalDoorStepExchanger"`
	TotalProfit                           float64 `json:"totalProfit"`
	ProfitPercentRevenue                  float64 `json:"profitPercentRevenue"`
	ProfitPercentCost                     float64 `json:"profitPercentCost"`
	ProfitPercent                         float64 `json:"profitPercent"`
}

// DailyProfitPoint is one entry of the delivered-orders profit series,
// keyed by UTC calendar date.
type DailyProfitPoint struct {
	Date                 string  `json:"date"`
	Profit               float64 `json:"profit"`
	ProfitPercentRevenue float64 `json:"profitPercentRevenue"`
	ProfitPercentCost    float64 `json:"profitPercentCost"`
}

// Snapshot is the unit of persistence: one immutable, fully aggregated
// result of processing one uploaded row set.
type Snapshot struct {
	ID           string             `json:"id"`
	SubmittedAt  time.Time          `json:"submittedAt"`
	Data         []Row              `json:"data"`
	Totals       Totals             `json:"totals"`
	Categories   Categories         `json:"categories"`
	ProfitByDate []DailyProfitPoint `json:"profitByDate"`
}

// DashboardResponse is the JSON shape the frontend consumes: the bucket
// map flattened to top-level keys, plus totals and the profit series.
type DashboardResponse struct {
	All                     []Row              `json:"all"`
	RTO                     []Row              `json:"rto"`
	DoorStepExchanged       []Row              `json:"door_step_exchanged"`
	Delivered               []Row              `json:"delivered"`
	Cancelled               []Row              `json:"cancelled"`
	ReadyToShip             []Row              `json:"ready_to_ship"`
	Shipped                 []Row              `json:"shipped"`
	SupplierListedPrice     []Row              `json:"supplier_listed_price"`
	SupplierDiscountedPrice []Row              `json:"supplier_discounted_price"`
	Other                   []Row              `json:"other"`
	Totals                  Totals             `json:"totals"`
	ProfitByDate            []DailyProfitPoint `json:"profitByDate"`
}

// Dashboard projects the snapshot into the response shape served to the
// dashboard and returned from uploads.
func (s *Snapshot) Dashboard() DashboardResponse {
	return DashboardResponse{
		All:                     s.Categories[BucketAll],
		RTO:                     s.Categories[BucketRTO],
		DoorStepExchanged:       s.Categories[BucketDoorStepExchanged],
		Delivered:               s.Categories[BucketDelivered],
		Cancelled:               s.Categories[BucketCancelled],
		ReadyToShip:             s.Categories[BucketReadyToShip],
		Shipped:                 s.Categories[BucketShipped],
		SupplierListedPrice:     s.Categories[BucketSupplierListedPrice],
		SupplierDiscountedPrice: s.Categories[BucketSupplierDiscountedPrice],
		Other:                   s.Categories[BucketOther],
		Totals:                  s.Totals,
		ProfitByDate:            s.ProfitByDate,
	}
}

// FilterResult is the read-time projection for a single sub-order lookup.
type FilterResult struct {
	SubOrderNo           string  `json:"subOrderNo"`
	ListedPrice          float64 `json:"listedPrice"`
	DiscountedPrice      float64 `json:"discountedPrice"`
	Profit               float64 `json:"profit"`
	ProfitPercentOfPrice float64 `json:"profitPercentOfPrice"`
	ProfitPercentOfCost  float64 `json:"profitPercentOfCost"`
}
