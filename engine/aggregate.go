package engine

import (
	"orderdash/models"
	"orderdash/utils"
)

// Aggregate derives the Totals record from the classifier's tally.
// Revenue is the discounted-price sum over delivered rows; cost is the
// fixed per-unit cost times the delivered count. Percentages are 0 when
// their denominator is 0. Rounding to 2 decimals happens here, at the
// point figures are finalized, never earlier.
func Aggregate(tally Tally) models.Totals {
	revenue := tally.DeliveredRevenue
	cost := float64(tally.DeliveredCount) * CostPerUnit
	profit := revenue - cost

	profitPercentRevenue := utils.SafePercent(profit, revenue)

	return models.Totals{
		TotalSupplierListedPrice:              utils.Round2(tally.ListedPriceSum),
		TotalSupplierDiscountedPrice:          utils.Round2(tally.DiscountedPriceSum),
		SellInMonthProducts:                   tally.DeliveredCount,
		DeliveredSupplierDiscountedPriceTotal: utils.Round2(revenue),
		TotalDoorStepExchanger:                tally.DoorStepTotal,
		TotalProfit:                           utils.Round2(profit),
		ProfitPercentRevenue:                  profitPercentRevenue,
		ProfitPercentCost:                     utils.SafePercent(profit, cost),
		ProfitPercent:                         profitPercentRevenue,
	}
}
