package service

import "restaurant_manager/model"

// Settle computes the final charge at payment time: the raw total over served
// items, and the amount knocked off by the discount bound at order creation.
// The percentage is read from the live discount row, so the rate in effect is
// whatever the discount says now. A discount deactivated after the order was
// opened still applies.
func Settle(items []model.OrderItem, discount *model.Discount) (netTotal, discountAmount float64) {
	var raw float64
	for i := range items {
		if items[i].Status != model.ItemServed {
			continue
		}
		raw += items[i].PriceAtOrderTime * float64(items[i].Quantity)
	}
	if discount != nil {
		discountAmount = raw * discount.DiscountPercent / 100
	}
	return raw - discountAmount, discountAmount
}
