// Package auction contains auction settlement use cases.
package auction

import (
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ComputeSettlement derives the settlement figures for one auction of a
// group. Each step feeds the next:
//
//	commission = commission% of totalAmount
//	discount   = totalAmount - winningBid
//	net        = discount - commission
//	dividend   = net / totalPeople   (totalPeople floored to 1)
//	installment = rate - dividend    (owed by every member, winner included)
//	paidToWinner = winningBid - installment
func ComputeSettlement(group *entity.Group, winningBid decimal.Decimal) entity.Settlement {
	commission := group.CommissionPercent.Div(hundred).Mul(group.TotalAmount)
	discount := group.TotalAmount.Sub(winningBid)
	netDiscount := discount.Sub(commission)

	people := group.TotalPeople
	if people <= 0 {
		people = 1
	}
	dividend := netDiscount.Div(decimal.NewFromInt(int64(people)))

	installment := group.Rate.Sub(dividend)
	paidToWinner := winningBid.Sub(installment)

	return entity.Settlement{
		CommissionAmount:    commission,
		Discount:            discount,
		NetDiscount:         netDiscount,
		DividendPerMember:   dividend,
		FinalAmountToBePaid: installment,
		AmountPaidToWinner:  paidToWinner,
	}
}
