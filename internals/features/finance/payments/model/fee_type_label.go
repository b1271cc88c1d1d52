// file: internals/features/finance/payments/model/fee_type_label.go
package model

import "strings"

const feeTypeSeparator = " - "

// FeeTypeLabel formats the displayed payment label "<year> - <item name>".
func FeeTypeLabel(yearLabel, itemName string) string {
	return yearLabel + feeTypeSeparator + itemName
}

// FeeTypeMatchesYear reports whether a payment label attributes the payment
// to the given studying-year.
func FeeTypeMatchesYear(feeType, yearLabel string) bool {
	return strings.HasPrefix(feeType, yearLabel+feeTypeSeparator)
}

// MatchesYear prefers the explicit year key and falls back to parsing the
// label for rows recorded before the key existed.
func (p PaymentModel) MatchesYear(yearLabel string) bool {
	if p.PaymentYearLabel != nil && *p.PaymentYearLabel != "" {
		return *p.PaymentYearLabel == yearLabel
	}
	return FeeTypeMatchesYear(p.PaymentFeeType, yearLabel)
}

// MatchesItem attributes a payment to one fee item within a year.
func (p PaymentModel) MatchesItem(yearLabel, itemID, itemName string) bool {
	if p.PaymentYearLabel != nil && *p.PaymentYearLabel != "" &&
		p.PaymentFeeItemID != nil && *p.PaymentFeeItemID != "" {
		return *p.PaymentYearLabel == yearLabel && *p.PaymentFeeItemID == itemID
	}
	return p.PaymentFeeType == FeeTypeLabel(yearLabel, itemName)
}
