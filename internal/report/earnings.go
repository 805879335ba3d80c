package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
)

const (
	summarySheet    = "Riders"
	deliveriesSheet = "Deliveries"
)

// RiderTotal is one rider's line in the earnings summary.
type RiderTotal struct {
	RiderID            string
	Name               string
	RegistrationNumber string
	Deliveries         int
	Fees               decimal.Decimal
	Commission         decimal.Decimal
	Earnings           decimal.Decimal
}

// Totals groups delivered deliveries by rider, highest earnings first.
func Totals(views []delivery.View) []RiderTotal {
	byRider := map[string]*RiderTotal{}
	for _, v := range views {
		if v.Status != delivery.StatusDelivered || v.RiderID == nil {
			continue
		}
		t, ok := byRider[*v.RiderID]
		if !ok {
			t = &RiderTotal{RiderID: *v.RiderID, Name: v.RiderName, RegistrationNumber: v.RiderRegistrationNumber}
			byRider[*v.RiderID] = t
		}
		t.Deliveries++
		t.Fees = t.Fees.Add(v.DeliveryFee)
		t.Commission = t.Commission.Add(v.CommissionAmount)
		t.Earnings = t.Earnings.Add(v.RiderEarning)
	}
	out := make([]RiderTotal, 0, len(byRider))
	for _, t := range byRider {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Earnings.Cmp(out[j].Earnings); c != 0 {
			return c > 0
		}
		return out[i].RiderID < out[j].RiderID
	})
	return out
}

// Earnings builds the admin workbook: a per-rider summary sheet and one row
// per delivered delivery in [from, to). The caller closes the file.
func Earnings(views []delivery.View, from, to time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(deliveriesSheet); err != nil {
		return nil, err
	}

	period := fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err := f.SetCellValue(summarySheet, "A1", "Earnings "+period); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(summarySheet, "A3", &[]any{"Rider", "Registration", "Deliveries", "Fees", "Commission", "Earnings"}); err != nil {
		return nil, err
	}
	row := 4
	for _, t := range Totals(views) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(summarySheet, cell, &[]any{
			t.Name, t.RegistrationNumber, t.Deliveries, money(t.Fees), money(t.Commission), money(t.Earnings),
		}); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetSheetRow(deliveriesSheet, "A1", &[]any{
		"Delivery", "Order", "Rider", "Delivered at", "Fee", "Commission", "Rider earning", "Payment",
	}); err != nil {
		return nil, err
	}
	row = 2
	for _, v := range views {
		if v.Status != delivery.StatusDelivered {
			continue
		}
		var at string
		if v.DeliveredAt != nil {
			at = v.DeliveredAt.UTC().Format(time.RFC3339)
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(deliveriesSheet, cell, &[]any{
			v.ID, v.OrderID, v.RiderName, at, money(v.DeliveryFee), money(v.CommissionAmount), money(v.RiderEarning), v.PaymentMethod,
		}); err != nil {
			return nil, err
		}
		row++
	}
	return f, nil
}

func money(d decimal.Decimal) float64 {
	f, _ := d.Round(delivery.MoneyPlaces).Float64()
	return f
}
