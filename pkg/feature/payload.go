// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package feature

// Payload is the JSON body of a single prediction request.
type Payload struct {
	CustomerID *int64 `json:"customer_id,omitempty"`

	Tenure             float64 `json:"tenure"`
	WarehouseToHome    float64 `json:"warehouse_to_home"`
	NumDevices         float64 `json:"num_devices"`
	SatisfactionScore  float64 `json:"satisfaction_score"`
	CityTier           float64 `json:"city_tier"`
	HourSpendOnApp     float64 `json:"hour_spend_on_app"`
	NumAddress         float64 `json:"num_address"`
	Complain           float64 `json:"complain"`
	OrderAmountHike    float64 `json:"order_amount_hike"`
	CouponUsed         float64 `json:"coupon_used"`
	OrderCount         float64 `json:"order_count"`
	DaysSinceLastOrder float64 `json:"days_since_last_order"`
	CashbackAmount     float64 `json:"cashback_amount"`

	Gender                 string `json:"gender"`
	MaritalStatus          string `json:"marital_status"`
	PaymentMode            string `json:"payment_mode"`
	PreferredLoginDevice   string `json:"preferred_login_device"`
	PreferredOrderCategory string `json:"preferred_order_category"`
}

// Numeric returns the value of a numeric feature field by wire name.
func (p *Payload) Numeric(field string) (float64, bool) {
	ptr := p.numeric(field)
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

func (p *Payload) numeric(field string) *float64 {
	switch field {
	case FieldTenure:
		return &p.Tenure
	case FieldWarehouseToHome:
		return &p.WarehouseToHome
	case FieldNumDevices:
		return &p.NumDevices
	case FieldSatisfactionScore:
		return &p.SatisfactionScore
	case FieldCityTier:
		return &p.CityTier
	case FieldHourSpendOnApp:
		return &p.HourSpendOnApp
	case FieldNumAddress:
		return &p.NumAddress
	case FieldComplain:
		return &p.Complain
	case FieldOrderAmountHike:
		return &p.OrderAmountHike
	case FieldCouponUsed:
		return &p.CouponUsed
	case FieldOrderCount:
		return &p.OrderCount
	case FieldDaysSinceLastOrder:
		return &p.DaysSinceLastOrder
	case FieldCashbackAmount:
		return &p.CashbackAmount
	}
	return nil
}
