// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package feature

// Field names as they appear on the wire and in the editable form.
const (
	FieldCustomerID             = "customer_id"
	FieldTenure                 = "tenure"
	FieldWarehouseToHome        = "warehouse_to_home"
	FieldNumDevices             = "num_devices"
	FieldSatisfactionScore      = "satisfaction_score"
	FieldCityTier               = "city_tier"
	FieldHourSpendOnApp         = "hour_spend_on_app"
	FieldNumAddress             = "num_address"
	FieldComplain               = "complain"
	FieldOrderAmountHike        = "order_amount_hike"
	FieldCouponUsed             = "coupon_used"
	FieldOrderCount             = "order_count"
	FieldDaysSinceLastOrder     = "days_since_last_order"
	FieldCashbackAmount         = "cashback_amount"
	FieldGender                 = "gender"
	FieldMaritalStatus          = "marital_status"
	FieldPaymentMode            = "payment_mode"
	FieldPreferredLoginDevice   = "preferred_login_device"
	FieldPreferredOrderCategory = "preferred_order_category"
)

// NumericFields lists the fields that must be converted to numbers before
// transmission, in form order. Validation reports the first failure in this order.
var NumericFields = []string{
	FieldCustomerID,
	FieldTenure,
	FieldWarehouseToHome,
	FieldNumDevices,
	FieldSatisfactionScore,
	FieldCityTier,
	FieldHourSpendOnApp,
	FieldNumAddress,
	FieldComplain,
	FieldOrderAmountHike,
	FieldCouponUsed,
	FieldOrderCount,
	FieldDaysSinceLastOrder,
	FieldCashbackAmount,
}

// CategoricalFields lists the selection-only fields.
var CategoricalFields = []string{
	FieldGender,
	FieldMaritalStatus,
	FieldPaymentMode,
	FieldPreferredLoginDevice,
	FieldPreferredOrderCategory,
}

// Selectable values offered by the form. Gender and marital status are kept
// lowercase in the form and capitalized on the wire.
var (
	Genders         = []string{"male", "female"}
	MaritalStatuses = []string{"single", "married"}
	PaymentModes    = []string{"Credit Card", "Debit Card", "Cash on Delivery", "Digital Wallet"}
	LoginDevices    = []string{"Mobile Phone", "Computer", "Phone"}
	OrderCategories = []string{"Laptop & Accessory", "Mobile", "Fashion", "Grocery"}
	CityTiers       = []int{1, 2, 3}
)

// DefaultValues returns the values a freshly mounted form starts with.
func DefaultValues() map[string]string {
	values := make(map[string]string, len(NumericFields)+len(CategoricalFields))
	for _, f := range NumericFields {
		values[f] = "0"
	}
	values[FieldGender] = "male"
	values[FieldMaritalStatus] = "single"
	values[FieldPaymentMode] = "Credit Card"
	values[FieldPreferredLoginDevice] = "Mobile Phone"
	values[FieldPreferredOrderCategory] = "Laptop & Accessory"
	return values
}

// IsKnownField reports whether name is part of the feature schema.
func IsKnownField(name string) bool {
	for _, f := range NumericFields {
		if f == name {
			return true
		}
	}
	for _, f := range CategoricalFields {
		if f == name {
			return true
		}
	}
	return false
}
