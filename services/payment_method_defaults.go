package services

import "github.com/shopspring/decimal"

// MethodKind keys the visual table. Lookup goes method id first, then sub-category.
type MethodKind string

const (
	KindCash         MethodKind = "cash"
	KindCard         MethodKind = "card"
	KindBankTransfer MethodKind = "bank_transfer"
	KindQRIS         MethodKind = "qris"
	KindEWallet      MethodKind = "ewallet"
	KindFoodDelivery MethodKind = "food_delivery"
	KindGeneric      MethodKind = "generic"
)

type Visual struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var methodVisuals = map[MethodKind]Visual{
	KindCash:         {Icon: "banknote", Color: "#16a34a"},
	KindCard:         {Icon: "credit-card", Color: "#2563eb"},
	KindBankTransfer: {Icon: "landmark", Color: "#0891b2"},
	KindQRIS:         {Icon: "qr-code", Color: "#dc2626"},
	KindEWallet:      {Icon: "wallet", Color: "#7c3aed"},
	KindFoodDelivery: {Icon: "bike", Color: "#ea580c"},
	KindGeneric:      {Icon: "circle-dollar-sign", Color: "#6b7280"},
}

type defaultMethod struct {
	id       string
	name     string
	category MethodCategory
	kind     MethodKind
	enabled  bool
	fee      string
	feeType  FeeType
	config   []string // keys the method expects, seeded empty
}

var defaultMethodTable = []defaultMethod{
	{id: "cash", name: "Cash", category: CategoryOffline, kind: KindCash, enabled: true, fee: "0", feeType: FeeFlat},
	{id: "debit_card", name: "Debit Card", category: CategoryOffline, kind: KindCard, enabled: true, fee: "0", feeType: FeePercentage},
	{id: "credit_card", name: "Credit Card", category: CategoryOffline, kind: KindCard, fee: "2", feeType: FeePercentage},
	{id: "qris", name: "QRIS", category: CategoryOnline, kind: KindQRIS, enabled: true, fee: "0.7", feeType: FeePercentage, config: []string{"qrImage"}},
	{id: "bank_transfer", name: "Bank Transfer", category: CategoryOnline, kind: KindBankTransfer, fee: "0", feeType: FeeFlat, config: []string{"bankName", "accountNumber", "accountName"}},
	{id: "gopay", name: "GoPay", category: CategoryOnline, kind: KindEWallet, fee: "0", feeType: FeePercentage},
	{id: "ovo", name: "OVO", category: CategoryOnline, kind: KindEWallet, fee: "0", feeType: FeePercentage},
	{id: "dana", name: "DANA", category: CategoryOnline, kind: KindEWallet, fee: "0", feeType: FeePercentage},
	{id: "shopeepay", name: "ShopeePay", category: CategoryOnline, kind: KindEWallet, fee: "0", feeType: FeePercentage},
	{id: "gofood", name: "GoFood", category: CategoryFoodDelivery, kind: KindFoodDelivery, fee: "20", feeType: FeePercentage},
	{id: "grabfood", name: "GrabFood", category: CategoryFoodDelivery, kind: KindFoodDelivery, fee: "20", feeType: FeePercentage},
	{id: "shopeefood", name: "ShopeeFood", category: CategoryFoodDelivery, kind: KindFoodDelivery, fee: "20", feeType: FeePercentage},
}

var defaultKinds = func() map[string]MethodKind {
	m := make(map[string]MethodKind, len(defaultMethodTable))
	for _, d := range defaultMethodTable {
		m[d.id] = d.kind
	}
	return m
}()

func isDefaultID(id string) bool {
	_, ok := defaultKinds[id]
	return ok
}

// ResolveVisual finds the icon and color for a method. Unknown methods get the generic pair.
func ResolveVisual(id, subCategory string) Visual {
	if k, ok := defaultKinds[id]; ok {
		return methodVisuals[k]
	}
	if v, ok := methodVisuals[MethodKind(subCategory)]; ok {
		return v
	}
	return methodVisuals[KindGeneric]
}

// DefaultMethods returns a fresh copy of the seeded method list.
func DefaultMethods() []PaymentMethodConfig {
	out := make([]PaymentMethodConfig, 0, len(defaultMethodTable))
	for _, d := range defaultMethodTable {
		v := methodVisuals[d.kind]
		m := PaymentMethodConfig{
			ID:          d.id,
			Name:        d.name,
			Category:    d.category,
			SubCategory: string(d.kind),
			Icon:        v.Icon,
			Color:       v.Color,
			Enabled:     d.enabled,
			IsDefault:   true,
			Fee:         decimal.RequireFromString(d.fee),
			FeeType:     d.feeType,
		}
		if len(d.config) > 0 {
			m.Config = make(map[string]string, len(d.config))
			for _, k := range d.config {
				m.Config[k] = ""
			}
		}
		out = append(out, m)
	}
	return out
}
