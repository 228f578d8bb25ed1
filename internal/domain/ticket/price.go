package ticket

import "github.com/shopspring/decimal"

// DefaultMainHall は高い価格帯になるホール名
const DefaultMainHall = "Большой зал"

// PriceTable はホール名で決まる2段階の価格表
type PriceTable struct {
	MainHall      string
	MainHallPrice decimal.Decimal
	StandardPrice decimal.Decimal
}

// DefaultPriceTable は既定の価格表を返す
func DefaultPriceTable() PriceTable {
	return PriceTable{
		MainHall:      DefaultMainHall,
		MainHallPrice: decimal.NewFromInt(1500),
		StandardPrice: decimal.NewFromInt(1000),
	}
}

// PriceFor はホール名から価格を返す
func (t PriceTable) PriceFor(hall string) decimal.Decimal {
	if hall == t.MainHall {
		return t.MainHallPrice
	}
	return t.StandardPrice
}
