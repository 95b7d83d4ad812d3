package model

type AssetType string

const (
	AssetCash     AssetType = "cash"
	AssetStock    AssetType = "stock"
	AssetProperty AssetType = "property"
)

// Rank orders asset types for pool display: cash, stock, property.
func (t AssetType) Rank() int {
	switch t {
	case AssetCash:
		return 0
	case AssetStock:
		return 1
	case AssetProperty:
		return 2
	}
	return 3
}

func (t AssetType) Valid() bool {
	return t.Rank() < 3
}

// Asset is a discrete, indivisible holding. Amount is in currency minor units.
type Asset struct {
	ID       string    `json:"id"`
	Type     AssetType `json:"type"`
	Amount   int64     `json:"amount"`
	Location Location  `json:"location"`
	Name     string    `json:"name,omitempty"`
}
