package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BuyerInfo is the optional contact/address block attached to a sale record
// and consumed by receipt generation.
type BuyerInfo struct {
	Name         string `json:"name,omitempty"`
	CPF          string `json:"cpf,omitempty"`
	Phone        string `json:"phone,omitempty"`
	CEP          string `json:"cep,omitempty"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}

func (b BuyerInfo) IsZero() bool {
	return b == BuyerInfo{}
}

// Value stores the buyer as a JSONB column, NULL when empty.
func (b BuyerInfo) Value() (driver.Value, error) {
	if b.IsZero() {
		return nil, nil
	}
	return json.Marshal(b)
}

func (b *BuyerInfo) Scan(src interface{}) error {
	if src == nil {
		*b = BuyerInfo{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("buyer info: unsupported scan type %T", src)
	}
}
