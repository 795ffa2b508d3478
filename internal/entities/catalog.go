package entities

import (
	"bytes"
	"encoding/gob"

	"github.com/shopspring/decimal"
)

// CatalogSnapshot цена и названия позиции каталога на момент запроса.
type CatalogSnapshot struct {
	MenuItemID int64
	SizeID     int64
	ItemName   string
	SizeName   string
	UnitPrice  decimal.Decimal
}

func (c *CatalogSnapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *CatalogSnapshot) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(c)
}

func init() {
	gob.Register(CatalogSnapshot{})
}
