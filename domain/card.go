package domain

import (
	"time"
)

// CREATE TABLE public.cards (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     card_type   TEXT NOT NULL,
//     rarity      TEXT NOT NULL,
//     price       NUMERIC NOT NULL,
//     stock       INT NOT NULL DEFAULT 0,
//     description TEXT,
//     set_id      BIGINT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Card struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	CardType    string    `gorm:"column:card_type;type:text;not null" json:"card_type"`
	Rarity      string    `gorm:"column:rarity;type:text;not null" json:"rarity"`
	Price       float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	Stock       int       `gorm:"column:stock;default:0" json:"stock"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	SetID       uint64    `gorm:"column:set_id;default:0" json:"set_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Card) TableName() string {
	return "cards"
}
