package domain

import (
	"time"
)

// CREATE TABLE public.card_sets (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name         TEXT NOT NULL,
//     code         TEXT NOT NULL,
//     release_year INT,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type CardSet struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	Code        string    `gorm:"column:code;type:text;not null" json:"code"`
	ReleaseYear int       `gorm:"column:release_year" json:"release_year"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CardSet) TableName() string {
	return "card_sets"
}
