package domain

type FeaturedCard struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Slot   string  `gorm:"column:slot;not null" json:"slot"`
	CardID uint64  `gorm:"column:card_id;not null" json:"card_id"`
	Score  float64 `gorm:"column:score;not null" json:"score"`
}

func (FeaturedCard) TableName() string {
	return "featured_cards"
}
