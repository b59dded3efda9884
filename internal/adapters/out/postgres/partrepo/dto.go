// Package partrepo persists the cached ingredient catalog. It maps catalog.Part
// to the "parts" table and back.
package partrepo

import (
	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// PartDTO is the row stored for one catalog part.
type PartDTO struct {
	ID        string           `gorm:"type:varchar(64);primaryKey"`
	Name      string           `gorm:"type:varchar(255);not null"`
	Category  catalog.Category `gorm:"type:smallint;not null;index"`
	Price     decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Nutrition NutritionDTO     `gorm:"embedded;embeddedPrefix:nutrition_"`
	Images    ImagesDTO        `gorm:"embedded;embeddedPrefix:image_"`
}

func (PartDTO) TableName() string {
	return "parts"
}

// NutritionDTO is embedded into the parts table.
type NutritionDTO struct {
	Calories      float64 `gorm:"type:double precision;not null;default:0"`
	Proteins      float64 `gorm:"type:double precision;not null;default:0"`
	Fat           float64 `gorm:"type:double precision;not null;default:0"`
	Carbohydrates float64 `gorm:"type:double precision;not null;default:0"`
}

// ImagesDTO is embedded into the parts table. Empty strings mean no image.
type ImagesDTO struct {
	Regular string `gorm:"type:text"`
	Mobile  string `gorm:"type:text"`
	Large   string `gorm:"type:text"`
}

func fromDomain(part *catalog.Part) PartDTO {
	nutrition := part.Nutrition()
	images := part.Images()

	return PartDTO{
		ID:       part.ID(),
		Name:     part.Name(),
		Category: part.Category(),
		Price:    part.Price().Decimal(),
		Nutrition: NutritionDTO{
			Calories:      nutrition.Calories,
			Proteins:      nutrition.Proteins,
			Fat:           nutrition.Fat,
			Carbohydrates: nutrition.Carbohydrates,
		},
		Images: ImagesDTO{
			Regular: images.Regular,
			Mobile:  images.Mobile,
			Large:   images.Large,
		},
	}
}

// toDomain rebuilds a part through catalog.NewPart, so stored rows pass the
// same validation as fetched ones.
func toDomain(dto PartDTO) (*catalog.Part, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.NewPart(
		dto.ID,
		dto.Name,
		dto.Category,
		price,
		catalog.Nutrition{
			Calories:      dto.Nutrition.Calories,
			Proteins:      dto.Nutrition.Proteins,
			Fat:           dto.Nutrition.Fat,
			Carbohydrates: dto.Nutrition.Carbohydrates,
		},
		catalog.Images{
			Regular: dto.Images.Regular,
			Mobile:  dto.Images.Mobile,
			Large:   dto.Images.Large,
		},
	)
}
