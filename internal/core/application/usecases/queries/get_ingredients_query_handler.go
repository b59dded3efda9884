package queries

import (
	"context"

	"burger/internal/core/domain/model/catalog"

	"gorm.io/gorm"
)

// GetIngredientsQueryHandler reads the cached catalog from the parts table.
type GetIngredientsQueryHandler struct {
	db *gorm.DB
}

func NewGetIngredientsQueryHandler(db *gorm.DB) GetIngredientsQueryHandler {
	return GetIngredientsQueryHandler{db: db}
}

// Handle returns ingredients ordered by id.
func (h GetIngredientsQueryHandler) Handle(
	ctx context.Context,
	query GetIngredientsQuery,
) ([]GetIngredientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			category,
			price,
			nutrition_calories,
			nutrition_proteins,
			nutrition_fat,
			nutrition_carbohydrates,
			COALESCE(image_regular, ''),
			COALESCE(image_mobile, ''),
			COALESCE(image_large, '')
		FROM parts`
	args := make([]any, 0, 1)
	if query.Category() != catalog.Unknown {
		sql += ` WHERE category = ?`
		args = append(args, int(query.Category()))
	}
	sql += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := make([]GetIngredientsQueryResponse, 0)
	for rows.Next() {
		var ingredient GetIngredientsQueryResponse
		var category catalog.Category

		err = rows.Scan(
			&ingredient.ID,
			&ingredient.Name,
			&category,
			&ingredient.Price,
			&ingredient.Calories,
			&ingredient.Proteins,
			&ingredient.Fat,
			&ingredient.Carbohydrates,
			&ingredient.Image,
			&ingredient.ImageMobile,
			&ingredient.ImageLarge,
		)
		if err != nil {
			return nil, err
		}

		ingredient.Type = category.WireName()
		ingredients = append(ingredients, ingredient)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ingredients, nil
}
