package http

import (
	"burger/internal/core/application/session"
	"burger/internal/core/application/usecases/queries"
	"burger/internal/core/domain/model/assembly"
	"burger/internal/generated/servers"
)

func toIngredient(r queries.GetIngredientsQueryResponse) servers.Ingredient {
	return servers.Ingredient{
		Id:            r.ID,
		Name:          r.Name,
		Type:          r.Type,
		Price:         r.Price.InexactFloat64(),
		Calories:      r.Calories,
		Proteins:      r.Proteins,
		Fat:           r.Fat,
		Carbohydrates: r.Carbohydrates,
		Image:         optional(r.Image),
		ImageMobile:   optional(r.ImageMobile),
		ImageLarge:    optional(r.ImageLarge),
	}
}

func toSelectedIngredient(s assembly.SelectedPart) servers.SelectedIngredient {
	part := s.Part()
	return servers.SelectedIngredient{
		InstanceId: s.InstanceID().Bytes(),
		Id:         part.ID(),
		Name:       part.Name(),
		Type:       part.Category().WireName(),
		Price:      part.Price().Decimal().InexactFloat64(),
		Image:      optional(part.Images().Regular),
	}
}

func toConstructor(snap session.Snapshot) servers.Constructor {
	c := servers.Constructor{
		Ingredients: make([]servers.SelectedIngredient, len(snap.Fillings)),
		Price:       snap.Price.Decimal().InexactFloat64(),
		Counters:    snap.Counters,
		Order: servers.OrderState{
			Status:    servers.OrderStateStatus(snap.Submission.Status().String()),
			IsLoading: snap.Submission.IsLoading(),
			ShowModal: snap.Submission.ShowOrderModal(),
			Name:      optional(snap.Submission.OrderName()),
		},
	}
	if c.Counters == nil {
		c.Counters = map[string]int{}
	}
	if snap.Base != nil {
		bun := toSelectedIngredient(*snap.Base)
		c.Bun = &bun
	}
	for i, filling := range snap.Fillings {
		c.Ingredients[i] = toSelectedIngredient(filling)
	}
	if number, ok := snap.Submission.OrderNumber(); ok {
		c.Order.Number = &number
	}
	if msg, ok := snap.Submission.ErrorMessage(); ok {
		c.Order.Error = &msg
	}
	return c
}

// optional maps "" to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
