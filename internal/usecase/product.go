package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// ProductUseCase manages the course catalogue.
type ProductUseCase struct {
	gw *Gateway
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(gw *Gateway) *ProductUseCase {
	return &ProductUseCase{gw: gw}
}

// Create adds a course with the next free id.
func (u *ProductUseCase) Create(ctx context.Context, actor model.Operator, product model.Product) (model.Product, error) {
	if err := requirePrivileged(actor); err != nil {
		return model.Product{}, err
	}
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return model.Product{}, domainErrors.ErrProductNameRequired
	}
	if product.MonthlyPrice < 0 || product.TotalPrice < 0 {
		return model.Product{}, domainErrors.ErrInvalidPrice
	}
	if strings.TrimSpace(product.Category) == "" {
		product.Category = model.DefaultProductCategory
	}

	snapshot := u.gw.state.Snapshot()
	ids := make([]string, 0, len(snapshot.Products))
	for _, p := range snapshot.Products {
		ids = append(ids, p.ID)
	}
	product.ID = NextID(ids)

	if err := u.gw.write(ctx, func(e model.Endpoints) string { return e.Products }, "product", productRow(product)); err != nil {
		return model.Product{}, err
	}

	u.gw.state.ApplyMutation(func(s *model.Snapshot) {
		s.Products = append(s.Products, product)
	})
	u.gw.resyncAfter(u.gw.delays.Task)
	return product, nil
}

func productRow(p model.Product) map[string]any {
	return map[string]any{
		"product id":  p.ID,
		"product":     p.Name,
		"davomiyligi": p.Duration,
		"oylik narxi": p.MonthlyPrice,
		"jami narxi":  p.TotalPrice,
		"izoh":        p.Description,
		"video":       p.Video,
		"hujjati":     p.Document,
		"kategoriya":  p.Category,
	}
}
