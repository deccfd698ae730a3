package response

import (
	"time"

	"agendapay/internal/domain/work"

	"github.com/jinzhu/copier"
	"github.com/google/uuid"
)

type WorkResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromWork(w *work.Work) *WorkResponse {
	var resp WorkResponse
	_ = copier.Copy(&resp, w)
	resp.Price = w.Price().Float()
	resp.PriceCents = w.Price().Cents()
	return &resp
}

func FromWorks(works []*work.Work) []*WorkResponse {
	out := make([]*WorkResponse, 0, len(works))
	for _, w := range works {
		out = append(out, FromWork(w))
	}
	return out
}
