package orders

import (
	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// Resource is the JSON projection of one order.
type Resource struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	UserEmail   string  `json:"user_email"`
	UserName    string  `json:"user_name"`
	Status      int     `json:"status"`
	Description string  `json:"description"`
	HashID      string  `json:"hash_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	UpdateDate  string  `json:"update_date"`
}

func NewResource(o models.Order) Resource {
	res := Resource{
		ID:         o.ID,
		UserID:     o.UserID,
		Status:     o.Status,
		HashID:     o.Hash,
		Amount:     o.Amount,
		Date:       o.CreatedAt.Format("2006-01-02"),
		UpdateDate: o.UpdatedAt.Format("2006-01-02"),
	}
	if o.User != nil {
		res.UserEmail = o.User.Email
		res.UserName = o.User.ShortName()
	}
	if o.Cyborg != nil {
		res.Description = o.Cyborg.Description
	}
	return res
}

func NewResourceCollection(orders []models.Order) []Resource {
	out := make([]Resource, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewResource(o))
	}
	return out
}
