package referral

import (
	"context"
	"time"

	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// ListItem is the display row the referral list endpoint renders.
type ListItem struct {
	Name   string `json:"Name"`
	Buyer  string `json:"Buyer_ID"`
	UserID uint   `json:"User_ID"`
	Side   string `json:"Side"`
	Date   string `json:"Date"`
	Plan   int    `json:"Plan"`
}

// Presenter resolves walker output into display rows.
type Presenter struct {
	walker *Walker
	dir    Directory
	now    func() time.Time
}

func NewPresenter(walker *Walker, dir Directory) *Presenter {
	return &Presenter{walker: walker, dir: dir, now: time.Now}
}

// List walks the downline of rootID and resolves each entry for display:
// buyer id becomes the buyer's name (empty when the buyer is gone), the
// plan defaults to 20 when unset, and sides render as "Left"/"Right".
// Every row is stamped with the current wall-clock time, not the
// referral's enrollment date; the frontend relies on this.
func (p *Presenter) List(ctx context.Context, rootID uint) ([]ListItem, error) {
	entries, err := p.walker.Walk(ctx, rootID)
	if err != nil {
		return nil, err
	}

	stamp := p.now().Format("2006-01-02 15:04:05")

	items := make([]ListItem, 0, len(entries))
	for _, e := range entries {
		buyerName := ""
		if buyer, err := p.dir.Find(ctx, e.BuyerID); err != nil {
			return nil, err
		} else if buyer != nil {
			buyerName = buyer.Name
		}

		plan := models.DefaultMatrixType
		if member, err := p.dir.Find(ctx, e.UserID); err != nil {
			return nil, err
		} else if member != nil {
			plan = member.Plan()
		}

		items = append(items, ListItem{
			Name:   e.Name,
			Buyer:  buyerName,
			UserID: e.UserID,
			Side:   sideWord(e.Side),
			Date:   stamp,
			Plan:   plan,
		})
	}

	return items, nil
}

func sideWord(side string) string {
	if side == models.SideLeft {
		return "Left"
	}
	return "Right"
}
