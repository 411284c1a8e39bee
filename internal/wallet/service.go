// Package wallet provides read-only aggregation views over the
// commission ledger.
package wallet

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// EntrySource fetches the ledger rows of one user. Each view fetches
// exactly once per request so all aggregates of a response come from a
// single snapshot.
type EntrySource interface {
	EntriesByUser(ctx context.Context, userID uint) ([]models.WalletComission, error)
}

// UserSource resolves users for the admin views. Find returns (nil, nil)
// for missing users.
type UserSource interface {
	NonAdminUsers(ctx context.Context) ([]models.User, error)
	Find(ctx context.Context, id uint) (*models.User, error)
}

type Service struct {
	entries EntrySource
	users   UserSource
}

func NewService(entries EntrySource, users UserSource) *Service {
	return &Service{entries: entries, users: users}
}

// maxPendingRows caps the pending-withdrawals listing.
const maxPendingRows = 15

// WithdrawalRow is one pending (not yet withdrawn) ledger entry.
type WithdrawalRow struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}

// PendingWithdrawals lists entries still eligible for withdrawal, in
// insertion order, capped at 15 rows.
func (s *Service) PendingWithdrawals(ctx context.Context, userID uint) ([]WithdrawalRow, error) {
	entries, err := s.entries.EntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := []WithdrawalRow{}
	for _, e := range entries {
		if e.AvailableWithdraw != 0 {
			continue
		}
		rows = append(rows, WithdrawalRow{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			CreatedAt:   e.CreatedAt.Format("2006-01-02"),
		})
		if len(rows) == maxPendingRows {
			break
		}
	}
	return rows, nil
}

// AmountRow projects just the amount and raw creation time.
type AmountRow struct {
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// AllNonWithdrawn lists every entry not yet withdrawn, uncapped.
func (s *Service) AllNonWithdrawn(ctx context.Context, userID uint) ([]AmountRow, error) {
	entries, err := s.entries.EntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := []AmountRow{}
	for _, e := range entries {
		if e.AvailableWithdraw != 0 {
			continue
		}
		rows = append(rows, AmountRow{Amount: e.Amount, CreatedAt: e.CreatedAt})
	}
	return rows, nil
}

// Balance sums available entries (status 0), withdrawn or not.
func (s *Service) Balance(ctx context.Context, userID uint) (float64, error) {
	entries, err := s.entries.EntriesByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return availableSum(entries), nil
}

// Bonus sums available entries already marked withdrawn.
func (s *Service) Bonus(ctx context.Context, userID uint) (float64, error) {
	entries, err := s.entries.EntriesByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, e := range entries {
		if e.Status == models.WalletStatusAvailable && e.AvailableWithdraw == 1 {
			total += e.Amount
		}
	}
	return total, nil
}

// TotalEarnings sums every entry regardless of status.
func (s *Service) TotalEarnings(ctx context.Context, userID uint) (float64, error) {
	entries, err := s.entries.EntriesByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, e := range entries {
		total += e.Amount
	}
	return total, nil
}

func availableSum(entries []models.WalletComission) float64 {
	total := 0.0
	for _, e := range entries {
		if e.Status == models.WalletStatusAvailable {
			total += e.Amount
		}
	}
	return total
}

// MonthAmount is a dated amount fed into MonthlyTotals.
type MonthAmount struct {
	At     time.Time
	Amount float64
}

// MonthlyTotals groups amounts by (year, month) and keys the result by
// the 3-letter month abbreviation. Two years sharing a month collapse
// onto the same key, the later year winning; the charting frontend was
// built against this keying, so it is kept as is.
func MonthlyTotals(items []MonthAmount) map[string]float64 {
	type yearMonth struct {
		year  int
		month time.Month
	}

	sums := map[yearMonth]float64{}
	for _, it := range items {
		k := yearMonth{year: it.At.Year(), month: it.At.Month()}
		sums[k] += it.Amount
	}

	keys := make([]yearMonth, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := map[string]float64{}
	for _, k := range keys {
		label := time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan")
		out[label] = sums[k]
	}
	return out
}

// MonthlyEarnings keys the user's ledger totals by month abbreviation.
func (s *Service) MonthlyEarnings(ctx context.Context, userID uint) (map[string]float64, error) {
	entries, err := s.entries.EntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]MonthAmount, 0, len(entries))
	for _, e := range entries {
		items = append(items, MonthAmount{At: e.CreatedAt, Amount: e.Amount})
	}
	return MonthlyTotals(items), nil
}

// Breakdown splits the available balance by entry type.
type Breakdown struct {
	Commission float64
	Refund     float64
	Trading    float64
	Available  float64
}

// Balance is the reported balance: the three type subtotals combined.
// It must equal Available for every ledger state.
func (b Breakdown) Balance() float64 {
	return b.Commission + b.Refund + b.Trading
}

// ComputeBreakdown folds status-0 entries into per-type subtotals.
func ComputeBreakdown(entries []models.WalletComission) Breakdown {
	var b Breakdown
	for _, e := range entries {
		if e.Status != models.WalletStatusAvailable {
			continue
		}
		b.Available += e.Amount
		switch e.Type {
		case models.WalletTypeCommission, models.WalletTypeCommissionAlt:
			b.Commission += e.Amount
		case models.WalletTypeRefund:
			b.Refund += e.Amount
		case models.WalletTypeTrading:
			b.Trading += e.Amount
		}
	}
	return b
}

// AdminWalletRow is one line of the admin wallet breakdown.
type AdminWalletRow struct {
	ID         uint    `json:"id"`
	UserName   string  `json:"userName"`
	Email      string  `json:"email"`
	Status     int     `json:"status"`
	Affiliate  string  `json:"affiliate"`
	Balance    float64 `json:"balance"`
	Comissions float64 `json:"comissions"`
	Refund     float64 `json:"refund"`
	Trading    float64 `json:"trading"`
}

// AdminWalletList computes the per-user balance breakdown for every
// non-admin user.
func (s *Service) AdminWalletList(ctx context.Context) ([]AdminWalletRow, error) {
	users, err := s.users.NonAdminUsers(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]AdminWalletRow, 0, len(users))
	for _, u := range users {
		entries, err := s.entries.EntriesByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		b := ComputeBreakdown(entries)
		rows = append(rows, AdminWalletRow{
			ID:         u.ID,
			UserName:   u.UserName,
			Email:      u.Email,
			Status:     u.Status,
			Affiliate:  u.AffiliateLabel(),
			Balance:    b.Balance(),
			Comissions: b.Commission,
			Refund:     b.Refund,
			Trading:    b.Trading,
		})
	}
	return rows, nil
}

// FilteredAdminWalletList is AdminWalletList narrowed by optional email
// and id filters; its balance column reports the rounded available sum.
func (s *Service) FilteredAdminWalletList(ctx context.Context, email string, id *uint) ([]AdminWalletRow, error) {
	users, err := s.users.NonAdminUsers(ctx)
	if err != nil {
		return nil, err
	}

	rows := []AdminWalletRow{}
	for _, u := range users {
		if email != "" && u.Email != email {
			continue
		}
		if id != nil && u.ID != *id {
			continue
		}

		entries, err := s.entries.EntriesByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		b := ComputeBreakdown(entries)
		rows = append(rows, AdminWalletRow{
			ID:         u.ID,
			UserName:   u.UserName,
			Email:      u.Email,
			Status:     u.Status,
			Affiliate:  u.AffiliateLabel(),
			Balance:    math.Round(b.Available*100) / 100,
			Comissions: b.Commission,
			Refund:     b.Refund,
			Trading:    b.Trading,
		})
	}
	return rows, nil
}

// Display tags for the audit view, keyed by status name. Anything not
// listed renders as success.
var statusTags = map[string]string{
	"Requested":  "warning",
	"Paid":       "primary",
	"Voided":     "danger",
	"Subtracted": "secondary",
}

const defaultStatusTag = "success"

// AuditStatus is the tagged status cell of an audit row.
type AuditStatus struct {
	Title string `json:"title"`
	Tag   string `json:"tag"`
}

// AuditRow is one ledger entry annotated for the admin audit screen.
type AuditRow struct {
	ID     uint        `json:"id"`
	Buyer  string      `json:"buyer"`
	Amount float64     `json:"amount"`
	Status AuditStatus `json:"status"`
	Date   string      `json:"date"`
}

// AuditUserWallets lists every ledger entry of one user with display
// annotations. Returns an empty slice when the user has no entries.
func (s *Service) AuditUserWallets(ctx context.Context, userID uint) ([]AuditRow, error) {
	entries, err := s.entries.EntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]AuditRow, 0, len(entries))
	for _, e := range entries {
		buyerName := ""
		if e.BuyerID != nil {
			buyer, err := s.users.Find(ctx, *e.BuyerID)
			if err != nil {
				return nil, err
			}
			if buyer != nil {
				buyerName = titleCase(buyer.Name + " " + buyer.LastName)
			}
		}

		statusName := e.StatusName()
		tag, ok := statusTags[statusName]
		if !ok {
			tag = defaultStatusTag
		}

		rows = append(rows, AuditRow{
			ID:     e.ID,
			Buyer:  buyerName,
			Amount: e.Amount,
			Status: AuditStatus{Title: statusName, Tag: tag},
			Date:   e.CreatedAt.Format("01/02/2006"),
		})
	}
	return rows, nil
}

// titleCase lowercases the input and capitalizes the first letter of
// each word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
