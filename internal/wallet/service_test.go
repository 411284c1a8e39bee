package wallet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexiva1995/Networkx-back/internal/models"
)

type fakeEntries struct {
	byUser map[uint][]models.WalletComission
}

func (f *fakeEntries) EntriesByUser(_ context.Context, userID uint) ([]models.WalletComission, error) {
	return f.byUser[userID], nil
}

type fakeUsers struct {
	users map[uint]models.User
}

func (f *fakeUsers) NonAdminUsers(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if !u.Admin {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) Find(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func newService(entries map[uint][]models.WalletComission, users map[uint]models.User) *Service {
	return NewService(&fakeEntries{byUser: entries}, &fakeUsers{users: users})
}

func TestBalanceBonusAndMonthly_Example(t *testing.T) {
	t.Parallel()

	entries := map[uint][]models.WalletComission{
		1: {
			{ID: 1, UserID: 1, Amount: 100, Status: 0, AvailableWithdraw: 0,
				CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
			{ID: 2, UserID: 1, Amount: 50, Status: 0, AvailableWithdraw: 1,
				CreatedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
		},
	}
	s := newService(entries, nil)
	ctx := context.Background()

	balance, err := s.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, balance)

	bonus, err := s.Bonus(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, bonus)

	monthly, err := s.MonthlyEarnings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Jan": 100, "Feb": 50}, monthly)
}

func TestBalance_IgnoresNonAvailableStatus(t *testing.T) {
	t.Parallel()

	entries := map[uint][]models.WalletComission{
		1: {
			{Amount: 100, Status: models.WalletStatusAvailable},
			{Amount: 999, Status: models.WalletStatusPaid},
		},
	}
	s := newService(entries, nil)

	balance, err := s.Balance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance)
}

func TestPendingWithdrawals_FilterAndCap(t *testing.T) {
	t.Parallel()

	var rows []models.WalletComission
	for i := 1; i <= 20; i++ {
		rows = append(rows, models.WalletComission{
			ID:          uint(i),
			Amount:      float64(i),
			Description: fmt.Sprintf("entry %d", i),
			CreatedAt:   time.Date(2024, 5, i, 0, 0, 0, 0, time.UTC),
		})
	}
	// Already withdrawn entries never show up.
	rows = append(rows, models.WalletComission{ID: 99, AvailableWithdraw: 1, Amount: 1000})

	s := newService(map[uint][]models.WalletComission{1: rows}, nil)

	got, err := s.PendingWithdrawals(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 15)
	assert.Equal(t, uint(1), got[0].ID, "insertion order preserved")
	assert.Equal(t, "2024-05-01", got[0].CreatedAt)
}

func TestAllNonWithdrawn_Uncapped(t *testing.T) {
	t.Parallel()

	var rows []models.WalletComission
	for i := 1; i <= 30; i++ {
		rows = append(rows, models.WalletComission{ID: uint(i), Amount: 1})
	}
	s := newService(map[uint][]models.WalletComission{1: rows}, nil)

	got, err := s.AllNonWithdrawn(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 30)
}

func TestMonthlyTotals_YearCollisionLaterYearWins(t *testing.T) {
	t.Parallel()

	got := MonthlyTotals([]MonthAmount{
		{At: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), Amount: 10},
		{At: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: 70},
	})

	// Both years map onto "Mar"; the later year overwrites the earlier.
	assert.Equal(t, map[string]float64{"Mar": 70}, got)
}

func TestBreakdown_BalanceIdentity(t *testing.T) {
	t.Parallel()

	entries := []models.WalletComission{
		{Amount: 100, Status: 0, Type: models.WalletTypeCommission},
		{Amount: 25, Status: 0, Type: models.WalletTypeCommissionAlt},
		{Amount: 40, Status: 0, Type: models.WalletTypeTrading},
		{Amount: 10, Status: 0, Type: models.WalletTypeRefund},
		{Amount: 500, Status: models.WalletStatusVoided, Type: models.WalletTypeCommission},
	}

	b := ComputeBreakdown(entries)
	assert.Equal(t, 125.0, b.Commission)
	assert.Equal(t, 10.0, b.Refund)
	assert.Equal(t, 40.0, b.Trading)
	assert.Equal(t, b.Available, b.Balance(), "type subtotals must add up to the available sum")
}

func TestAdminWalletList_SkipsAdmins(t *testing.T) {
	t.Parallel()

	users := map[uint]models.User{
		1: {ID: 1, UserName: "boss", Admin: true},
		2: {ID: 2, UserName: "member", Email: "m@example.com", Status: 1, Affiliate: 1},
	}
	entries := map[uint][]models.WalletComission{
		2: {{Amount: 30, Status: 0, Type: models.WalletTypeCommission}},
	}

	s := newService(entries, users)
	rows, err := s.AdminWalletList(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "member", rows[0].UserName)
	assert.Equal(t, "Affiliate", rows[0].Affiliate)
	assert.Equal(t, 30.0, rows[0].Balance)
	assert.Equal(t, 30.0, rows[0].Comissions)
}

func TestFilteredAdminWalletList_Filters(t *testing.T) {
	t.Parallel()

	users := map[uint]models.User{
		2: {ID: 2, UserName: "alpha", Email: "a@example.com"},
		3: {ID: 3, UserName: "beta", Email: "b@example.com"},
	}
	s := newService(map[uint][]models.WalletComission{}, users)

	rows, err := s.FilteredAdminWalletList(context.Background(), "b@example.com", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "beta", rows[0].UserName)

	id := uint(2)
	rows, err = s.FilteredAdminWalletList(context.Background(), "", &id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alpha", rows[0].UserName)
}

func TestAuditUserWallets_TagsAndFormatting(t *testing.T) {
	t.Parallel()

	buyerID := uint(9)
	users := map[uint]models.User{
		9: {ID: 9, Name: "jOHN", LastName: "dOE smith"},
	}
	entries := map[uint][]models.WalletComission{
		1: {
			{ID: 1, BuyerID: &buyerID, Amount: 10, Status: models.WalletStatusRequested,
				CreatedAt: time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)},
			{ID: 2, BuyerID: &buyerID, Amount: 20, Status: models.WalletStatusPaid},
			{ID: 3, BuyerID: &buyerID, Amount: 30, Status: models.WalletStatusVoided},
			{ID: 4, BuyerID: &buyerID, Amount: 40, Status: models.WalletStatusSubtracted},
			{ID: 5, BuyerID: &buyerID, Amount: 50, Status: models.WalletStatusAvailable},
			{ID: 6, Amount: 60, Status: models.WalletStatusAvailable},
		},
	}

	s := newService(entries, users)
	rows, err := s.AuditUserWallets(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, "John Doe Smith", rows[0].Buyer)
	assert.Equal(t, "07/04/2024", rows[0].Date)
	assert.Equal(t, AuditStatus{Title: "Requested", Tag: "warning"}, rows[0].Status)
	assert.Equal(t, AuditStatus{Title: "Paid", Tag: "primary"}, rows[1].Status)
	assert.Equal(t, AuditStatus{Title: "Voided", Tag: "danger"}, rows[2].Status)
	assert.Equal(t, AuditStatus{Title: "Subtracted", Tag: "secondary"}, rows[3].Status)
	assert.Equal(t, AuditStatus{Title: "Available", Tag: "success"}, rows[4].Status)
	assert.Equal(t, "", rows[5].Buyer, "entries without a buyer render an empty name")
}
