package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/httpx"
	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// UsersWalletsList reports the balance breakdown of every non-admin user.
func (h *Handlers) UsersWalletsList(c *gin.Context) {
	rows, err := h.ledger.AdminWalletList(c.Request.Context())
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// FilteredUsersWalletsList narrows the breakdown by email and/or id.
func (h *Handlers) FilteredUsersWalletsList(c *gin.Context) {
	email := c.Query("email")
	var id *uint
	if raw := c.Query("id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httpx.ValidationErrors(c, errors.New("id must be numeric"))
			return
		}
		v := uint(parsed)
		id = &v
	}

	rows, err := h.ledger.FilteredAdminWalletList(c.Request.Context(), email, id)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// withdrawalRow is one liquidation with its destination decrypted for
// the audit screen.
type withdrawalRow struct {
	ID         uint         `json:"id"`
	UserID     uint         `json:"user_id"`
	User       *models.User `json:"user,omitempty"`
	WalletUsed string       `json:"wallet_used"`
	Hash       string       `json:"hash"`
	Amount     float64      `json:"amount"`
	Status     int          `json:"status"`
	CreatedAt  string       `json:"created_at"`
}

// FilterWithdrawals lists withdrawal requests matching the email/id
// filters. Without any filter it returns an empty list rather than the
// whole table.
func (h *Handlers) FilterWithdrawals(c *gin.Context) {
	email := c.Query("email")
	idRaw := c.Query("id")

	if email == "" && idRaw == "" {
		c.JSON(http.StatusOK, []withdrawalRow{})
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Preload("User").
		Where("liquidactions.user_id > ?", 1)

	if email != "" {
		q = q.Joins("JOIN users ON users.id = liquidactions.user_id").
			Where("users.email = ?", email)
	}
	if idRaw != "" {
		id, err := strconv.ParseUint(idRaw, 10, 32)
		if err != nil {
			httpx.ValidationErrors(c, errors.New("id must be numeric"))
			return
		}
		q = q.Where("liquidactions.user_id = ?", uint(id))
	}

	var withdrawals []models.Liquidaction
	if err := q.Find(&withdrawals).Error; err != nil {
		httpx.Abort(c, err)
		return
	}

	rows := make([]withdrawalRow, 0, len(withdrawals))
	for _, w := range withdrawals {
		destination := w.WalletUsed
		if decrypted, err := h.crypt.Decrypt(w.WalletUsed); err == nil {
			destination = decrypted
		}

		rows = append(rows, withdrawalRow{
			ID:         w.ID,
			UserID:     w.UserID,
			User:       w.User,
			WalletUsed: destination,
			Hash:       w.DisplayHash(),
			Amount:     w.Amount,
			Status:     w.Status,
			CreatedAt:  w.CreatedAt.Format("2006-01-02"),
		})
	}
	c.JSON(http.StatusOK, rows)
}

// FilterUsersList lists non-admin users, optionally narrowed by email/id.
func (h *Handlers) FilterUsersList(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Where("admin = ?", false)

	if email := c.Query("email"); email != "" {
		q = q.Where("email = ?", email)
	}
	if idRaw := c.Query("id"); idRaw != "" {
		id, err := strconv.ParseUint(idRaw, 10, 32)
		if err != nil {
			httpx.ValidationErrors(c, errors.New("id must be numeric"))
			return
		}
		q = q.Where("id = ?", uint(id))
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UsersDownload projects the non-admin user list for CSV export.
func (h *Handlers) UsersDownload(c *gin.Context) {
	var users []models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("admin = ?", false).
		Find(&users).Error
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	rows := make([]gin.H, 0, len(users))
	for _, u := range users {
		rows = append(rows, gin.H{
			"id":        u.ID,
			"date":      u.CreatedAt.Format("2006-01-02"),
			"user_name": u.ShortName(),
			"status":    u.StatusLabel(),
			"afilliate": u.AffiliateLabel(),
		})
	}
	c.JSON(http.StatusOK, rows)
}

// Users lists non-admin users with their total available gain.
func (h *Handlers) Users(c *gin.Context) {
	ctx := c.Request.Context()

	var users []models.User
	err := h.db.WithContext(ctx).
		Where("admin = ?", false).
		Order("id").
		Find(&users).Error
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	rows := make([]gin.H, 0, len(users))
	for _, u := range users {
		var totalGain float64
		err := h.db.WithContext(ctx).
			Model(&models.WalletComission{}).
			Where("user_id = ? AND status = ?", u.ID, models.WalletStatusAvailable).
			Select("COALESCE(SUM(amount_available), 0)").
			Scan(&totalGain).Error
		if err != nil {
			httpx.Abort(c, err)
			return
		}

		rows = append(rows, gin.H{
			"id":         u.ID,
			"user_name":  u.UserName,
			"email":      u.Email,
			"status":     u.Status,
			"affiliate":  u.Affiliate,
			"total_gain": totalGain,
			"created_at": u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, rows)
}

// AuditUserWallets lists one user's ledger with display annotations.
func (h *Handlers) AuditUserWallets(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httpx.ValidationErrors(c, errors.New("id must be numeric"))
		return
	}

	rows, err := h.ledger.AuditUserWallets(c.Request.Context(), uint(id))
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "warning", "message": "This user don't have any wallet"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AuditUserProfile returns one user's profile snapshot.
func (h *Handlers) AuditUserProfile(c *gin.Context) {
	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Preload("Prefix").
		First(&user, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.Abort(c, httpx.ErrNotFound)
		return
	}
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial admin edit to a user row. Binary
// placement (buyer_id, binary_side) is never editable.
func (h *Handlers) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var user models.User
	err := h.db.WithContext(ctx).First(&user, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.Abort(c, httpx.ErrNotFound)
		return
	}
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationErrors(c, err)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.UserName != nil {
		user.UserName = *req.UserName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Affiliate != nil {
		user.Affiliate = *req.Affiliate
	}

	if err := h.db.WithContext(ctx).Save(&user).Error; err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
