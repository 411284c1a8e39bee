package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/crypt"
	"github.com/Alexiva1995/Networkx-back/internal/httpx"
	"github.com/Alexiva1995/Networkx-back/internal/models"
	"github.com/Alexiva1995/Networkx-back/internal/orders"
	"github.com/Alexiva1995/Networkx-back/internal/profile"
	"github.com/Alexiva1995/Networkx-back/internal/referral"
	"github.com/Alexiva1995/Networkx-back/internal/wallet"
)

// Handlers bundles the dependencies of every endpoint.
type Handlers struct {
	db        *gorm.DB
	walker    *referral.Walker
	presenter *referral.Presenter
	ledger    *wallet.Service
	orders    *orders.Repository
	profile   *profile.Service
	crypt     *crypt.Encryptor
}

func NewHandlers(db *gorm.DB, walker *referral.Walker, presenter *referral.Presenter,
	ledger *wallet.Service, orderRepo *orders.Repository, profileSvc *profile.Service,
	enc *crypt.Encryptor) *Handlers {
	return &Handlers{
		db:        db,
		walker:    walker,
		presenter: presenter,
		ledger:    ledger,
		orders:    orderRepo,
		profile:   profileSvc,
		crypt:     enc,
	}
}

// ShowReferrals returns the raw downline enumeration of the caller.
func (h *Handlers) ShowReferrals(c *gin.Context) {
	user := currentUser(c)

	entries, err := h.walker.Walk(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListReferrals returns the display-resolved downline list.
func (h *Handlers) ListReferrals(c *gin.Context) {
	user := currentUser(c)

	items, err := h.presenter.List(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handlers) LastWithdrawals(c *gin.Context) {
	user := currentUser(c)

	rows, err := h.ledger.PendingWithdrawals(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handlers) AllWithdrawals(c *gin.Context) {
	user := currentUser(c)

	rows, err := h.ledger.AllNonWithdrawn(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handlers) UserBalance(c *gin.Context) {
	user := currentUser(c)

	balance, err := h.ledger.Balance(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *Handlers) UserBonus(c *gin.Context) {
	user := currentUser(c)

	bonus, err := h.ledger.Bonus(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, bonus)
}

// MonthlyEarnings keys ledger totals by month abbreviation for the
// earnings chart. MonthlyCommissions serves the same aggregation on its
// historical route.
func (h *Handlers) MonthlyEarnings(c *gin.Context) {
	user := currentUser(c)

	data, err := h.ledger.MonthlyEarnings(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handlers) UserOrders(c *gin.Context) {
	user := currentUser(c)

	list, err := h.orders.ByUser(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, orders.NewResourceCollection(list))
}

func (h *Handlers) MonthlyOrders(c *gin.Context) {
	user := currentUser(c)

	items, err := h.orders.MonthlyAmounts(c.Request.Context(), user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet.MonthlyTotals(items))
}

// BestMatrixData summarizes the caller's dashboard: plan, deepest
// downline level, highest approved tier and lifetime earnings.
func (h *Handlers) BestMatrixData(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	lastApproved, err := h.orders.LastApproved(ctx, user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	cyborg := uint(1)
	if lastApproved != nil {
		cyborg = lastApproved.CyborgID
	}

	entries, err := h.walker.Walk(ctx, user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	earning, err := h.ledger.TotalEarnings(ctx, user.ID)
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"profilePhoto": user.ProfilePicture,
		"userPlan":     user.Plan(),
		"userLevel":    referral.MaxLevel(entries),
		"Cyborg":       cyborg,
		"earning":      earning,
	})
}

func (h *Handlers) ReferralLinks(c *gin.Context) {
	user := currentUser(c)

	var links []models.ReferalLink
	err := h.db.WithContext(c.Request.Context()).
		Preload("Cyborg").
		Where("user_id = ? AND status = ?", user.ID, models.ReferalLinkStatusActive).
		Find(&links).Error
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *Handlers) Countries(c *gin.Context) {
	var prefixes []models.Prefix
	if err := h.db.WithContext(c.Request.Context()).Find(&prefixes).Error; err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, prefixes)
}

func (h *Handlers) FindUser(c *gin.Context) {
	var user models.User
	err := h.db.WithContext(c.Request.Context()).First(&user, "id = ?", c.Param("id")).Error
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

func (h *Handlers) Me(c *gin.Context) {
	user := currentUser(c)

	var full models.User
	err := h.db.WithContext(c.Request.Context()).Preload("Prefix").First(&full, user.ID).Error
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// ChangeData validates and forwards a profile update.
func (h *Handlers) ChangeData(c *gin.Context) {
	user := currentUser(c)

	var req ChangeDataRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.ValidationErrors(c, err)
		return
	}

	input := profile.ChangeDataInput{
		Name:     req.Name,
		LastName: req.LastName,
		UserName: req.UserName,
		Email:    req.Email,
		Phone:    req.Phone,
		PrefixID: req.PrefixID,
	}

	if fh, err := c.FormFile("profile_picture"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		defer f.Close()
		input.Picture = &profile.Upload{Filename: fh.Filename, Reader: f}
	}

	if err := h.profile.ChangeData(c.Request.Context(), user.ID, input); err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, "Profile Data updated")
}

func (h *Handlers) ChangePassword(c *gin.Context) {
	user := currentUser(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationErrors(c, err)
		return
	}
	if !strongPassword(req.NewPassword) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{
			"new_password": "Password needs upper and lower case letters, a number and a symbol",
		}, "status": true})
		return
	}

	if err := h.profile.ChangePassword(c.Request.Context(), user.ID, req.NewPassword); err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, "Password Updated")
}

func (h *Handlers) SendSecurityCode(c *gin.Context) {
	user := currentUser(c)

	if err := h.profile.SendSecurityCode(c.Request.Context(), user.ID); err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, "Code send succesfully")
}

func (h *Handlers) CheckCodeToChangeEmail(c *gin.Context) {
	user := currentUser(c)

	var req CheckCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationErrors(c, err)
		return
	}

	err := h.profile.VerifyCodeForEmailChange(c.Request.Context(), user.ID, req.CodeSecurity, req.Email, req.Password)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, "Authorized credentials")
}
