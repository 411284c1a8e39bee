// Package server wires the HTTP API.
package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/config"
)

// NewRouter builds the gin engine with all routes attached.
func NewRouter(cfg *config.Config, db *gorm.DB, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	api := r.Group("/api", AuthRequired(db, []byte(cfg.JWTSecret)))
	{
		api.GET("/referrals", h.ShowReferrals)
		api.GET("/referrals/list", h.ListReferrals)
		api.GET("/referral-links", h.ReferralLinks)

		api.GET("/withdrawals/last", h.LastWithdrawals)
		api.GET("/withdrawals", h.AllWithdrawals)
		api.GET("/balance", h.UserBalance)
		api.GET("/bonus", h.UserBonus)
		api.GET("/earnings/monthly", h.MonthlyEarnings)
		api.GET("/commissions/monthly", h.MonthlyEarnings)

		api.GET("/orders", h.UserOrders)
		api.GET("/orders/monthly", h.MonthlyOrders)
		api.GET("/matrix/best", h.BestMatrixData)

		api.GET("/countries", h.Countries)
		api.GET("/users/:id", h.FindUser)
		api.GET("/me", h.Me)

		api.PUT("/profile", h.ChangeData)
		api.PUT("/password", h.ChangePassword)
		api.POST("/security-code", h.SendSecurityCode)
		api.POST("/security-code/check", h.CheckCodeToChangeEmail)

		admin := api.Group("/admin", AdminRequired(), AdminIPAllowlist(cfg.AllowedAdminCIDRs))
		{
			admin.GET("/users", h.Users)
			admin.GET("/users/list", h.FilterUsersList)
			admin.GET("/users/download", h.UsersDownload)
			admin.GET("/users/:id/wallets", h.AuditUserWallets)
			admin.GET("/users/:id/profile", h.AuditUserProfile)
			admin.PUT("/users/:id", h.UpdateUser)

			admin.GET("/wallets", h.UsersWalletsList)
			admin.GET("/wallets/filter", h.FilteredUsersWalletsList)
			admin.GET("/withdrawals/filter", h.FilterWithdrawals)
		}
	}

	return r
}
