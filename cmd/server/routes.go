package main

import (
	"github.com/gin-gonic/gin"
	"justice-airdrop.backend/internal/interfaces/http/handlers"
	"justice-airdrop.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	taskHandler         *handlers.TaskHandler
	reviewHandler       *handlers.ReviewHandler
	walletHandler       *handlers.WalletHandler
	referralHandler     *handlers.ReferralHandler
	notificationHandler *handlers.NotificationHandler
	statsHandler        *handlers.StatsHandler
	adminHandler        *handlers.AdminHandler
	mediaHandler        *handlers.MediaHandler
	identity            gin.HandlerFunc
	idempotency         gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	v1.Use(d.identity)

	verified := middleware.RequireVerifiedUser()
	moderator := middleware.RequireModerator()
	owner := middleware.RequireOwner()
	{
		// Onboarding (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/start", d.authHandler.Start)
			auth.POST("/verify", d.authHandler.Verify)
			auth.GET("/me", verified, d.authHandler.Me)
		}

		tasks := v1.Group("/tasks", verified)
		{
			tasks.GET("/list", d.taskHandler.ListTasks)
			tasks.POST("/submit", d.idempotency, d.taskHandler.Submit)
			tasks.GET("/my_submissions", d.taskHandler.MySubmissions)
		}

		wallet := v1.Group("/wallet", verified)
		{
			wallet.GET("/info", d.walletHandler.Info)
			wallet.GET("/transactions", d.walletHandler.Transactions)
			wallet.POST("/set", d.walletHandler.SetWallet)
			wallet.POST("/request", d.idempotency, d.walletHandler.RequestWithdrawal)
			wallet.POST("/presale", d.walletHandler.Presale)
		}

		referrals := v1.Group("/referrals")
		{
			referrals.GET("", verified, d.referralHandler.Stats)
			referrals.GET("/rank", verified, d.referralHandler.Rank)
			referrals.POST("/generate", verified, d.referralHandler.Generate)
			referrals.GET("/leaderboard", d.referralHandler.Leaderboard)
			referrals.POST("/register", d.idempotency, d.referralHandler.Register)
		}

		notify := v1.Group("/notify")
		{
			notify.GET("/me", verified, d.notificationHandler.Inbox)
			notify.GET("/me/count", verified, d.notificationHandler.UnreadCount)
			notify.POST("/me/read", verified, d.notificationHandler.MarkAllRead)
			notify.POST("/read_one/:id", verified, d.notificationHandler.MarkRead)
			notify.POST("/user", moderator, d.notificationHandler.NotifyUser)
			notify.POST("/group", moderator, d.notificationHandler.NotifyGroup)
		}

		media := v1.Group("/media")
		{
			media.GET("/logo", d.mediaHandler.Logo)
			media.GET("/video", d.mediaHandler.Video)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/stats", moderator, d.statsHandler.Stats)
			admin.GET("/stats/summary", middleware.RequireVerifiedUserOrModerator(), d.statsHandler.Summary)
			admin.GET("/stats/series", middleware.RequireVerifiedUserOrModerator(), d.statsHandler.Series)

			admin.POST("/approve_submission", moderator, d.reviewHandler.Approve)
			admin.POST("/reject_submission", moderator, d.reviewHandler.Reject)
			admin.POST("/approve_all", moderator, d.reviewHandler.ApproveAll)
			admin.POST("/reject_all", moderator, d.reviewHandler.RejectAll)
			admin.POST("/callback", moderator, d.reviewHandler.Callback)
			admin.GET("/submissions", moderator, d.reviewHandler.ListSubmissions)

			admin.GET("/withdrawals", moderator, d.walletHandler.ListWithdrawals)
			admin.POST("/withdrawals/:id/approve", moderator, d.walletHandler.ApproveWithdrawal)
			admin.POST("/withdrawals/:id/reject", moderator, d.walletHandler.RejectWithdrawal)

			admin.POST("/add_balance", owner, d.walletHandler.AddBalance)
			admin.POST("/open_withdrawals", owner, d.walletHandler.OpenWithdrawals)
			admin.POST("/close_withdrawals", owner, d.walletHandler.CloseWithdrawals)
			admin.POST("/add_task", owner, d.taskHandler.AddTask)
			admin.POST("/upload_video", owner, d.mediaHandler.UploadVideo)

			admin.POST("/add_admin", owner, d.adminHandler.AddAdmin)
			admin.POST("/remove_admin", owner, d.adminHandler.RemoveAdmin)
			admin.POST("/set_commands", owner, d.adminHandler.SetCommands)
			admin.POST("/ban", owner, d.adminHandler.Ban)
			admin.POST("/unban", owner, d.adminHandler.Unban)
			admin.GET("/admins", owner, d.adminHandler.ListAdmins)
		}
	}
}
