package routes

import (
	"contract_monthly_claim/internal/adapter/http/handlers"
	"contract_monthly_claim/internal/adapter/http/middleware"
	"contract_monthly_claim/internal/config"
	"contract_monthly_claim/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims  = "/claims"
	PathReports = "/reports"
)

// Role checks here only gate routes; the use cases re-check every mutation.
func addClaimRoutes(rg *gin.RouterGroup, env config.Env, claimHandler *handlers.ClaimHandler) {
	claims := rg.Group(PathClaims, middleware.Authenticate([]byte(env.JWTSecret), env.DevBypassAuth))
	{
		claims.GET("", claimHandler.ListClaims)
		claims.POST("", claimHandler.SubmitClaim)
		claims.GET("/prefill", middleware.RequireRoles(entities.SubmitterRoles...), claimHandler.PrefillSubmission)
		claims.GET("/mine", middleware.RequireRoles(entities.SubmitterRoles...), claimHandler.ListMyClaims)
		claims.GET("/pending", middleware.RequireRoles(entities.ApproverRoles...), claimHandler.ListPendingClaims)
		claims.GET("/approved", middleware.RequireRoles(entities.ReportRoles...), claimHandler.ListApprovedClaims)

		claims.GET("/:id", claimHandler.GetClaim)
		claims.PUT("/:id", claimHandler.UpdateClaim)
		claims.DELETE("/:id", claimHandler.DeleteClaim)
		claims.PATCH("/:id/approve", claimHandler.ApproveClaim)
		claims.PATCH("/:id/reject", claimHandler.RejectClaim)
		claims.GET("/:id/document", claimHandler.DownloadDocument)
	}
}

func addReportRoutes(rg *gin.RouterGroup, env config.Env, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports,
		middleware.Authenticate([]byte(env.JWTSecret), env.DevBypassAuth),
		middleware.RequireRoles(entities.ReportRoles...),
	)
	reports.GET("/payments", reportHandler.GetPaymentReport)
}
