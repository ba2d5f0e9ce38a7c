package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/qwhomes/proposal-service/internal/adapter/http/handlers"
)

const (
	PathProposals = "/proposals"
	PathProducts  = "/products"
)

func addProposalRoutes(rg *gin.RouterGroup, h *handlers.ProposalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", h.CreateProposal)
		proposals.GET("", h.ListProposals)
		proposals.GET("/metadata", h.GetProposalMetadata)
		proposals.GET("/export/excel", h.ExportProposalRegister)
		proposals.GET("/:id", h.GetProposal)
		proposals.PUT("/:id", h.UpdateProposal)
		proposals.DELETE("/:id", h.DeleteProposal)
		proposals.POST("/:id/finalize", h.FinalizeProposal)
		proposals.POST("/:id/approve", h.ApproveProposal)
		proposals.GET("/:id/export/pdf", h.ExportProposalPDF)
		proposals.GET("/:id/export/excel", h.ExportProposalExcel)
	}
}

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
	}
}
