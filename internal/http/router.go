package http

import (
	"github.com/gin-gonic/gin"

	"github.com/chotudairy/sales-api/internal/config"
	"github.com/chotudairy/sales-api/internal/http/controller"
	"github.com/chotudairy/sales-api/internal/http/middleware"
)

// InitRouter wires the dashboard API routes onto the gin engine.
func InitRouter(conf *config.Config, server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController, salesCtr *controller.SalesController, reportCtr *controller.ReportController) *gin.Engine {
	// Recovery first so panics in later middleware are caught too.
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS(conf.CORSAllowedOrigins))
	server.Use(middleware.RequestLogger())

	server.GET("/", ctr.Home)
	server.GET("/ping", ctr.Ping)

	// Product endpoints
	products := server.Group("/products")
	{
		products.POST("", productCtr.CreateProduct)
		products.GET("", productCtr.ListProducts)
		products.DELETE("/:id", productCtr.DeleteProduct)
	}

	// Sales endpoints
	sales := server.Group("/sales")
	{
		sales.POST("", salesCtr.CreateSale)
		sales.GET("", salesCtr.ListSales)
		sales.GET("/by-date-range", salesCtr.ListSalesByDateRange)
		sales.GET("/by-year", salesCtr.ListSalesByYear)
		sales.GET("/summary", reportCtr.Summary)
		sales.GET("/top-products", reportCtr.TopProducts)

		graph := sales.Group("/graph")
		{
			graph.GET("/weekly", reportCtr.WeeklySales)
			graph.GET("/monthly", reportCtr.MonthlySales)
			graph.GET("/yearly", reportCtr.YearlySales)
		}
	}

	return server
}
