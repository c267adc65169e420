package api

import (
	"bhasharakshak/preservation-app/internal/config"
	"bhasharakshak/preservation-app/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the router. Admin PIN enforcement
// lives here: verification and deletion both sit behind the PIN middleware.
func SetupRoutes(
	router *gin.Engine,
	cfg config.Config,
	assetService service.AssetService,
	curationService service.CurationService,
	collectionService service.CollectionService,
	heritageService service.HeritageService,
) {
	uploadHandler := NewUploadHandler(assetService, cfg.Server.BaseURL)
	searchHandler := NewSearchHandler(curationService, cfg.App.AdminPin)
	translationHandler := NewTranslationHandler(curationService)
	collectionHandler := NewCollectionHandler(collectionService)
	heritageHandler := NewHeritageHandler(heritageService, cfg.Server.BaseURL)

	router.Use(CORSMiddleware(cfg.App.CORSOrigins))

	adminOnly := AdminPinMiddleware(cfg.App.AdminPin)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		preservation := apiV1.Group("/preservation")
		{
			preservation.POST("/upload", uploadHandler.UploadAudio)
			preservation.GET("/files/:id", uploadHandler.GetFile)
		}

		apiV1.GET("/search", searchHandler.Search)
		apiV1.GET("/tts", searchHandler.TTS)
		apiV1.GET("/stats", searchHandler.Stats)
		apiV1.GET("/map-stats", searchHandler.MapStats)

		translate := apiV1.Group("/translate")
		{
			translate.GET("/pending", translationHandler.Pending)
			translate.PATCH("/:assetId", adminOnly, translationHandler.SaveTranslation)
			translate.DELETE("/:assetId", adminOnly, translationHandler.Delete)
			translate.POST("/auto/:assetId", translationHandler.AutoTranslate)
			translate.POST("/tts", translationHandler.TTS)
		}

		collections := apiV1.Group("/my-collections")
		{
			collections.GET("", collectionHandler.List)
			collections.GET("/count", collectionHandler.Count)
			collections.GET("/:id", collectionHandler.Get)
			collections.DELETE("/:id", collectionHandler.Delete)
			collections.PATCH("/:id/make-public", collectionHandler.MakePublic)
		}

		heritage := apiV1.Group("/visual-heritage")
		{
			heritage.POST("/analyze", heritageHandler.Analyze)
			heritage.POST("/upload", heritageHandler.Upload)
			heritage.GET("", heritageHandler.ListAll)
			heritage.GET("/approved", heritageHandler.ListApproved)
		}
	}
}
