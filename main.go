package main

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pagegrade/backend/config"
	"github.com/pagegrade/backend/fetch"
	"github.com/pagegrade/backend/keywords"
	"github.com/pagegrade/backend/logging"
	"github.com/pagegrade/backend/middleware"
	"github.com/pagegrade/backend/parser"
	"github.com/pagegrade/backend/readability"
	"github.com/pagegrade/backend/recommend"
	"github.com/pagegrade/backend/rules"
	"github.com/pagegrade/backend/store"
)

type server struct {
	cfg     *config.Config
	engine  *rules.Engine
	fetcher *fetch.Fetcher
	recs    *store.Store
	stats   *logging.Statistics
}

func loadEnv() {
	// Try .env.development first (local development), then regular .env
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func main() {
	loadEnv()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	recStore, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize recommendation store:", err)
	}

	srv := &server{
		cfg:    cfg,
		engine: rules.NewEngine(rules.NewRegistry()),
		fetcher: fetch.New(fetch.Options{
			Timeout:      cfg.FetchTimeout(),
			CacheTTL:     cfg.FetchCacheTTL(),
			MaxCacheSize: cfg.Fetch.MaxCacheSize,
		}),
		recs:  recStore,
		stats: logging.Initialize(cfg.DataDir),
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Rate, cfg.RateLimit.BucketSize)
	r := newRouter(srv, rateLimiter)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s\n", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Println("Server shutdown error:", err)
	}
	srv.fetcher.Close()
	if err := srv.recs.Shutdown(); err != nil {
		log.Println("Store shutdown error:", err)
	}
	if err := srv.stats.Save(); err != nil {
		log.Println("Statistics save error:", err)
	}
}

func newRouter(srv *server, rateLimiter *middleware.RateLimiter) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Recovery(srv.stats))
	r.Use(rateLimiter.RateLimit())
	r.Use(corsMiddleware())
	r.Use(middleware.Stats(srv.stats))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, srv.stats.GetStatistics())
		})

		api.POST("/analyze", srv.analyzeContent)
		api.POST("/fetch-analyze", srv.fetchAndAnalyze)

		api.POST("/readability/:service", srv.readabilityService)
		api.POST("/keywords/:service", srv.keywordService)

		api.GET("/recommendations/:analysisId", srv.getRecommendations)
		api.PATCH("/recommendations/:analysisId/:recId/status", srv.updateRecommendationStatus)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

type analyzeRequest struct {
	HTML        string   `json:"html"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Language    string   `json:"language"`
	URL         string   `json:"url"`
}

func (s *server) language(requested string) string {
	if requested == "" {
		return s.cfg.DefaultLanguage
	}
	return requested
}

// runAnalysis drives the full pipeline: rule evaluation, recommendation
// generation, and persistence of the recommendation set.
func (s *server) runAnalysis(c *gin.Context, in rules.Input) {
	result, err := s.engine.Analyze(c.Request.Context(), in)
	if err != nil {
		var verr *rules.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed: " + err.Error()})
		return
	}

	recSet := recommend.Generate(result, s.engine.Registry(), in.Language)

	analysisID := newAnalysisID(in.URL)
	if err := s.recs.SaveSet(analysisID, recSet.Recommendations); err != nil {
		log.Println("Failed to persist recommendations:", err)
	}

	s.stats.TrackAnalysis(result.Grade, in.Language)

	c.JSON(http.StatusOK, gin.H{
		"analysisId":              analysisID,
		"analysis":                result,
		"enhancedRecommendations": recSet,
	})
}

func newAnalysisID(url string) string {
	hash := md5.Sum([]byte(fmt.Sprintf("%s:%d", url, time.Now().UnixNano())))
	return hex.EncodeToString(hash[:8])
}

func (s *server) analyzeContent(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	s.runAnalysis(c, rules.Input{
		HTML:        req.HTML,
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		Language:    s.language(req.Language),
		URL:         req.URL,
	})
}

func (s *server) fetchAndAnalyze(c *gin.Context) {
	var req struct {
		URL      string   `json:"url" binding:"required,url"`
		Keywords []string `json:"keywords"`
		Language string   `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
		return
	}

	page, err := s.fetcher.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch URL: " + err.Error()})
		return
	}

	s.runAnalysis(c, rules.Input{
		HTML:     page.HTML,
		Title:    page.Title,
		Keywords: req.Keywords,
		Language: s.language(req.Language),
		URL:      page.FinalURL,
	})
}

func (s *server) readabilityService(c *gin.Context) {
	var req struct {
		Text     string `json:"text"`
		HTML     string `json:"html"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	lang := s.language(req.Language)

	switch c.Param("service") {
	case "assessments":
		c.JSON(http.StatusOK, gin.H{"assessments": seoAssessments(req.Text, req.HTML, lang)})
	case "overview":
		c.JSON(http.StatusOK, readability.GetOverview(req.Text, lang))
	case "structure":
		c.JSON(http.StatusOK, readability.GetStructure(req.Text, lang))
	case "levels":
		c.JSON(http.StatusOK, readability.GetReadingLevels(req.Text, lang))
	case "improvements":
		c.JSON(http.StatusOK, gin.H{"improvements": readability.GetImprovements(req.Text, lang)})
	case "guidance":
		c.JSON(http.StatusOK, readability.GetLanguageGuidance(lang))
	case "live-score":
		c.JSON(http.StatusOK, readability.GetLiveScore(req.Text, lang))
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown readability service"})
	}
}

// seoAssessments derives the secondary SEO scorings. When HTML is supplied
// the structural signals come from the parsed document; plain text degrades
// to paragraph splitting with no heading or list signals.
func seoAssessments(text, rawHTML, langCode string) []readability.Assessment {
	sig := readability.StructureSignals{}
	if rawHTML != "" {
		doc := parser.Parse(rawHTML)
		text = doc.Text
		for _, headings := range doc.Headings {
			sig.HeadingCount += len(headings)
		}
		sig.ParagraphCount = len(doc.Paragraphs)
		sig.HasLists = doc.ListCount > 0
	} else {
		sig.ParagraphCount = len(readability.SplitParagraphs(text))
	}

	lang := readability.ForCode(langCode)
	return readability.Assessments(text, readability.Analyze(text, lang), sig, lang)
}

func (s *server) keywordService(c *gin.Context) {
	var req struct {
		Text     string   `json:"text"`
		Keyword  string   `json:"keyword"`
		Keywords []string `json:"keywords"`
		Limit    int      `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	switch c.Param("service") {
	case "density":
		if req.Keyword != "" {
			c.JSON(http.StatusOK, keywords.Density(req.Text, req.Keyword))
			return
		}
		c.JSON(http.StatusOK, gin.H{"densities": keywords.AllDensities(req.Text, req.Keywords)})
	case "longtail":
		seeds := req.Keywords
		if req.Keyword != "" {
			seeds = append(seeds, req.Keyword)
		}
		c.JSON(http.StatusOK, gin.H{"phrases": keywords.LongTail(req.Text, seeds, req.Limit)})
	case "clusters":
		c.JSON(http.StatusOK, gin.H{"clusters": keywords.Clusters(req.Keywords)})
	case "lsi":
		seeds := req.Keywords
		if req.Keyword != "" {
			seeds = append(seeds, req.Keyword)
		}
		c.JSON(http.StatusOK, gin.H{"terms": keywords.LSI(req.Text, seeds, req.Limit)})
	case "difficulty":
		c.JSON(http.StatusOK, keywords.Difficulty(req.Keyword, req.Text))
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown keyword service"})
	}
}

func (s *server) getRecommendations(c *gin.Context) {
	rows, err := s.recs.Get(c.Param("analysisId"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": rows})
}

func (s *server) updateRecommendationStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status"})
		return
	}

	err := s.recs.UpdateStatus(c.Param("analysisId"), c.Param("recId"), req.Status)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"status": req.Status})
	}
}
