package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"scholar-site/charts"
	"scholar-site/config"
	"scholar-site/models"
	"scholar-site/providers/frankfurter"
	"scholar-site/services"
	"scholar-site/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	documentEventsCounter *prometheus.CounterVec
	chartRendersCounter   *prometheus.CounterVec
	contactCounter        prometheus.Counter
)

func init() {
	documentEventsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_events_total",
			Help: "Total number of tracked document events.",
		},
		[]string{"doc", "kind"},
	)
	chartRendersCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_renders_total",
			Help: "Total number of rendered SVG charts.",
		},
		[]string{"chart"},
	)
	contactCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of forwarded contact form submissions.",
		},
	)
	prometheus.MustRegister(documentEventsCounter, chartRendersCounter, contactCounter)
}

var contactClient = &http.Client{Timeout: 10 * time.Second}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Fixtures einmalig laden, danach nur noch lesen
	fixtures := storage.LoadFixtures(cfg.DataDir, logging)
	events := storage.NewEventStore(cfg.MetricsDir, logging)

	// Wechselkurs: Fallback sofort nutzbar, Aktualisierung asynchron
	rates := services.NewRateCache(cfg.FallbackRate, frankfurter.NewFetcher(cfg, logging), logging)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		rates.Refresh(ctx)
	}()

	searchService := services.NewSearchService(fixtures, logging)

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.Static("/static", cfg.StaticDir)

	// Setup Routes
	setupHomeRoutes(router, cfg, fixtures, events, rates)
	setupPublicationRoutes(router, cfg, fixtures)
	setupTalkRoutes(router, cfg, fixtures)
	setupFundingRoutes(router, fixtures, rates)
	setupSoftwareRoutes(router, fixtures)
	setupResearchRoutes(router, cfg, fixtures)
	setupActivityRoutes(router, events)
	setupChartRoutes(router, cfg, fixtures, rates)
	setupSearchRoutes(router, searchService)
	setupContactRoutes(router, cfg, logging)
	setupDocumentRoutes(router, cfg, events)

	// Setup Cron
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.RateRefreshSchedule, func() {
		logging.Info("Running scheduled exchange rate refresh...")
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		rates.Refresh(ctx)
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// queryInt liest einen optionalen numerischen Query-Parameter.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// writeSVG sendet ein gerendertes Chart; der Hover-Messwert geht als
// Header-Paar mit, damit der Client das Tooltip ohne zweiten Request hat.
func writeSVG(c *gin.Context, name, svg string, hovered *charts.HoverPoint) {
	if hovered != nil {
		c.Header("X-Hover-Label", hovered.Label)
		c.Header("X-Hover-Value", hovered.Value)
	}
	chartRendersCounter.WithLabelValues(name).Inc()
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
}

func setupHomeRoutes(router *gin.Engine, cfg *config.Config, fixtures *storage.Fixtures, events *storage.EventStore, rates *services.RateCache) {
	profile := func(c *gin.Context) {
		pubStats := services.SummarizePublications(fixtures.Publications, cfg.OwnerName)
		fundingTotals := services.SummarizeFunding(fixtures.Funding)
		featured, _ := services.SplitFeatured(fixtures.Publications)
		featured = services.SortPublications(featured, services.SortYearDesc)

		grand := rates.Convert(fundingTotals.TotalCNY, services.CurrencyUSD)
		c.JSON(http.StatusOK, gin.H{
			"owner":            cfg.OwnerName,
			"publications":     pubStats,
			"funding":          fundingTotals,
			"funding_display":  services.FormatMoney(&grand, services.CurrencyUSD),
			"featured":         featured,
			"research":         fixtures.ResearchAreas,
			"software_count":   len(fixtures.Software),
			"talk_count":       len(fixtures.Talks),
			"document_metrics": services.SummarizeActivity(events.All()),
		})
	}
	router.GET("/", profile)
	router.GET("/about", profile)
}

func setupPublicationRoutes(router *gin.Engine, cfg *config.Config, fixtures *storage.Fixtures) {
	rg := router.Group("/publications")

	// Gefilterte Sicht für Liste, BibTeX-Export und Charts
	filtered := func(c *gin.Context) []models.Publication {
		var preds []func(models.Publication) bool
		if year := queryInt(c, "year", 0); year != 0 {
			preds = append(preds, func(p models.Publication) bool { return p.Year == year })
		}
		if status := c.Query("status"); status != "" {
			preds = append(preds, func(p models.Publication) bool { return string(p.Status()) == status })
		}
		if tag := c.Query("tag"); tag != "" {
			tagSet := services.TagSet([]string{tag})
			preds = append(preds, func(p models.Publication) bool { return p.HasAnyTag(tagSet) })
		}
		return services.Filter(fixtures.Publications, c.Query("q"), models.Publication.Haystack, preds...)
	}

	rg.GET("", func(c *gin.Context) {
		matched := filtered(c)
		sorted := services.SortPublications(matched, services.PubSort(c.DefaultQuery("sort", string(services.SortYearDesc))))

		// Hervorgehobene Einträge stehen über jeder Seite; paginiert wird
		// nur der Rest.
		featured, rest := services.SplitFeatured(sorted)
		page := services.Paginate(len(rest), cfg.PublicationPageSize, queryInt(c, "page", 1))
		rest = rest[page.Start:page.End]

		c.JSON(http.StatusOK, gin.H{
			"featured": featured,
			"items":    rest,
			"page":     page,
			"years":    services.PublicationYears(fixtures.Publications),
			"statuses": models.AllStatuses,
		})
	})

	rg.GET("/bibtex", func(c *gin.Context) {
		sorted := services.SortPublications(filtered(c), services.SortYearDesc)
		c.Data(http.StatusOK, "application/x-bibtex; charset=utf-8",
			[]byte(services.GenerateBibtex(sorted)))
	})

	rg.GET("/chart", func(c *gin.Context) {
		matched := filtered(c)
		years := services.PublicationYears(fixtures.Publications)
		var buckets []services.YearBucket
		if len(years) > 0 {
			from, to := years[len(years)-1], years[0]
			buckets = services.CountByYear(matched, func(p models.Publication) (int, bool) {
				return p.Year, p.Year != 0
			}, from, to)
		}
		chart := charts.BuildYearBarChart(buckets, charts.YearBarOptions{
			Series:    charts.SeriesPublications,
			Fill:      charts.ColorPublications,
			HoverYear: queryInt(c, "hover", 0),
		})
		writeSVG(c, "publications_year", chart.Render(), chart.Hovered)
	})

	rg.GET("/status.svg", func(c *gin.Context) {
		var values []charts.DonutValue
		for _, b := range services.CountByStatus(filtered(c)) {
			values = append(values, charts.DonutValue{Label: string(b.Status), Value: float64(b.Count)})
		}
		chart := charts.BuildDonutChart(values, charts.DonutOptions{
			Title:      "Publications by status",
			HoverLabel: c.Query("hover"),
		})
		writeSVG(c, "publications_status", chart.Render(), chart.Hovered)
	})
}

func setupTalkRoutes(router *gin.Engine, cfg *config.Config, fixtures *storage.Fixtures) {
	router.GET("/talks", func(c *gin.Context) {
		var preds []func(models.Talk) bool
		if talkType := c.Query("type"); talkType != "" {
			preds = append(preds, func(t models.Talk) bool { return string(t.Type) == talkType })
		}
		if year := queryInt(c, "year", 0); year != 0 {
			preds = append(preds, func(t models.Talk) bool {
				y, ok := t.Year()
				return ok && y == year
			})
		}
		matched := services.SortTalks(services.Filter(fixtures.Talks, c.Query("q"), models.Talk.Haystack, preds...))
		page := services.Paginate(len(matched), cfg.TalkPageSize, queryInt(c, "page", 1))

		// Seiteninhalt nach Jahr gruppieren, neueste Gruppe zuerst
		type yearGroup struct {
			Year  int           `json:"year"`
			Talks []models.Talk `json:"talks"`
		}
		var groups []yearGroup
		for _, t := range matched[page.Start:page.End] {
			y, _ := t.Year()
			if len(groups) == 0 || groups[len(groups)-1].Year != y {
				groups = append(groups, yearGroup{Year: y})
			}
			groups[len(groups)-1].Talks = append(groups[len(groups)-1].Talks, t)
		}

		c.JSON(http.StatusOK, gin.H{
			"groups": groups,
			"page":   page,
			"types":  models.TalkTypes,
		})
	})
}

func setupFundingRoutes(router *gin.Engine, fixtures *storage.Fixtures, rates *services.RateCache) {
	filtered := func(c *gin.Context) []models.Funding {
		var preds []func(models.Funding) bool
		if fundingType := c.Query("type"); fundingType != "" {
			preds = append(preds, func(f models.Funding) bool { return string(f.Type) == fundingType })
		}
		if year := queryInt(c, "year", 0); year != 0 {
			preds = append(preds, func(f models.Funding) bool {
				return f.StartYear() <= year && year <= f.EndYear()
			})
		}
		return services.Filter(fixtures.Funding, c.Query("q"), models.Funding.Haystack, preds...)
	}

	router.GET("/funding", func(c *gin.Context) {
		cur := services.ParseCurrency(c.DefaultQuery("currency", string(services.CurrencyCNY)))
		matched := services.SortFundingByStart(filtered(c))
		totals := services.SummarizeFunding(matched)

		type fundingView struct {
			models.Funding
			AmountDisplay string `json:"amount_display"`
		}
		items := make([]fundingView, 0, len(matched))
		for _, f := range matched {
			var display *float64
			if f.AmountCNY != nil {
				converted := rates.Convert(f.Amount(), cur)
				display = &converted
			}
			items = append(items, fundingView{
				Funding:       f,
				AmountDisplay: services.FormatMoney(display, cur),
			})
		}

		grand := rates.Convert(totals.TotalCNY, cur)
		grants := rates.Convert(totals.GrantsCNY, cur)
		contracts := rates.Convert(totals.ContractsCNY, cur)
		c.JSON(http.StatusOK, gin.H{
			"items":    items,
			"currency": cur,
			"years":    services.FundingYears(fixtures.Funding),
			"totals": gin.H{
				"grand":          services.FormatMoney(&grand, cur),
				"grants":         services.FormatMoney(&grants, cur),
				"contracts":      services.FormatMoney(&contracts, cur),
				"grant_count":    totals.GrantCount,
				"contract_count": totals.ContractCount,
			},
		})
	})

	router.GET("/funding/timeline.svg", func(c *gin.Context) {
		cur := services.ParseCurrency(c.DefaultQuery("currency", string(services.CurrencyCNY)))
		matched := services.SortFundingByStart(filtered(c))

		items := make([]charts.TimelineItem, 0, len(matched))
		for _, f := range matched {
			var display *float64
			if f.AmountCNY != nil {
				converted := rates.Convert(f.Amount(), cur)
				display = &converted
			}
			items = append(items, charts.TimelineItem{
				Title:  f.Title,
				Start:  periodFraction(f.PeriodStart),
				End:    periodFraction(f.PeriodEnd),
				Amount: services.FormatMoney(display, cur),
				Type:   string(f.Type),
			})
		}
		chart := charts.BuildFundingTimeline(items, charts.TimelineOptions{
			HoverIndex: queryInt(c, "hover", -1),
		})
		writeSVG(c, "funding_timeline", chart.Render(), chart.Hovered)
	})

	router.GET("/funding/types.svg", func(c *gin.Context) {
		totals := services.SummarizeFunding(filtered(c))
		chart := charts.BuildDonutChart([]charts.DonutValue{
			{Label: string(models.FundingGrant), Value: float64(totals.GrantCount)},
			{Label: string(models.FundingContract), Value: float64(totals.ContractCount)},
		}, charts.DonutOptions{
			Title:      "Funding by type",
			HoverLabel: c.Query("hover"),
		})
		writeSVG(c, "funding_types", chart.Render(), chart.Hovered)
	})
}

func setupSoftwareRoutes(router *gin.Engine, fixtures *storage.Fixtures) {
	router.GET("/software", func(c *gin.Context) {
		matched := services.Filter(fixtures.Software, c.Query("q"), models.Software.Haystack)
		c.JSON(http.StatusOK, gin.H{"items": matched, "total": len(matched)})
	})
}

func setupResearchRoutes(router *gin.Engine, cfg *config.Config, fixtures *storage.Fixtures) {
	rg := router.Group("/research")

	rg.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"areas": fixtures.ResearchAreas})
	})

	rg.GET("/:slug", func(c *gin.Context) {
		slug := c.Param("slug")
		for _, area := range fixtures.ResearchAreas {
			if area.Slug != slug {
				continue
			}
			related := services.RelatedPublications(
				fixtures.Publications, area.Title, area.Tags, cfg.RelatedPubsMax)
			c.JSON(http.StatusOK, gin.H{"area": area, "related_publications": related})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "research area not found"})
	})
}

func setupActivityRoutes(router *gin.Engine, events *storage.EventStore) {
	rg := router.Group("/activity")

	rg.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"documents": services.SummarizeActivity(events.All())})
	})

	rg.POST("/:doc/:kind", func(c *gin.Context) {
		doc, ok := models.ValidDocKey(c.Param("doc"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown document"})
			return
		}
		kind, ok := models.ValidEventKind(c.Param("kind"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown event kind"})
			return
		}
		events.Append(doc, kind, time.Now())
		documentEventsCounter.WithLabelValues(string(doc), string(kind)).Inc()
		c.Status(http.StatusNoContent)
	})

	rg.GET("/calendar.svg", func(c *gin.Context) {
		days, maxTotal := services.CalendarActivity(events.All(), time.Now())
		chart := charts.BuildCalendarHeatmap(days, maxTotal, charts.HeatmapOptions{
			HoverDate: c.Query("hover"),
		})
		writeSVG(c, "activity_calendar", chart.Render(), chart.Hovered)
	})

	rg.GET("/monthly.svg", func(c *gin.Context) {
		months := services.MonthlyActivity(events.All(), time.Now())
		chart := charts.BuildMonthlyChart(months, charts.MonthlyOptions{
			HoverKey: c.Query("hover"),
		})
		writeSVG(c, "activity_monthly", chart.Render(), chart.Hovered)
	})
}

func setupChartRoutes(router *gin.Engine, cfg *config.Config, fixtures *storage.Fixtures, rates *services.RateCache) {
	router.GET("/charts/activity.svg", func(c *gin.Context) {
		now := time.Now()
		from := queryInt(c, "from", cfg.ActivityStartYear)
		to := now.Year()
		if from > to {
			from = to
		}
		cur := services.ParseCurrency(c.DefaultQuery("currency", string(services.CurrencyCNY)))
		rate := rates.Rate()

		pubs := services.CountByYear(fixtures.Publications, func(p models.Publication) (int, bool) {
			return p.Year, p.Year != 0
		}, from, to)
		talks := services.CountByYear(fixtures.Talks, models.Talk.Year, from, to)
		funding := services.SumByYear(fixtures.Funding, func(f models.Funding) (int, bool) {
			y := f.StartYear()
			return y, y != 0
		}, func(f models.Funding) float64 {
			return services.ConvertFromCNY(f.Amount(), cur, rate)
		}, from, to)

		chart := charts.BuildActivityChart(pubs, talks, funding, charts.ActivityOptions{
			Mini:        c.Query("variant") == "mini",
			Currency:    cur,
			HoverYear:   queryInt(c, "hover", 0),
			HoverSeries: c.Query("series"),
		})
		writeSVG(c, "research_activity", chart.Render(), chart.Hovered)
	})
}

func setupSearchRoutes(router *gin.Engine, searchService *services.SearchService) {
	router.GET("/search", func(c *gin.Context) {
		c.JSON(http.StatusOK, searchService.Search(c.Query("q")))
	})
}

func setupContactRoutes(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.POST("/contact", func(c *gin.Context) {
		type contactRequest struct {
			Name    string `json:"name" binding:"required"`
			Email   string `json:"email" binding:"required,email"`
			Subject string `json:"subject"`
			Message string `json:"message" binding:"required"`
		}
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		id := uuid.NewString()
		if cfg.ContactFormURL != "" {
			body, _ := json.Marshal(req)
			resp, err := contactClient.Post(cfg.ContactFormURL, "application/json", bytes.NewReader(body))
			if err != nil {
				log.Error("Contact form forward failed", zap.String("submission_id", id), zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "message could not be delivered"})
				return
			}
			resp.Body.Close()
			if resp.StatusCode >= 300 {
				log.Error("Contact form backend rejected submission",
					zap.String("submission_id", id),
					zap.Int("status", resp.StatusCode))
				c.JSON(http.StatusBadGateway, gin.H{"error": "message could not be delivered"})
				return
			}
		}

		contactCounter.Inc()
		log.Info("Contact submission accepted", zap.String("submission_id", id))
		c.JSON(http.StatusAccepted, gin.H{"id": id, "status": "accepted"})
	})
}

func setupDocumentRoutes(router *gin.Engine, cfg *config.Config, events *storage.EventStore) {
	docFiles := map[models.DocKey]string{
		models.DocCV:      "cv.pdf",
		models.DocCatalog: "projects-catalog.pdf",
	}

	router.GET("/cv", func(c *gin.Context) {
		totals := services.SummarizeActivity(events.All())
		docs := make([]gin.H, 0, len(models.DocKeys))
		for _, key := range models.DocKeys {
			docs = append(docs, gin.H{
				"doc":     key,
				"href":    "/static/" + docFiles[key],
				"metrics": totals[key],
			})
		}
		c.JSON(http.StatusOK, gin.H{"documents": docs})
	})
}

// periodFraction maps "YYYY-MM" onto a fractional year for the timeline axis.
func periodFraction(period string) float64 {
	if len(period) < 4 {
		return 0
	}
	year, err := strconv.Atoi(period[:4])
	if err != nil {
		return 0
	}
	month := 1
	if len(period) >= 7 {
		if m, err := strconv.Atoi(period[5:7]); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	return float64(year) + float64(month-1)/12
}
