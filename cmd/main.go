package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"lekded/internal/config"
	"lekded/internal/handlers"
	"lekded/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	defer logger.Init("lekded", cfg.Verbose, false, os.Stdout).Close()

	// A single seedable source feeds every random draw so the whole
	// engine can be reproduced by setting RAND_SEED.
	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Separate sources per service: rand.Rand is mutex-guarded inside
	// each service, not shareable across them.
	tarotRNG := rand.New(rand.NewSource(seed))
	luckyRNG := rand.New(rand.NewSource(seed + 1))

	drawClient := services.NewDrawClient(cfg.DrawAPIBaseURL, cfg.DrawAPITimeout)
	drawCache := services.NewDrawCache(drawClient, cfg.DrawCacheTTL)

	httpHandler := handlers.NewHTTPHandler(
		services.NewNumerologyService(),
		services.NewDreamService(),
		services.NewTarotService(tarotRNG),
		services.NewLuckyService(luckyRNG),
		services.NewLotteryService(),
		drawCache,
	)

	r := gin.Default()
	httpHandler.RegisterRoutes(r)

	logger.Infof("Server starting on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
