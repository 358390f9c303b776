package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pulse-uk/culture-pulse/internal/config"
	"github.com/pulse-uk/culture-pulse/internal/models"
	"github.com/pulse-uk/culture-pulse/internal/sources"
)

func main() {
	fmt.Println("🔍 Culture Pulse - API Connectivity Test")
	fmt.Println("========================================")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Println("\n📡 Testing Data Sources...")
	fmt.Println(strings.Repeat("-", 40))

	collectors := []sources.Collector{
		sources.NewRedditCollector(cfg.RedditClientID, cfg.RedditClientSecret, cfg.RedditUserAgent,
			cfg.Subreddits, cfg.PostsPerCommunity, cfg.TopPostLimit),
		sources.NewYouTubeCollector(cfg.YouTubeAPIKey, cfg.VideoLimit),
		sources.NewGuardianCollector(cfg.GuardianAPIKey, cfg.NewsSections, cfg.TopPostLimit, cfg.PostsPerCommunity),
	}

	for _, collector := range collectors {
		testCollector(ctx, collector)
	}

	fmt.Println("\n✅ API connectivity test completed!")
	fmt.Println("\n💡 Next steps:")
	fmt.Println("   • Configure missing API keys in .env file")
	fmt.Println("   • Run full service with: make run")
	fmt.Println("   • Deploy to your preferred platform")
}

func testCollector(ctx context.Context, collector sources.Collector) {
	fmt.Printf("🔸 Testing %s... ", collector.GetName())

	if !collector.IsEnabled() {
		fmt.Printf("⚠️  DISABLED (missing API credentials)\n")
		return
	}

	snap := &models.Snapshot{Timestamp: time.Now()}
	if err := collector.Collect(ctx, snap); err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}

	fmt.Printf("✅ SUCCESS (%d records collected)\n", snap.RecordCount())

	if sample := sampleTitle(snap); sample != "" {
		fmt.Printf("   📝 Sample: \"%s\"\n", sample)
	}
}

func sampleTitle(snap *models.Snapshot) string {
	if snap.Social != nil {
		for _, posts := range snap.Social.ByCommunity {
			if len(posts) > 0 {
				return posts[0].Title
			}
		}
	}
	if snap.Video != nil && len(snap.Video.Items) > 0 {
		return snap.Video.Items[0].Title
	}
	if snap.News != nil {
		for _, articles := range snap.News.BySection {
			if len(articles) > 0 {
				return articles[0].Title
			}
		}
	}
	return ""
}
