package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/qs3c/trip_go_server/config"
	"github.com/qs3c/trip_go_server/internal/database"
	"github.com/qs3c/trip_go_server/internal/pkg/oss"
	"github.com/qs3c/trip_go_server/internal/repository"
)

var (
	dryRun    = flag.Bool("dry-run", true, "Dry run mode, don't actually delete objects")
	olderThan = flag.Int("older-than", 48, "Only touch objects older than this many hours")
)

// 孤儿对象回收：签了名没上传、上传了没 commit 的 key 只存在于对象存储里，
// 数据库里没有对应的 storage_key。扫出 trips/ 前缀下足够老的对象，
// 和媒体表、附件表里落库的 key 做差集，剩下的就是可以删的。
func main() {
	flag.Parse()

	log.Println("🧹 Starting orphan storage cleanup...")
	log.Printf("Mode: dry-run=%v, older-than=%dh", *dryRun, *olderThan)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	client, err := oss.NewClient(&cfg.OSS)
	if err != nil {
		log.Fatalf("Failed to init oss client: %v", err)
	}

	// 1. 收集数据库里所有已落库的 key
	referenced := make(map[string]bool)

	mediaKeys, err := repository.NewMediaRepository(db).ListStorageKeys()
	if err != nil {
		log.Fatalf("Failed to list media keys: %v", err)
	}
	for _, k := range mediaKeys {
		referenced[k] = true
	}

	attachmentKeys, err := repository.NewAttachmentRepository(db).ListStorageKeys()
	if err != nil {
		log.Fatalf("Failed to list attachment keys: %v", err)
	}
	for _, k := range attachmentKeys {
		referenced[k] = true
	}

	log.Printf("Found %d referenced keys in database", len(referenced))

	// 2. 扫描对象存储里足够老的对象（新对象可能正在上传，不碰）
	cutoff := time.Now().Add(-time.Duration(*olderThan) * time.Hour)
	candidates, err := client.ListKeysOlderThan("trips/", cutoff)
	if err != nil {
		log.Fatalf("Failed to list objects: %v", err)
	}
	log.Printf("Found %d objects older than cutoff", len(candidates))

	// 3. 差集即孤儿
	deleted := 0
	failed := 0
	for _, key := range candidates {
		if referenced[key] {
			continue
		}

		log.Printf("  - %s", key)
		if *dryRun {
			deleted++
			continue
		}

		if err := client.Delete(key); err != nil {
			log.Printf("    ❌ Failed to delete: %v", err)
			failed++
			continue
		}
		deleted++
	}

	// 输出统计
	log.Println("\n" + strings.Repeat("=", 60))
	log.Println("📊 Cleanup Summary")
	log.Println(strings.Repeat("=", 60))
	log.Printf("Referenced keys: %d", len(referenced))
	log.Printf("Scanned objects: %d", len(candidates))
	log.Printf("Orphans deleted: %d", deleted)
	if failed > 0 {
		log.Printf("Failed deletes: %d", failed)
	}
	if *dryRun {
		log.Println("\n⚠️  DRY RUN MODE - No objects were actually deleted")
		log.Println("   Run with -dry-run=false to actually delete objects")
	} else {
		log.Println("\n✅ Cleanup completed!")
	}
	log.Println(strings.Repeat("=", 60))
}
