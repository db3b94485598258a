package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/localnerve/jam-build-catalog/internal/config"
	"github.com/localnerve/jam-build-catalog/internal/database"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	pure := flag.Bool("pure", false, "use the pure Go sqlite driver")
	flag.Parse()

	cfg := &config.Config{DBType: "sqlite", DBDatabase: ":memory:"}
	if *pure {
		cfg.DBType = "sqlite-pure"
	}

	dialector, err := database.Dialector(cfg)
	if err != nil {
		log.Fatal(err)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		log.Fatal(err)
	}

	// Auto-migrate to see what GORM creates
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	// Get the schema
	type entry struct {
		Type string
		Name string
		SQL  string
	}
	var entries []entry
	db.Raw("SELECT type, name, sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY tbl_name, type DESC").Scan(&entries)

	for _, e := range entries {
		fmt.Printf("\n=== %s: %s ===\n", e.Type, e.Name)
		fmt.Println(e.SQL)
	}
}
