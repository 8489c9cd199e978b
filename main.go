package main

import (
	"flag"

	"github.com/sinaridesa/sinari-api/api"
	"github.com/sinaridesa/sinari-api/common/config"
	"github.com/sinaridesa/sinari-api/common/gorm"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isSeed := flag.Bool("Seed", false, "Upsert the bootstrap admin user")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()

	config.LoadConfig()

	db := gorm.InitGorm()

	if *isPushDB || *isSeed {
		if *isPushDB {
			gorm.PushDB(db)
		}
		if *isSeed {
			gorm.Seed(db)
		}
		if !*isRunAfter {
			return
		}
	}

	api.InitFiber(db)
}
