package data

import (
	"github.com/achantasri/JanAwaaz/internal/logging"
	"github.com/achantasri/JanAwaaz/internal/types"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MustMySQL(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logging.Log.Fatalf("mysql: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Topic{},
		&types.Vote{},
		&types.VoteCount{},
		&types.Admin{},
		&types.Setting{},
	); err != nil {
		logging.Log.Fatalf("mysql migrate: %v", err)
	}
	return db
}
