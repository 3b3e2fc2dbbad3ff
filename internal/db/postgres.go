package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vietanh2810/evote-api/internal/config"
	"github.com/vietanh2810/evote-api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		conf.Host, conf.User, conf.Password, conf.DB, conf.Port, conf.SSLMode, conf.TimeZone,
	)

	return OpenPostgresWithURL(dsn)
}

// OpenPostgresWithURL accepts either a URL or a key/value DSN.
func OpenPostgresWithURL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	zap.L().Info("connected to postgres")

	return db, nil
}

// GormConfig is shared by every dialector the app opens. Foreign keys are not created so
// deletes never cascade, and timestamps are always UTC.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
}
