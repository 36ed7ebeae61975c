package migrate

import (
	"errors"

	"Pulse/config"
	"Pulse/pkg/log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Up 执行 migrations 目录下的全部迁移
func Up(conf *config.Config, sourceURL string) error {
	m, err := migrate.New(sourceURL, "mysql://"+conf.MySQL.Dsn())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.L.Info("migrations already up to date")
			return nil
		}
		return err
	}
	log.L.Info("migrations applied", zap.String("source", sourceURL))
	return nil
}
