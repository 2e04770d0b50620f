package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authclient/internal/client/config"
	"github.com/dmitrijs2005/authclient/internal/client/repositories/kv"
	"github.com/dmitrijs2005/authclient/internal/filex"
)

// openRepository returns the key-value backend selected by c.Storage.
func openRepository(ctx context.Context, c *config.Config) (kv.Repository, error) {
	switch c.Storage {
	case config.StorageSQLite:
		path, err := filex.ResolveDataFile(c.DataDir, c.SQLiteFile)
		if err != nil {
			return nil, err
		}
		db, err := kv.OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		return kv.NewSQLiteRepository(db), nil

	case config.StorageRedis:
		rdb, err := kv.NewRedisClient(ctx, c.RedisAddr, c.RedisPassword)
		if err != nil {
			return nil, err
		}
		return kv.NewRedisRepository(rdb, c.RedisPrefix), nil

	case config.StorageMemory:
		return kv.NewMemoryRepository(), nil

	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}
}
