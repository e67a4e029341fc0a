package persistence

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
)

//go:embed seed/*.json
var seedFS embed.FS

// Dataset holds the static records every store is seeded from. It is read
// once at startup; nothing is ever written back.
type Dataset struct {
	Brands   []domain.Brand
	Products []domain.Product
	Users    []domain.User
}

// LoadDataset reads brands, products and users from dir. An empty dir selects
// the embedded seed files.
func LoadDataset(dir string, logger *zap.Logger) (*Dataset, error) {
	var ds Dataset
	if err := loadJSON(dir, "brands.json", &ds.Brands); err != nil {
		return nil, err
	}
	if err := loadJSON(dir, "products.json", &ds.Products); err != nil {
		return nil, err
	}
	if err := loadJSON(dir, "users.json", &ds.Users); err != nil {
		return nil, err
	}

	logger.Info("dataset loaded",
		zap.Int("brands", len(ds.Brands)),
		zap.Int("products", len(ds.Products)),
		zap.Int("users", len(ds.Users)),
	)
	return &ds, nil
}

func loadJSON(dir, name string, out any) error {
	var (
		data []byte
		err  error
	)
	if dir != "" {
		data, err = os.ReadFile(filepath.Join(dir, name))
	} else {
		data, err = seedFS.ReadFile("seed/" + name)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
