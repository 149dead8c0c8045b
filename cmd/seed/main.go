// Command seed loads a demo catalog: the default appliance categories plus
// a handful of products, for local development and screenshots.
package main

import (
	"os"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
	"github.com/myseringan/texnokross-bolt-sub000/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}); err != nil {
		logger.Errorw("db_open_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("db_migrate_failed", "error", err)
		os.Exit(1)
	}
	if err := models.InitDefaultAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Errorw("default_admin_init_failed", "error", err)
		os.Exit(1)
	}

	if err := seed(); err != nil {
		logger.Errorw("seed_failed", "error", err)
		os.Exit(1)
	}
	logger.Infow("seed_done")
}

type demoProduct struct {
	category string
	name     string
	nameRu   string
	price    int64
	specs    models.SpecList
}

func seed() error {
	categories := repository.NewCategoryRepository(models.DB)
	products := repository.NewProductRepository(models.DB)

	existing, err := categories.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Infow("seed_skipped", "reason", "categories already present")
		return nil
	}

	catIDs := map[string]string{}
	for _, cat := range []struct{ name, nameRu string }{
		{"Televizorlar", "Телевизоры"},
		{"Muzlatgichlar", "Холодильники"},
		{"Kir yuvish mashinalari", "Стиральные машины"},
		{"Konditsionerlar", "Кондиционеры"},
		{"Oshxona texnikasi", "Кухонная техника"},
	} {
		record := models.Category{
			ID:     models.NewCategoryID(),
			Name:   cat.name,
			NameRu: cat.nameRu,
			Slug:   service.Slugify(cat.name),
		}
		if err := categories.Create(&record); err != nil {
			return err
		}
		catIDs[cat.name] = record.ID
	}

	demo := []demoProduct{
		{"Televizorlar", "Samsung QLED 55\" televizor", "Телевизор Samsung QLED 55\"", 8900000,
			models.SpecList{{Key: "Diagonal", Value: "55\""}, {Key: "Ruxsat", Value: "4K UHD"}}},
		{"Televizorlar", "Artel UA43 televizor", "Телевизор Artel UA43", 3200000,
			models.SpecList{{Key: "Diagonal", Value: "43\""}}},
		{"Muzlatgichlar", "Artel HD 341 FN muzlatgich", "Холодильник Artel HD 341 FN", 4100000,
			models.SpecList{{Key: "Hajmi", Value: "270 l"}, {Key: "No Frost", Value: "Ha"}}},
		{"Muzlatgichlar", "LG GN-B222 muzlatgich", "Холодильник LG GN-B222", 5600000, nil},
		{"Kir yuvish mashinalari", "LG F2J3 kir yuvish mashinasi", "Стиральная машина LG F2J3", 4800000,
			models.SpecList{{Key: "Yuklash", Value: "7 kg"}}},
		{"Konditsionerlar", "Shivaki SSH-I127BE inverter", "Кондиционер Shivaki SSH-I127BE", 4200000,
			models.SpecList{{Key: "Quvvat", Value: "12000 BTU"}, {Key: "Inverter", Value: "Ha"}}},
		{"Oshxona texnikasi", "Artel gaz plitasi Apetito 50", "Газовая плита Artel Apetito 50", 2300000, nil},
		{"Oshxona texnikasi", "Midea mikroto'lqinli pech", "Микроволновая печь Midea", 1100000, nil},
	}
	for _, p := range demo {
		categoryID := catIDs[p.category]
		record := models.Product{
			ID:         models.NewProductID(),
			CategoryID: &categoryID,
			Name:       p.name,
			NameRu:     p.nameRu,
			Price:      models.NewMoneyFromInt(p.price),
			InStock:    true,
			Specs:      p.specs,
		}
		if err := products.Create(&record); err != nil {
			return err
		}
	}
	logger.Infow("seed_loaded", "categories", len(catIDs), "products", len(demo))
	return nil
}
