package localstore

import "github.com/myseringan/texnokross-bolt-sub000/internal/models"

// DefaultCategories is the built-in appliance category set shown before any
// admin has saved a local category list.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "c_default_1", Name: "Televizorlar", NameRu: "Телевизоры", Slug: "televizorlar"},
		{ID: "c_default_2", Name: "Muzlatgichlar", NameRu: "Холодильники", Slug: "muzlatgichlar"},
		{ID: "c_default_3", Name: "Kir yuvish mashinalari", NameRu: "Стиральные машины", Slug: "kir-yuvish-mashinalari"},
		{ID: "c_default_4", Name: "Konditsionerlar", NameRu: "Кондиционеры", Slug: "konditsionerlar"},
		{ID: "c_default_5", Name: "Oshxona texnikasi", NameRu: "Кухонная техника", Slug: "oshxona-texnikasi"},
	}
}
