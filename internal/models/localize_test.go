package models

import (
	"testing"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
)

func TestProductLocalizedFieldsFallBackToPrimary(t *testing.T) {
	translated := Product{
		Name:          "Muzlatgich",
		NameRu:        "Холодильник",
		Description:   "Ikki kamerali",
		DescriptionRu: "Двухкамерный",
		Specs:         SpecList{{Key: "Hajmi", Value: "300 l"}},
		SpecsRu:       SpecList{{Key: "Объём", Value: "300 л"}},
	}
	if got := translated.LocalizedName(constants.LocaleRu); got != "Холодильник" {
		t.Fatalf("ru name: got %q", got)
	}
	if got := translated.LocalizedDescription(constants.LocaleRu); got != "Двухкамерный" {
		t.Fatalf("ru description: got %q", got)
	}
	if got := translated.LocalizedSpecs(constants.LocaleRu); len(got) != 1 || got[0].Key != "Объём" {
		t.Fatalf("ru specs: got %+v", got)
	}

	untranslated := Product{
		Name:        "Changyutgich",
		NameRu:      "   ",
		Description: "Simsiz",
		Specs:       SpecList{{Key: "Quvvat", Value: "150 W"}},
	}
	if got := untranslated.LocalizedName(constants.LocaleRu); got != "Changyutgich" {
		t.Fatalf("missing ru name must fall back, got %q", got)
	}
	if got := untranslated.LocalizedDescription(constants.LocaleRu); got != "Simsiz" {
		t.Fatalf("missing ru description must fall back, got %q", got)
	}
	if got := untranslated.LocalizedSpecs(constants.LocaleRu); len(got) != 1 || got[0].Key != "Quvvat" {
		t.Fatalf("missing ru specs must fall back, got %+v", got)
	}

	if got := translated.LocalizedName(constants.LocaleUz); got != "Muzlatgich" {
		t.Fatalf("uz locale must keep the primary name, got %q", got)
	}
}

func TestCategoryLocalizedNameFallsBackToPrimary(t *testing.T) {
	category := Category{Name: "Televizorlar", NameRu: "Телевизоры"}
	if got := category.LocalizedName(constants.LocaleRu); got != "Телевизоры" {
		t.Fatalf("ru name: got %q", got)
	}
	category.NameRu = ""
	if got := category.LocalizedName(constants.LocaleRu); got != "Televizorlar" {
		t.Fatalf("missing ru name must fall back, got %q", got)
	}
}
