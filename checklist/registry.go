// Package checklist holds the inspectable element registry and the static,
// pre-authored checklist documents served without a model call.
package checklist

import (
	"fmt"
	"strings"
)

// Element is one inspectable building element. ID is the stable machine key
// used for static lookup; the labels are display-only and localized.
type Element struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	LabelAr string `json:"label_ar"`
}

// Group is a UI grouping of elements.
type Group struct {
	ID       string    `json:"id"`
	TitleEn  string    `json:"title_en"`
	TitleAr  string    `json:"title_ar"`
	Elements []Element `json:"elements"`
}

// Registry lists every element the Inspector can be asked about.
var Registry = []Group{
	{
		ID:      "loads",
		TitleEn: "Loads & Design",
		TitleAr: "الأحمال والتصميم",
		Elements: []Element{
			{ID: "load_combinations", Label: "Load Combinations", LabelAr: "تراكيب الأحمال"},
		},
	},
	{
		ID:      "foundation",
		TitleEn: "Foundations & Soil",
		TitleAr: "الأساسات والتربة",
		Elements: []Element{
			{ID: "separate_footings", Label: "Separate Footings", LabelAr: "القواعد المنفصلة"},
			{ID: "strip_footings", Label: "Strip Footings", LabelAr: "القواعد الشريطية"},
			{ID: "raft", Label: "Raft Foundation", LabelAr: "اللبشة (Raft)"},
			{ID: "piled_raft", Label: "Piled Raft", LabelAr: "أساسات خازوقية"},
			{ID: "grade_slab", Label: "Slab on Grade", LabelAr: "بلاطة أرضية"},
		},
	},
	{
		ID:      "structure",
		TitleEn: "Concrete Structure",
		TitleAr: "الهيكل الخرساني",
		Elements: []Element{
			{ID: "columns", Label: "Columns", LabelAr: "الأعمدة"},
			{ID: "shear_walls", Label: "Shear Walls", LabelAr: "حوائط القص"},
			{ID: "beams", Label: "Beams", LabelAr: "الكمرات (الجسور)"},
			{ID: "solid_slab", Label: "Solid Slab", LabelAr: "بلاطة مصمتة"},
			{ID: "hollow_block", Label: "Hollow Block", LabelAr: "بلاطة هوردي"},
			{ID: "flat_slab", Label: "Flat Slab", LabelAr: "بلاطة فلات"},
			{ID: "stairs", Label: "Stairs", LabelAr: "السلالم (الدرج)"},
		},
	},
	{
		ID:      "special",
		TitleEn: "Special Systems",
		TitleAr: "أنظمة خاصة",
		Elements: []Element{
			{ID: "post_tension", Label: "Post-Tension", LabelAr: "لاحقة الشد"},
			{ID: "water_tank", Label: "Water Tank", LabelAr: "خزان مياه"},
			{ID: "retaining_wall", Label: "Retaining Wall", LabelAr: "جدار استنادي"},
		},
	},
}

// Lookup returns the static document for the given element id and language,
// if one exists. Keys are {elementID}_{language}; the element id must be the
// stable machine key, never the localized label.
func Lookup(elementID, language string) (string, bool) {
	doc, ok := staticChecklists[elementID+"_"+language]
	return doc, ok
}

// KnownElement reports whether the element id exists in the registry.
func KnownElement(elementID string) bool {
	for _, g := range Registry {
		for _, el := range g.Elements {
			if el.ID == elementID {
				return true
			}
		}
	}
	return false
}

// Validate asserts that every static table key refers to a registered element.
// A renamed or removed element would otherwise make its static entries
// silently unreachable and push every request to the backend model.
func Validate() error {
	for key := range staticChecklists {
		idx := strings.LastIndex(key, "_")
		if idx <= 0 {
			return fmt.Errorf("static checklist key %q is not of the form {element}_{lang}", key)
		}
		elementID, lang := key[:idx], key[idx+1:]
		if lang != "en" && lang != "ar" {
			return fmt.Errorf("static checklist key %q has unknown language %q", key, lang)
		}
		if !KnownElement(elementID) {
			return fmt.Errorf("static checklist key %q refers to unregistered element %q", key, elementID)
		}
	}
	return nil
}
