package catalog

// pickTranslation returns the translation for the locale, falling back to
// the English value when the translation is missing
func pickTranslation(locale, en, ru, he string) string {
	switch locale {
	case "ru":
		if ru != "" {
			return ru
		}
	case "he":
		if he != "" {
			return he
		}
	}
	return en
}

// Localize fills DisplayName for the matched storefront locale
func (r *CategoryResponse) Localize(locale string) {
	r.DisplayName = pickTranslation(locale, r.Name, r.NameRu, r.NameHe)
}

// LocalizeCategories localizes a slice of category responses in place
func LocalizeCategories(locale string, categories []CategoryResponse) {
	for i := range categories {
		categories[i].Localize(locale)
	}
}

// Localize fills DisplayName and DisplayDescription for the matched
// storefront locale, including the attached category
func (r *ProductResponse) Localize(locale string) {
	r.DisplayName = pickTranslation(locale, r.Name, r.NameRu, r.NameHe)
	r.DisplayDescription = pickTranslation(locale, r.Description, r.DescriptionRu, r.DescriptionHe)
	if r.Category != nil {
		r.Category.Localize(locale)
	}
}

// LocalizeProducts localizes a slice of product responses in place
func LocalizeProducts(locale string, products []ProductResponse) {
	for i := range products {
		products[i].Localize(locale)
	}
}
