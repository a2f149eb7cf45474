package catalog

import (
	"fmt"
	"strings"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

var luxuryAdjectives = map[models.Language][]string{
	models.LanguageFR: {
		"Précieux", "Éblouissant", "Magnifique", "Somptueux", "Exquis",
		"Raffiné", "Prestigieux", "Exclusif", "Élégant", "Éclatant",
		"Sublime", "Gracieux", "Majestueux", "Enchanteur", "Étincelant",
	},
	models.LanguageEN: {
		"Precious", "Dazzling", "Magnificent", "Sumptuous", "Exquisite",
		"Refined", "Prestigious", "Exclusive", "Elegant", "Radiant",
		"Sublime", "Graceful", "Majestic", "Enchanting", "Glistening",
	},
	models.LanguageAR: {
		"ثمين", "مبهر", "رائع", "فخم", "رفيع",
		"أنيق", "مرموق", "حصري", "مشع", "رشيق",
		"ملكي", "ساحر", "لامع",
	},
}

var emptyFeatures = map[models.Language]string{
	models.LanguageEN: "its refined silhouette",
	models.LanguageFR: "sa silhouette raffinée",
	models.LanguageAR: "تصميمه الراقي",
}

// ComposeDescription builds the marketing description of a product in lang
func ComposeDescription(rng utils.Rand, lang models.Language, attrs models.ParsedAttributes) string {
	adjectives, ok := luxuryAdjectives[lang]
	if !ok {
		lang = models.LanguageEN
		adjectives = luxuryAdjectives[lang]
	}
	adjective := adjectives[rng.IntN(len(adjectives))]

	metal := utils.LocalizeMetal(lang, attrs.Metal)
	features := strings.TrimSpace(attrs.Features)
	if features == "" {
		features = emptyFeatures[lang]
	}

	switch lang {
	case models.LanguageFR:
		return fmt.Sprintf("%s bijou en %s avec un design %s mettant en valeur %s. Une pièce exceptionnelle alliant élégance intemporelle et artisanat minutieux de la plus haute qualité.",
			adjective, metal, attrs.Design, features)
	case models.LanguageAR:
		return fmt.Sprintf("مجوهرات %s %s بتصميم %s تعرض %s. قطعة استثنائية تجمع بين الأناقة الخالدة والحرفية الدقيقة بأعلى جودة.",
			metal, adjective, attrs.Design, features)
	default:
		return fmt.Sprintf("%s %s jewelry with a %s design showcasing %s. An exceptional piece combining timeless elegance and meticulous craftsmanship of the highest quality.",
			adjective, metal, attrs.Design, features)
	}
}
