package catalog

import (
	"errors"
	"fmt"
	"sync"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

// DefaultMaxSuffix bounds the numeric suffix search for a free name
const DefaultMaxSuffix = 100000

// ErrNameSpaceExhausted is returned when no free (name, language) pair could be found
var ErrNameSpaceExhausted = errors.New("name space exhausted")

var namePools = map[models.Category][]string{
	models.CategoryRings: {
		"Éternité", "Séduction", "Passion", "Destin", "Promesse",
		"Luna", "Céleste", "Étoile", "Aurore", "Soleil",
		"Infini", "Divine", "Lumière", "Victoire", "Romance",
		"Enchantée", "Rêveuse", "Mystique", "Élégance", "Harmonie",
		"Mirage", "Renaissance", "Splendeur", "Éclat", "Oasis",
		"Royale", "Impériale", "Cascade", "Duchesse", "Comtesse",
	},
	models.CategoryEarrings: {
		"Cascade", "Echo", "Sirène", "Ondine", "Étincelle",
		"Murmure", "Whisper", "Papillon", "Plume", "Étoile",
		"Rosée", "Velvet", "Lueur", "Mélodie", "Diva",
		"Éclipse", "Voltige", "Danse", "Harmonie", "Crépuscule",
		"Aube", "Nuit", "Lune", "Sérénité", "Poésie",
	},
	models.CategoryNecklaces: {
		"Cascade", "Rivière", "Opulence", "Élysée", "Ariane",
		"Aphrodite", "Vénus", "Olympe", "Délice", "Délicatesse",
		"Muse", "Étoile", "Galaxie", "Océane", "Tempête",
		"Songe", "Chimère", "Envol", "Arabesque", "Aria",
		"Symphonie", "Rhapsodie", "Murmure", "Caresse", "Lumière",
	},
	models.CategoryBracelets: {
		"Caresse", "Étreinte", "Enlace", "Lien", "Fluidité",
		"Onde", "Ruban", "Cascade", "Eclipse", "Mirage",
		"Reflet", "Souplesse", "Émeraude", "Serpentine", "Spirale",
		"Songe", "Arabesque", "Vague", "Épure", "Rosée",
		"Secret", "Ombre", "Charme", "Essence", "Aura",
	},
}

// NamePool returns the display name pool for category.
// Unknown categories share the rings pool.
func NamePool(category models.Category) []string {
	if pool, ok := namePools[category]; ok {
		return pool
	}
	return namePools[models.CategoryRings]
}

type nameKey struct {
	name string
	lang models.Language
}

// NameRegistry records the (name, language) pairs handed out during one run
type NameRegistry struct {
	mu        sync.Mutex
	used      map[nameKey]struct{}
	maxSuffix int
}

// NewNameRegistry returns an empty registry
func NewNameRegistry() *NameRegistry {
	return NewNameRegistryWithLimit(DefaultMaxSuffix)
}

// NewNameRegistryWithLimit returns an empty registry that gives up after
// maxSuffix numbered candidates per base name.
func NewNameRegistryWithLimit(maxSuffix int) *NameRegistry {
	return &NameRegistry{used: make(map[nameKey]struct{}), maxSuffix: max(maxSuffix, 0)}
}

// Used reports whether name is already taken in lang
func (r *NameRegistry) Used(name string, lang models.Language) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.used[nameKey{name, lang}]
	return ok
}

// Len returns the number of registered pairs
func (r *NameRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.used)
}

// Claim picks the first free candidate among base, base+" 1", base+" 2", ...
// and registers it for lang.
func (r *NameRegistry) Claim(base string, lang models.Language) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := base
	for suffix := 1; ; suffix++ {
		key := nameKey{name, lang}
		if _, taken := r.used[key]; !taken {
			r.used[key] = struct{}{}
			return name, nil
		}
		if suffix > r.maxSuffix {
			return "", fmt.Errorf("%w: %q in %s after %d attempts", ErrNameSpaceExhausted, base, lang, r.maxSuffix)
		}
		name = fmt.Sprintf("%s %d", base, suffix)
	}
}

// NameAssigner draws display names from the category pools
type NameAssigner struct {
	registry *NameRegistry
	rng      utils.Rand
}

// NewNameAssigner creates a NameAssigner bound to a run's registry
func NewNameAssigner(registry *NameRegistry, rng utils.Rand) *NameAssigner {
	return &NameAssigner{registry: registry, rng: rng}
}

// Assign returns a display name for category that is unused in lang
func (a *NameAssigner) Assign(category models.Category, lang models.Language) (string, error) {
	pool := NamePool(category)
	base := pool[a.rng.IntN(len(pool))]
	return a.registry.Claim(base, lang)
}
