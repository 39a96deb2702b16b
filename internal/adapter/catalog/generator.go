package catalog

import (
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/techmart/storefront/internal/core/domain"
)

const DefaultCategorySize = 70

type GeneratorConfig struct {
	// Seed of 0 derives the seed from the current time,
	// so every restart produces a different catalog.
	Seed         int64
	CategorySize int
}

// Generate builds the synthetic catalog from the fixed category tables.
// Products are immutable after generation.
func Generate(cfg GeneratorConfig) []domain.Product {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	categorySize := cfg.CategorySize
	if categorySize <= 0 {
		categorySize = DefaultCategorySize
	}

	rnd := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	var products []domain.Product
	productID := 1
	for _, ct := range categoryTables {
		perSubcategory := int(math.Ceil(
			float64(categorySize) / float64(len(ct.subcategories)),
		))
		for _, subcategory := range ct.subcategories {
			for i := 0; i < perSubcategory; i++ {
				products = append(products,
					generateProduct(rnd, ct, subcategory, productID))
				productID++
			}
		}
	}
	return products
}

func generateProduct(
	rnd *rand.Rand, ct categoryTable, subcategory string, id int,
) domain.Product {
	brand := pick(rnd, ct.brands)
	base := ct.basePrices[subcategory]

	// base price with ±20% variation
	price := math.Floor(base * (0.8 + rnd.Float64()*0.4))

	var originalPrice float64
	if rnd.Float64() > 0.6 {
		originalPrice = math.Floor(price * (1.1 + rnd.Float64()*0.3))
	}

	return domain.Product{
		ProductID:      strconv.Itoa(id),
		Name:           generateName(rnd, brand, subcategory),
		Brand:          brand,
		Category:       ct.displayName,
		Subcategory:    subcategory,
		Description:    pick(rnd, ct.descriptions),
		Price:          price,
		OriginalPrice:  originalPrice,
		Rating:         math.Round((3.5+rnd.Float64()*1.5)*10) / 10,
		ReviewCount:    rnd.IntN(5000) + 50,
		Tags:           generateTags(ct.displayName, subcategory, brand),
		Features:       pickN(rnd, ct.features, 4),
		Specifications: generateSpecifications(rnd, ct.displayName),
		ImageURL:       ct.imageURL,
		InStock:        rnd.Float64() > 0.05,
	}
}

func generateName(rnd *rand.Rand, brand, subcategory string) string {
	parts := []string{brand, subcategory, pick(rnd, modelNumbers)}
	if rnd.Float64() > 0.5 {
		parts = append(parts, pick(rnd, nameSuffixes))
	}
	return strings.Join(parts, " ")
}

func generateTags(category, subcategory, brand string) []string {
	tags := []string{
		strings.ToLower(category),
		strings.ToLower(subcategory),
		strings.ToLower(brand),
	}
	return append(tags, extraTags...)
}

func generateSpecifications(
	rnd *rand.Rand, category string,
) map[string]string {
	pools, ok := specTables[category]
	if !ok {
		pools = specTables["Smartphones"]
	}

	// iterate keys in sorted order to keep seeded generation reproducible
	keys := make([]string, 0, len(pools))
	for k := range pools {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	specs := make(map[string]string, len(keys))
	for _, k := range keys {
		specs[k] = pick(rnd, pools[k])
	}
	return specs
}

func pick(rnd *rand.Rand, vs []string) string {
	return vs[rnd.IntN(len(vs))]
}

func pickN(rnd *rand.Rand, vs []string, n int) []string {
	shuffled := make([]string, len(vs))
	copy(shuffled, vs)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
