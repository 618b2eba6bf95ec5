package usecase

import (
	"github.com/rs/zerolog"

	"github.com/whispercart/backend/internal/domain"
	"github.com/whispercart/backend/internal/taxonomy"
)

// ExtractorConfig holds the tunable pipeline parameters
type ExtractorConfig struct {
	FuzzyThreshold     float64
	Proximity          ProximityConfig
	Merge              MergeConfig
	EnableDebugLogging bool
}

// Extractor turns an utterance into resolved product intents.
// It keeps no per-request state and is safe for concurrent use.
type Extractor struct {
	taxonomy   *taxonomy.Store
	tokenizer  domain.Tokenizer
	matcher    *PhraseMatcher
	normalizer *Normalizer
	attacher   *Attacher
	merger     *Merger
	logger     zerolog.Logger
	debug      bool
}

// NewExtractor wires the pipeline stages around a taxonomy snapshot.
// A nil tokenizer uses the word tokenizer.
func NewExtractor(store *taxonomy.Store, tokenizer domain.Tokenizer, config ExtractorConfig, logger zerolog.Logger) *Extractor {
	if tokenizer == nil {
		tokenizer = NewWordTokenizer()
	}
	normalizer := NewNormalizer(store)
	return &Extractor{
		taxonomy:   store,
		tokenizer:  tokenizer,
		matcher:    NewPhraseMatcher(config.FuzzyThreshold),
		normalizer: normalizer,
		attacher:   NewAttacher(config.Proximity, normalizer),
		merger:     NewMerger(config.Merge),
		logger:     logger.With().Str("component", "extractor").Logger(),
		debug:      config.EnableDebugLogging,
	}
}

// Extract tokenizes text and runs the pipeline
func (e *Extractor) Extract(text string) domain.ExtractionResult {
	return e.ExtractTokens(e.tokenizer.Tokenize(text))
}

// ExtractTokens runs the pipeline over pre-tokenized input
func (e *Extractor) ExtractTokens(tokens []domain.Token) domain.ExtractionResult {
	products := e.matcher.FindMatches(tokens, e.taxonomy.Products(), domain.ClassProduct)
	products = RemoveOverlaps(products)
	products = DedupeByWindow(products)

	brands := DedupeByWindow(e.matcher.FindMatches(tokens, e.taxonomy.Brands(), domain.ClassBrand))
	colors := DedupeByWindow(e.matcher.FindMatches(tokens, e.taxonomy.Colors(), domain.ClassColor))
	brands = SuppressBrandOverlaps(brands, products)

	budgets, quantities := FindNumericMatches(tokens)

	if e.debug {
		e.logger.Debug().
			Strs("tokens", TokenTexts(tokens)).
			Int("products", len(products)).
			Int("brands", len(brands)).
			Int("colors", len(colors)).
			Int("budgets", len(budgets)).
			Int("quantities", len(quantities)).
			Msg("matches resolved")
	}

	if len(products) == 0 {
		return domain.EmptyResult()
	}

	SortByStart(products)

	records := make([]*domain.ProductRecord, len(products))
	for i, pm := range products {
		records[i] = domain.NewProductRecord(e.normalizer.Product(pm.MatchedWith), pm)
	}

	e.attacher.Attach(records, products, Attachments{
		Brands:     brands,
		Colors:     colors,
		Quantities: quantities,
		Budgets:    budgets,
	})

	merged := e.merger.Merge(records)

	result := domain.ExtractionResult{
		Products:      make([]domain.ProductRecord, len(merged)),
		TotalProducts: len(merged),
	}
	for i, r := range merged {
		result.Products[i] = *r
	}

	if e.debug {
		names := make([]string, len(merged))
		for i, r := range merged {
			names[i] = r.CanonicalName
		}
		e.logger.Debug().Strs("products", names).Int("records", len(records)).Msg("products merged")
	}

	return result
}
