package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

var _ port.ChatResponder = (*ChatService)(nil)

// Intent keyword sets. Classification is first-match-wins in the order
// greeting, search, price, comparison, recommendation, fallback; a message
// matching several sets takes the earliest intent.
var (
	greetingTerms = []string{
		"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	}
	searchTerms = []string{
		"show", "find", "search", "looking for", "need", "want", "get me",
	}
	priceTerms = []string{
		"price", "cost", "how much", "expensive", "cheap", "budget",
	}
	comparisonTerms = []string{
		"compare", "vs", "versus", "difference", "better", "which",
	}
	recommendationTerms = []string{
		"recommend", "suggest", "best", "top", "good",
	}
)

var categoryKeywords = []struct {
	keywords []string
	category string
}{
	{[]string{"laptop", "macbook", "notebook"}, "Laptops"},
	{[]string{"phone", "iphone", "smartphone"}, "Smartphones"},
	{[]string{"tablet", "ipad"}, "Tablets"},
	{[]string{"headphone", "earbud", "audio"}, "Audio"},
	{[]string{"tv", "television"}, "Home Entertainment"},
	{[]string{"gaming", "vr"}, "Gaming"},
}

var knownBrands = []string{
	"apple", "samsung", "sony", "dell", "hp", "lenovo", "nvidia", "meta",
}

var priceNameStopWords = []string{
	"price", "cost", "how", "much", "is", "the", "of", "for", "what", "whats",
}

// Only one price ceiling is ever set; the first pattern that matches wins.
var (
	underPriceRe  = regexp.MustCompile(`under\s+\$?(\d+)`)
	belowPriceRe  = regexp.MustCompile(`below\s+\$?(\d+)`)
	budgetPriceRe = regexp.MustCompile(`budget\s+\$?(\d+)`)
)

const welcomeReply = "Hello! 👋 Welcome to TechMart AI, your smart shopping assistant! " +
	"I can help you find the perfect tech products. What are you looking for today?"

const helpReply = "I'd be happy to help you find the perfect tech product! You can ask me about:\n\n" +
	"🔍 **Search**: \"Show me laptops\" or \"Find iPhone 15\"\n" +
	"💰 **Prices**: \"What's the price of MacBook Pro?\"\n" +
	"⚖️ **Compare**: \"Compare iPhone vs Samsung Galaxy\"\n" +
	"🎯 **Recommendations**: \"Recommend a gaming laptop under $1500\"\n\n" +
	"What would you like to explore?"

type ChatService struct {
	searcher port.ProductsSearcher
}

func NewChatService(searcher port.ProductsSearcher) ChatService {
	return ChatService{searcher}
}

// Respond classifies the user message into an intent and builds the bot
// reply. Every "not found" path is an ordinary reply, never an error; the
// only failure mode is a canceled context.
func (s ChatService) Respond(
	ctx context.Context, userMessage string,
) (domain.ChatMessage, error) {
	const op = "ChatService.Respond"

	if err := ctx.Err(); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	message := strings.ToLower(userMessage)
	switch {
	case containsAny(message, greetingTerms):
		return botMessage(welcomeReply, nil, domain.KindText), nil
	case containsAny(message, searchTerms):
		return s.handleSearch(ctx, message)
	case containsAny(message, priceTerms):
		return s.handlePriceInquiry(ctx, message)
	case containsAny(message, comparisonTerms):
		return s.handleComparison(ctx, message)
	case containsAny(message, recommendationTerms):
		return s.handleRecommendation(ctx, message)
	}
	return botMessage(helpReply, nil, domain.KindText), nil
}

func (s ChatService) handleSearch(
	ctx context.Context, message string,
) (domain.ChatMessage, error) {
	const op = "ChatService.handleSearch"

	filters := extractFilters(message)
	products, err := s.searcher.SearchProducts(ctx, "", filters)
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(products) == 0 {
		reply := "I couldn't find any products matching your criteria. " +
			"Try adjusting your search or ask me for recommendations!"
		return botMessage(reply, nil, domain.KindText), nil
	}

	plural := ""
	if len(products) > 1 {
		plural = "s"
	}
	categoryInfo := ""
	if filters.Category != "" {
		categoryInfo = " in " + filters.Category
	}
	reply := fmt.Sprintf(
		"I found %d product%s%s for you! Here are the top matches:",
		len(products), plural, categoryInfo,
	)
	return botMessage(reply, limitProducts(products, 6), domain.KindProductList), nil
}

func (s ChatService) handlePriceInquiry(
	ctx context.Context, message string,
) (domain.ChatMessage, error) {
	const op = "ChatService.handlePriceInquiry"

	productName := extractProductName(message)
	products, err := s.searcher.SearchProducts(ctx, productName, domain.SearchFilters{})
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(products) == 0 {
		reply := fmt.Sprintf(
			"I couldn't find pricing information for %q. "+
				"Could you be more specific about the product you're interested in?",
			productName,
		)
		return botMessage(reply, nil, domain.KindText), nil
	}

	p := products[0]
	priceInfo := "$" + formatPrice(p.Price)
	if p.OriginalPrice > p.Price {
		priceInfo = fmt.Sprintf("$%s (was $%s) - You save $%s!",
			formatPrice(p.Price),
			formatPrice(p.OriginalPrice),
			formatPrice(p.OriginalPrice-p.Price),
		)
	}

	reply := fmt.Sprintf("The **%s** is priced at **%s**\n\n%s",
		p.Name, priceInfo, p.Description)
	return botMessage(reply, []domain.Product{p}, domain.KindProductDetails), nil
}

// handleComparison compares the first two results for the category named in
// the message, falling back to Smartphones when no category is mentioned.
func (s ChatService) handleComparison(
	ctx context.Context, message string,
) (domain.ChatMessage, error) {
	const op = "ChatService.handleComparison"

	filters := extractFilters(message)
	if filters.Category == "" {
		filters.Category = "Smartphones"
	}
	products, err := s.searcher.SearchProducts(ctx, "", filters)
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(products) < 2 {
		reply := "I need at least two products to compare. " +
			"Could you specify which products you'd like me to compare?"
		return botMessage(reply, nil, domain.KindText), nil
	}

	first, second := products[0], products[1]
	reply := fmt.Sprintf(
		"Here's a comparison of **%s** vs **%s**:\n\n%s\n\n%s\n\n"+
			"Would you like more details about either product?",
		first.Name, second.Name,
		comparisonCard(first), comparisonCard(second),
	)
	products = products[:2]
	return botMessage(reply, products, domain.KindProductList), nil
}

func comparisonCard(p domain.Product) string {
	features := p.Features
	if len(features) > 2 {
		features = features[:2]
	}
	return fmt.Sprintf("**%s** - $%s\n⭐ %s/5 (%d reviews)\n%s",
		p.Name,
		formatPrice(p.Price),
		formatRating(p.Rating),
		p.ReviewCount,
		strings.Join(features, ", "),
	)
}

func (s ChatService) handleRecommendation(
	ctx context.Context, message string,
) (domain.ChatMessage, error) {
	const op = "ChatService.handleRecommendation"

	filters := extractFilters(message)
	products, err := s.searcher.SearchProducts(ctx, "", filters)
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	sortByRatingDesc(products)
	products = limitProducts(products, 4)

	if len(products) == 0 {
		reply := "I couldn't find recommendations matching your criteria. " +
			"Let me show you some popular products instead!"
		return botMessage(reply, nil, domain.KindText), nil
	}

	var b strings.Builder
	b.WriteString("Based on your preferences, here are my top recommendations:\n")
	for i, p := range products {
		fmt.Fprintf(&b, "\n%d. **%s** - $%s (⭐ %s/5)",
			i+1, p.Name, formatPrice(p.Price), formatRating(p.Rating))
	}
	return botMessage(b.String(), products, domain.KindProductList), nil
}

func extractFilters(message string) domain.SearchFilters {
	var filters domain.SearchFilters

	for _, ck := range categoryKeywords {
		if containsAny(message, ck.keywords) {
			filters.Category = ck.category
			break
		}
	}

	for _, brand := range knownBrands {
		if strings.Contains(message, brand) {
			filters.Brand = strings.ToUpper(brand[:1]) + brand[1:]
		}
	}

	for _, re := range []*regexp.Regexp{underPriceRe, belowPriceRe, budgetPriceRe} {
		m := re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		if maxPrice, err := strconv.ParseFloat(m[1], 64); err == nil {
			filters.MaxPrice = &maxPrice
			break
		}
	}

	return filters
}

func extractProductName(message string) string {
	var kept []string
	for _, word := range strings.Fields(message) {
		if isStopWord(word) {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

func isStopWord(word string) bool {
	word = strings.ToLower(word)
	for _, sw := range priceNameStopWords {
		if word == sw {
			return true
		}
	}
	return false
}

func containsAny(message string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(message, term) {
			return true
		}
	}
	return false
}

func sortByRatingDesc(ps []domain.Product) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Rating > ps[j].Rating
	})
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func botMessage(
	content string, products []domain.Product, kind domain.MessageKind,
) domain.ChatMessage {
	return domain.ChatMessage{
		MessageID: uuid.NewString(),
		Content:   content,
		Sender:    domain.SenderBot,
		Timestamp: time.Now(),
		Products:  products,
		Kind:      kind,
	}
}
