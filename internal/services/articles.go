package services

import (
	"strings"

	"github.com/samber/lo"
)

type Article struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

func DefaultArticles() []Article {
	return []Article{
		{Title: "Understanding Your Menstrual Cycle", Category: "basics", Content: "The four phases of the menstrual cycle and what happens in the body during each of them."},
		{Title: "PMS vs PMDD: Key Differences", Category: "health", Content: "How PMS and PMDD differ, including symptoms and treatment options."},
		{Title: "Nutrition During Your Cycle", Category: "lifestyle", Content: "Adjusting your diet to the phases of your cycle."},
		{Title: "Exercise and Menstruation", Category: "lifestyle", Content: "Which kinds of exercise suit your period and the rest of your cycle."},
		{Title: "When to See a Doctor", Category: "health", Content: "Signs and symptoms that warrant a visit to your healthcare provider."},
		{Title: "Birth Control Options", Category: "contraception", Content: "Contraceptive methods and their effects on your cycle."},
		{Title: "Fertility and Conception", Category: "pregnancy", Content: "Fertility windows and what they mean for conception or avoiding pregnancy."},
		{Title: "Irregular Cycles: Causes and Solutions", Category: "health", Content: "Common causes of irregular periods and when to seek medical advice."},
	}
}

// SearchArticles matches query case-insensitively against title, category
// and content. A blank query returns every article.
func SearchArticles(articles []Article, query string) []Article {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return articles
	}
	return lo.Filter(articles, func(article Article, _ int) bool {
		return strings.Contains(strings.ToLower(article.Title), needle) ||
			strings.Contains(strings.ToLower(article.Category), needle) ||
			strings.Contains(strings.ToLower(article.Content), needle)
	})
}
