package core

// DefaultIncomeCategories are the labels whose amounts add to the
// balance; any other category is an expense. Order matters: income
// aggregations pre-seed their result in this order.
var DefaultIncomeCategories = []string{"salary", "investments", "gifts", "other_income"}

// Classifier maps a category label to Income or Expense against a fixed
// set of income categories. The taxonomy is configuration, not a
// hardcoded literal: construct with NewClassifier to replace it.
type Classifier struct {
	sources []string
	income  map[string]struct{}
}

func NewClassifier(incomeCategories []string) *Classifier {
	c := &Classifier{
		sources: append([]string(nil), incomeCategories...),
		income:  make(map[string]struct{}, len(incomeCategories)),
	}
	for _, cat := range incomeCategories {
		c.income[cat] = struct{}{}
	}
	return c
}

func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultIncomeCategories)
}

// Classify returns Income if the category is in the income set, else
// Expense. Unknown categories are not an error.
func (c *Classifier) Classify(category string) Kind {
	if _, ok := c.income[category]; ok {
		return Income
	}
	return Expense
}

// IncomeSources returns the income categories in configuration order.
func (c *Classifier) IncomeSources() []string {
	return append([]string(nil), c.sources...)
}
